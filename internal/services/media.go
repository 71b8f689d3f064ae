package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// MaxUploadBytes caps the total size of a multipart upload request.
	MaxUploadBytes = 100 << 20

	// MaxFilesPerField caps the number of files accepted per form field.
	MaxFilesPerField = 10

	// publicPrefix is the path segment under which stored files are
	// served; it must match the /uploads route.
	publicPrefix = "uploads"
)

// MediaService writes uploaded files to the local upload directory and
// hands back their public storage paths.
type MediaService struct {
	dir string
}

// NewMediaService creates a new media service, ensuring the upload
// directory exists
func NewMediaService(dir string) (*MediaService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &MediaService{dir: dir}, nil
}

// Store writes each uploaded file under a collision-resistant name and
// returns the slash-separated public paths in upload order. If any file
// fails, files already written in this batch are removed and the whole
// batch fails.
func (s *MediaService) Store(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxFilesPerField {
		return nil, fmt.Errorf("too many files: %d exceeds limit of %d", len(files), MaxFilesPerField)
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		name := uuid.New().String() + "-" + filepath.Base(fh.Filename)
		if err := s.writeFile(fh, name); err != nil {
			s.Remove(paths)
			return nil, err
		}
		paths = append(paths, path.Join(publicPrefix, name))
	}
	return paths, nil
}

func (s *MediaService) writeFile(fh *multipart.FileHeader, name string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file %q: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return fmt.Errorf("failed to write file %q: %w", name, err)
	}
	return nil
}

// Remove deletes stored files by their public paths. Removal is
// best-effort; missing files are ignored.
func (s *MediaService) Remove(paths []string) {
	for _, p := range paths {
		full := filepath.Join(s.dir, path.Base(p))
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", p).Msg("Failed to remove stored file")
		}
	}
}
