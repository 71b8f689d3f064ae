package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeaders builds real multipart file headers for a single form field
func fileHeaders(t *testing.T, field string, names []string) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, name := range names {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("content of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File[field]
}

func TestStoreWritesFilesWithSlashPaths(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewMediaService(dir)
	require.NoError(t, err)

	paths, err := svc.Store(fileHeaders(t, "photos", []string{"one.jpg", "two.jpg"}))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for i, p := range paths {
		assert.True(t, strings.HasPrefix(p, "uploads/"), "path %q should start with uploads/", p)
		assert.NotContains(t, p, "\\")

		data, err := os.ReadFile(filepath.Join(dir, filepath.Base(p)))
		require.NoError(t, err)
		assert.Contains(t, string(data), []string{"one.jpg", "two.jpg"}[i])
	}

	// Same original name twice must not collide
	assert.NotEqual(t, paths[0], paths[1])
}

func TestStoreSameNameDoesNotCollide(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewMediaService(dir)
	require.NoError(t, err)

	first, err := svc.Store(fileHeaders(t, "photos", []string{"pic.jpg"}))
	require.NoError(t, err)
	second, err := svc.Store(fileHeaders(t, "photos", []string{"pic.jpg"}))
	require.NoError(t, err)

	assert.NotEqual(t, first[0], second[0])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStoreRejectsTooManyFiles(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewMediaService(dir)
	require.NoError(t, err)

	names := make([]string, MaxFilesPerField+1)
	for i := range names {
		names[i] = "pic.jpg"
	}

	_, err = svc.Store(fileHeaders(t, "photos", names))
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreEmptyBatch(t *testing.T) {
	svc, err := NewMediaService(t.TempDir())
	require.NoError(t, err)

	paths, err := svc.Store(nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestRemoveDeletesStoredFiles(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewMediaService(dir)
	require.NoError(t, err)

	paths, err := svc.Store(fileHeaders(t, "photos", []string{"one.jpg"}))
	require.NoError(t, err)

	svc.Remove(paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Removing again is a no-op
	svc.Remove(paths)
}

func TestNewMediaServiceCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewMediaService(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
