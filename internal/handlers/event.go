package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"event-media-backend/internal/models"
	"event-media-backend/internal/repository"
	"event-media-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService *services.EventService
	mediaService *services.MediaService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService, mediaService *services.MediaService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		mediaService: mediaService,
	}
}

type eventResponse struct {
	Message string        `json:"message"`
	Event   *models.Event `json:"event"`
}

// List handles GET /api/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := 0
	limit := 0
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil {
			page = parsed
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	result, err := h.eventService.List(ctx, page, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list events")
		respondError(w, "Failed to list events", http.StatusInternalServerError)
		return
	}

	respondJSON(w, result, http.StatusOK)
}

// Create handles POST /api/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	date, err := parseDate(r.FormValue("date"))
	if err != nil {
		respondError(w, "Invalid date", http.StatusBadRequest)
		return
	}

	photoPaths, videoPaths, err := h.storeMedia(r)
	if err != nil {
		log.Error().Err(err).Msg("Failed to store uploaded media")
		respondError(w, "Failed to store uploaded media", http.StatusInternalServerError)
		return
	}

	event, err := h.eventService.Create(ctx, services.CreateEventInput{
		UserID:    r.FormValue("userId"),
		Location:  r.FormValue("location"),
		EventName: r.FormValue("eventName"),
		Date:      date,
		Photos:    photoPaths,
		Videos:    videoPaths,
	})
	if err != nil {
		h.mediaService.Remove(photoPaths)
		h.mediaService.Remove(videoPaths)
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, "Invalid userId", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Failed to create event")
		respondError(w, "Failed to create event", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("event_id", event.ID.Hex()).
		Int("photos", len(photoPaths)).
		Int("videos", len(videoPaths)).
		Msg("Event created")

	respondJSON(w, eventResponse{Message: "Event created successfully", Event: event}, http.StatusCreated)
}

// GetByID handles GET /api/events/{eventId}
func (h *EventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "eventId")

	event, err := h.eventService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("event_id", id).Msg("Failed to get event")
		respondError(w, "Failed to get event", http.StatusInternalServerError)
		return
	}

	respondJSON(w, event, http.StatusOK)
}

// Update handles PUT /api/events/{eventId}. Uploaded media is appended
// to the event's existing lists; other fields are overwritten only when
// present in the form.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "eventId")

	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	input := services.UpdateEventInput{
		Location:  formString(r, "location"),
		EventName: formString(r, "eventName"),
	}
	if dateStr := formString(r, "date"); dateStr != nil {
		date, err := parseDate(*dateStr)
		if err != nil {
			respondError(w, "Invalid date", http.StatusBadRequest)
			return
		}
		input.Date = &date
	}

	photoPaths, videoPaths, err := h.storeMedia(r)
	if err != nil {
		log.Error().Err(err).Str("event_id", id).Msg("Failed to store uploaded media")
		respondError(w, "Failed to store uploaded media", http.StatusInternalServerError)
		return
	}
	input.AddPhotos = photoPaths
	input.AddVideos = videoPaths

	event, err := h.eventService.Update(ctx, id, input)
	if err != nil {
		h.mediaService.Remove(photoPaths)
		h.mediaService.Remove(videoPaths)
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("event_id", id).Msg("Failed to update event")
		respondError(w, "Failed to update event", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("event_id", id).
		Int("photos_added", len(photoPaths)).
		Int("videos_added", len(videoPaths)).
		Msg("Event updated")

	respondJSON(w, eventResponse{Message: "Event updated successfully", Event: event}, http.StatusOK)
}

// ListByUser handles GET /api/events/user/{userId}
func (h *EventHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "userId")

	events, err := h.eventService.ListByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, "No events found for this user", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list events by user")
		respondError(w, "Failed to list events", http.StatusInternalServerError)
		return
	}

	respondJSON(w, map[string]interface{}{"events": events}, http.StatusOK)
}

// storeMedia writes the "photos" and "videos" file fields to storage.
// If the second field fails, files stored for the first are removed so
// the request has no partial effect.
func (h *EventHandler) storeMedia(r *http.Request) ([]string, []string, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}

	photoPaths, err := h.mediaService.Store(r.MultipartForm.File["photos"])
	if err != nil {
		return nil, nil, err
	}
	videoPaths, err := h.mediaService.Store(r.MultipartForm.File["videos"])
	if err != nil {
		h.mediaService.Remove(photoPaths)
		return nil, nil, err
	}
	return photoPaths, videoPaths, nil
}

// formString returns a pointer to the first value of a form field, or
// nil when the field is absent from the request.
func formString(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// parseDate accepts RFC 3339 timestamps or bare dates. An empty value
// parses to the zero time.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
