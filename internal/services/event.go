package services

import (
	"context"
	"time"

	"event-media-backend/internal/models"
	"event-media-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// EventStore is the persistence surface the event service needs.
// *repository.EventRepository implements it.
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	List(ctx context.Context, page, limit int) ([]*models.Event, int64, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Event, error)
	Update(ctx context.Context, id primitive.ObjectID, update repository.EventUpdate) (*models.Event, error)
}

// CreateEventInput carries the fields accepted on event creation.
// Photos and videos are storage paths already written by the media
// service.
type CreateEventInput struct {
	UserID    string
	Location  string
	EventName string
	Date      time.Time
	Photos    []string
	Videos    []string
}

// UpdateEventInput carries the fields accepted on event update. Nil
// fields are left unchanged; media paths are appended to the existing
// lists (append policy).
type UpdateEventInput struct {
	Location  *string
	EventName *string
	Date      *time.Time
	AddPhotos []string
	AddVideos []string
}

// EventPage is one page of the event listing
type EventPage struct {
	Events []*models.Event `json:"events"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// EventService handles event-related business logic
type EventService struct {
	events EventStore
}

// NewEventService creates a new event service
func NewEventService(events EventStore) *EventService {
	return &EventService{events: events}
}

// Create persists a new event with its initial media lists
func (s *EventService) Create(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	photos := input.Photos
	if photos == nil {
		photos = []string{}
	}
	videos := input.Videos
	if videos == nil {
		videos = []string{}
	}

	event := &models.Event{
		UserID:    userID,
		Location:  input.Location,
		EventName: input.EventName,
		Date:      input.Date,
		Photos:    photos,
		Videos:    videos,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// List returns a page of events plus the total count. Page and limit
// fall back to 1 and 10 and limit is capped at 100.
func (s *EventService) List(ctx context.Context, page, limit int) (*EventPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	events, total, err := s.events.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*models.Event{}
	}
	return &EventPage{Events: events, Total: total, Page: page, Limit: limit}, nil
}

// Get returns the event with the given hex id
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.events.GetByID(ctx, oid)
}

// ListByUser returns all events owned by a user. Zero events is a
// not-found condition, not an empty success.
func (s *EventService) ListByUser(ctx context.Context, userID string) ([]*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	events, err := s.events.ListByUser(ctx, oid)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, repository.ErrNotFound
	}
	return events, nil
}

// Update overwrites provided fields and appends uploaded media to the
// event's lists
func (s *EventService) Update(ctx context.Context, id string, input UpdateEventInput) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	return s.events.Update(ctx, oid, repository.EventUpdate{
		Location:  input.Location,
		EventName: input.EventName,
		Date:      input.Date,
		AddPhotos: input.AddPhotos,
		AddVideos: input.AddVideos,
	})
}
