package handlers

import (
	"context"
	"sync"

	"event-media-backend/internal/models"
	"event-media-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserStore is an in-memory services.UserStore for handler tests
type fakeUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) List(_ context.Context) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (s *fakeUserStore) Update(_ context.Context, id primitive.ObjectID, update repository.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		user.Password = *update.Password
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	copied := *user
	return &copied, nil
}

// fakeEventStore is an in-memory services.EventStore for handler tests
type fakeEventStore struct {
	mu     sync.Mutex
	events map[primitive.ObjectID]*models.Event
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[primitive.ObjectID]*models.Event)}
}

func (s *fakeEventStore) Create(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = primitive.NewObjectID()
	copied := *event
	s.events[event.ID] = &copied
	return nil
}

func (s *fakeEventStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (s *fakeEventStore) List(_ context.Context, page, limit int) ([]*models.Event, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*models.Event, 0, len(s.events))
	for _, event := range s.events {
		copied := *event
		all = append(all, &copied)
	}
	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (s *fakeEventStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var events []*models.Event
	for _, event := range s.events {
		if event.UserID == userID {
			copied := *event
			events = append(events, &copied)
		}
	}
	return events, nil
}

func (s *fakeEventStore) Update(_ context.Context, id primitive.ObjectID, update repository.EventUpdate) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Location != nil {
		event.Location = *update.Location
	}
	if update.EventName != nil {
		event.EventName = *update.EventName
	}
	if update.Date != nil {
		event.Date = *update.Date
	}
	event.Photos = append(event.Photos, update.AddPhotos...)
	event.Videos = append(event.Videos, update.AddVideos...)
	copied := *event
	return &copied, nil
}
