package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-media-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventUpdate carries the mutable event fields for a partial update.
// Nil fields are left unchanged; AddPhotos and AddVideos are appended
// to the existing media lists.
type EventUpdate struct {
	Location  *string
	EventName *string
	Date      *time.Time
	AddPhotos []string
	AddVideos []string
}

// EventRepository handles document store operations for events
type EventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection("events")}
}

// Create inserts a new event and fills in the generated id
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	res, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = id
	}
	return nil
}

// GetByID retrieves an event by id
func (r *EventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// List retrieves a page of events plus the total document count
func (r *EventRepository) List(ctx context.Context, page, limit int) ([]*models.Event, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, total, nil
}

// ListByUser retrieves all events owned by a user
func (r *EventRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list events by user: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// Update applies field overwrites and media appends to an event and
// returns the updated document
func (r *EventRepository) Update(ctx context.Context, id primitive.ObjectID, update EventUpdate) (*models.Event, error) {
	set := bson.M{}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.EventName != nil {
		set["eventName"] = *update.EventName
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}

	push := bson.M{}
	if len(update.AddPhotos) > 0 {
		push["photos"] = bson.M{"$each": update.AddPhotos}
	}
	if len(update.AddVideos) > 0 {
		push["videos"] = bson.M{"$each": update.AddVideos}
	}

	doc := bson.M{}
	if len(set) > 0 {
		doc["$set"] = set
	}
	if len(push) > 0 {
		doc["$push"] = push
	}
	if len(doc) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var event models.Event
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, doc, opts).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return &event, nil
}
