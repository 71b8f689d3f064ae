package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultRole is assigned to users created without an explicit role.
const DefaultRole = "user"

// User represents a user in the system. The password field holds a
// bcrypt hash and is never serialized to JSON.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`
}

// Event represents an event with its media attachments. Photos and
// videos hold slash-separated storage paths served under /uploads.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Location  string             `bson:"location" json:"location"`
	EventName string             `bson:"eventName" json:"eventName"`
	Date      time.Time          `bson:"date" json:"date"`
	Photos    []string           `bson:"photos" json:"photos"`
	Videos    []string           `bson:"videos" json:"videos"`
}
