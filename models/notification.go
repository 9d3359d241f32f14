package models

import "time"

// Notification is an in-app message delivered to a user's inbox.
// Delivery is best-effort and never part of a consistency guarantee.
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"user_id" json:"userId"`
	Type      string            `bson:"type" json:"type"`
	Message   string            `bson:"message" json:"message"`
	Data      map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool              `bson:"read" json:"read"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
}

// NotificationPayload is the queued task body for notification:deliver.
type NotificationPayload struct {
	UserID  string            `json:"userId"`
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}
