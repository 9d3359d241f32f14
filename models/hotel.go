package models

import "time"

// Hotel is a venue profile. Its credit ledger is created alongside it.
type Hotel struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	City      string    `bson:"city,omitempty" json:"city,omitempty"`
	Country   string    `bson:"country,omitempty" json:"country,omitempty"`
	OwnerID   string    `bson:"owner_id,omitempty" json:"ownerId,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
