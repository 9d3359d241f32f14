package models

import "time"

// Artist is a performer profile with denormalized booking aggregates.
type Artist struct {
	ID            string    `bson:"id" json:"id"`
	StageName     string    `bson:"stage_name" json:"stageName"`
	Genre         string    `bson:"genre,omitempty" json:"genre,omitempty"`
	TotalBookings int64     `bson:"total_bookings" json:"totalBookings"`
	TotalEarnings int64     `bson:"total_earnings" json:"totalEarnings"`
	AverageRating float64   `bson:"average_rating" json:"averageRating"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// ArtistStatsUpdate increments an artist's booking aggregates.
type ArtistStatsUpdate struct {
	BookingsDelta int64 `json:"bookingsDelta"`
	EarningsDelta int64 `json:"earningsDelta"`
}

// ArtistRatingUpdate replaces an artist's average rating.
type ArtistRatingUpdate struct {
	AverageRating float64 `json:"averageRating"`
}
