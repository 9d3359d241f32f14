package models

import "time"

// Rating reviews a completed booking. Only COMPLETED bookings may be rated.
type Rating struct {
	ID                string    `bson:"id" json:"id"`
	BookingID         string    `bson:"booking_id" json:"bookingId"`
	HotelID           string    `bson:"hotel_id" json:"hotelId"`
	ArtistID          string    `bson:"artist_id" json:"artistId"`
	Stars             int       `bson:"stars" json:"stars"` // 1..5
	TextReview        string    `bson:"text_review,omitempty" json:"textReview,omitempty"`
	IsVisibleToArtist bool      `bson:"is_visible_to_artist" json:"isVisibleToArtist"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
}

// CreateRatingRequest is the payload accepted by POST /api/bookings/ratings.
type CreateRatingRequest struct {
	BookingID         string `json:"bookingId" binding:"required"`
	HotelID           string `json:"hotelId" binding:"required"`
	ArtistID          string `json:"artistId" binding:"required"`
	Stars             int    `json:"stars" binding:"required"`
	TextReview        string `json:"textReview,omitempty"`
	IsVisibleToArtist *bool  `json:"isVisibleToArtist,omitempty"`
}
