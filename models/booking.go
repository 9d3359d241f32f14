package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingRejected  BookingStatus = "REJECTED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingRejected, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking pairs one hotel with one artist for a date range, consuming credits.
// HotelID and ArtistID are opaque references to entities owned by other services.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	HotelID     string        `bson:"hotel_id" json:"hotelId"`
	ArtistID    string        `bson:"artist_id" json:"artistId"`
	StartDate   time.Time     `bson:"start_date" json:"startDate"`
	EndDate     time.Time     `bson:"end_date" json:"endDate"`
	CreditsUsed int64         `bson:"credits_used" json:"creditsUsed"` // fixed once created
	Status      BookingStatus `bson:"status" json:"status"`
	Notes       string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updatedAt"`
}

// CreateBookingRequest is the payload accepted by POST /api/bookings.
type CreateBookingRequest struct {
	HotelID     string    `json:"hotelId" binding:"required"`
	ArtistID    string    `json:"artistId" binding:"required"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	CreditsUsed int64     `json:"creditsUsed" binding:"required"`
	Notes       string    `json:"notes,omitempty"`
}
