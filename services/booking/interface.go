package booking

import (
	"context"

	"stagelink/models"
)

// BookingService orchestrates booking creation against the hotel credit
// ledger, status transitions, and post-completion ratings.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookingsByHotel(ctx context.Context, hotelID string) ([]models.Booking, error)
	ListBookingsByArtist(ctx context.Context, artistID string) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	CreateRating(ctx context.Context, req models.CreateRatingRequest) (*models.Rating, error)
	ListRatingsForArtist(ctx context.Context, artistID string, visibleOnly bool) ([]models.Rating, error)
}

// HotelCreditsAPI is the remote credit ledger surface the orchestrator needs.
// Implemented by clients.HotelClient.
type HotelCreditsAPI interface {
	UseCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error)
	ReleaseCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error)
}

// ArtistStatsAPI is the remote artist aggregate surface.
// Implemented by clients.ArtistClient.
type ArtistStatsAPI interface {
	IncrementStats(ctx context.Context, artistID string, bookingsDelta, earningsDelta int64) error
	SetAverageRating(ctx context.Context, artistID string, average float64) error
}

// Notifier delivers best-effort events. Implementations must never block
// the caller on delivery failures.
type Notifier interface {
	Notify(ctx context.Context, userID, notifType, message string, data map[string]string)
}
