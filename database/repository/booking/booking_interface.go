package bookingRepo

import (
	"context"
	"errors"

	"stagelink/models"
)

// ErrNotFound is returned when no booking exists for the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByHotel(ctx context.Context, hotelID string) ([]models.Booking, error)
	ListByArtist(ctx context.Context, artistID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
}
