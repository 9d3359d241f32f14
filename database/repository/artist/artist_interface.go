package artistRepo

import (
	"context"
	"errors"

	"stagelink/models"
)

// ErrNotFound is returned when no artist exists for the given id.
var ErrNotFound = errors.New("artist not found")

// ArtistRepository defines data access for artist profiles and their
// denormalized booking aggregates.
type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id string) (*models.Artist, error)
	GetAll(ctx context.Context) ([]models.Artist, error)
	// IncrementStats bumps total_bookings and total_earnings atomically.
	IncrementStats(ctx context.Context, id string, bookingsDelta, earningsDelta int64) error
	// SetAverageRating replaces the average_rating aggregate.
	SetAverageRating(ctx context.Context, id string, average float64) error
}
