package hotelRepo

import (
	"context"
	"errors"

	"stagelink/models"
)

// ErrNotFound is returned when no hotel exists for the given id.
var ErrNotFound = errors.New("hotel not found")

// HotelRepository defines data access for hotel profiles.
type HotelRepository interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
	GetAll(ctx context.Context) ([]models.Hotel, error)
}
