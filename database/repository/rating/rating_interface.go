package ratingRepo

import (
	"context"

	"stagelink/models"
)

// RatingRepository defines data access for booking ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	ListByArtist(ctx context.Context, artistID string, visibleOnly bool) ([]models.Rating, error)
	// AverageStarsForArtist computes the arithmetic mean of all stars values
	// for the artist. Returns 0 when the artist has no ratings.
	AverageStarsForArtist(ctx context.Context, artistID string) (float64, error)
}
