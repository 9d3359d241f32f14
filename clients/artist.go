package clients

import (
	"context"
	"fmt"

	"stagelink/models"
)

// ArtistClient wraps the artist service's stats API.
type ArtistClient struct {
	*ServiceClient
}

// NewArtistClient builds a typed client for the artist service.
func NewArtistClient(sc *ServiceClient) *ArtistClient {
	return &ArtistClient{ServiceClient: sc}
}

// IncrementStats bumps the artist's denormalized booking aggregates.
func (c *ArtistClient) IncrementStats(ctx context.Context, artistID string, bookingsDelta, earningsDelta int64) error {
	endpoint := fmt.Sprintf("/api/artists/%s/stats", artistID)
	req := models.ArtistStatsUpdate{
		BookingsDelta: bookingsDelta,
		EarningsDelta: earningsDelta,
	}
	return c.Patch(ctx, endpoint, req, nil, nil)
}

// SetAverageRating replaces the artist's average rating aggregate.
func (c *ArtistClient) SetAverageRating(ctx context.Context, artistID string, average float64) error {
	endpoint := fmt.Sprintf("/api/artists/%s/rating", artistID)
	req := models.ArtistRatingUpdate{AverageRating: average}
	return c.Patch(ctx, endpoint, req, nil, nil)
}
