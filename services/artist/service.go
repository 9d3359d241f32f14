package artist

import (
	"context"
	"errors"
	"fmt"

	artistRepo "stagelink/database/repository/artist"
	"stagelink/models"
	"stagelink/services/svcerr"

	"github.com/google/uuid"
)

// ArtistService manages artist profiles and their booking aggregates.
type ArtistService interface {
	CreateArtist(ctx context.Context, artist models.Artist) (*models.Artist, error)
	GetArtist(ctx context.Context, id string) (*models.Artist, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	IncrementStats(ctx context.Context, id string, update models.ArtistStatsUpdate) error
	SetAverageRating(ctx context.Context, id string, average float64) error
}

// DefaultArtistService is the production implementation.
type DefaultArtistService struct {
	Repo artistRepo.ArtistRepository
}

// CreateArtist persists a new artist profile with zeroed aggregates.
func (s *DefaultArtistService) CreateArtist(ctx context.Context, artist models.Artist) (*models.Artist, error) {
	if artist.StageName == "" {
		return nil, svcerr.Validation("stageName is required")
	}
	if artist.ID == "" {
		artist.ID = uuid.New().String()
	}
	artist.TotalBookings = 0
	artist.TotalEarnings = 0
	artist.AverageRating = 0

	if err := s.Repo.Create(ctx, &artist); err != nil {
		return nil, svcerr.Internal("failed to create artist", err)
	}
	return &artist, nil
}

// GetArtist retrieves an artist profile by id.
func (s *DefaultArtistService) GetArtist(ctx context.Context, id string) (*models.Artist, error) {
	artist, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, artistRepo.ErrNotFound) {
			return nil, svcerr.NotFound(fmt.Sprintf("artist %s not found", id))
		}
		return nil, svcerr.Internal("failed to fetch artist", err)
	}
	return artist, nil
}

// ListArtists retrieves all artist profiles.
func (s *DefaultArtistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	artists, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, svcerr.Internal("failed to list artists", err)
	}
	return artists, nil
}

// IncrementStats bumps the artist's denormalized booking aggregates.
func (s *DefaultArtistService) IncrementStats(ctx context.Context, id string, update models.ArtistStatsUpdate) error {
	if update.BookingsDelta == 0 && update.EarningsDelta == 0 {
		return svcerr.Validation("at least one delta must be non-zero")
	}
	if err := s.Repo.IncrementStats(ctx, id, update.BookingsDelta, update.EarningsDelta); err != nil {
		if errors.Is(err, artistRepo.ErrNotFound) {
			return svcerr.NotFound(fmt.Sprintf("artist %s not found", id))
		}
		return svcerr.Internal("failed to update artist stats", err)
	}
	return nil
}

// SetAverageRating replaces the artist's average rating aggregate.
func (s *DefaultArtistService) SetAverageRating(ctx context.Context, id string, average float64) error {
	if average < 0 || average > 5 {
		return svcerr.Validation("averageRating must be between 0 and 5")
	}
	if err := s.Repo.SetAverageRating(ctx, id, average); err != nil {
		if errors.Is(err, artistRepo.ErrNotFound) {
			return svcerr.NotFound(fmt.Sprintf("artist %s not found", id))
		}
		return svcerr.Internal("failed to update artist rating", err)
	}
	return nil
}
