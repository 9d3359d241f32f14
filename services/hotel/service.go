package hotel

import (
	"context"
	"errors"
	"fmt"

	hotelRepo "stagelink/database/repository/hotel"
	"stagelink/models"
	"stagelink/services/credit"
	"stagelink/services/svcerr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HotelService manages hotel profiles. Creating a profile also creates the
// hotel's zeroed credit ledger.
type HotelService interface {
	CreateHotel(ctx context.Context, hotel models.Hotel) (*models.Hotel, error)
	GetHotel(ctx context.Context, id string) (*models.Hotel, error)
	ListHotels(ctx context.Context) ([]models.Hotel, error)
}

// DefaultHotelService is the production implementation.
type DefaultHotelService struct {
	Repo    hotelRepo.HotelRepository
	Credits credit.CreditService
	Logger  *zap.Logger
}

// CreateHotel persists the profile and initializes its credit ledger.
func (s *DefaultHotelService) CreateHotel(ctx context.Context, hotel models.Hotel) (*models.Hotel, error) {
	if hotel.Name == "" {
		return nil, svcerr.Validation("name is required")
	}
	if hotel.ID == "" {
		hotel.ID = uuid.New().String()
	}

	if err := s.Repo.Create(ctx, &hotel); err != nil {
		return nil, svcerr.Internal("failed to create hotel", err)
	}
	if err := s.Credits.InitLedger(ctx, hotel.ID); err != nil {
		s.Logger.Error("failed to initialize credit ledger for new hotel",
			zap.String("hotelId", hotel.ID), zap.Error(err))
		return nil, err
	}
	return &hotel, nil
}

// GetHotel retrieves a hotel profile by id.
func (s *DefaultHotelService) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	hotel, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return nil, svcerr.NotFound(fmt.Sprintf("hotel %s not found", id))
		}
		return nil, svcerr.Internal("failed to fetch hotel", err)
	}
	return hotel, nil
}

// ListHotels retrieves all hotel profiles.
func (s *DefaultHotelService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	hotels, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, svcerr.Internal("failed to list hotels", err)
	}
	return hotels, nil
}
