package booking

import (
	"context"
	"errors"
	"fmt"

	"stagelink/clients"
	bookingRepo "stagelink/database/repository/booking"
	ratingRepo "stagelink/database/repository/rating"
	"stagelink/models"
	"stagelink/services/svcerr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Ratings   ratingRepo.RatingRepository
	HotelAPI  HotelCreditsAPI
	ArtistAPI ArtistStatsAPI
	NotifySvc Notifier
	Pricing   PricingPolicy
	Logger    *zap.Logger
}

// CreateBooking reserves credits first, then persists the booking. If the
// persist fails after the reservation succeeded, the reserved credits are
// released again, so a booking either exists with its credits reserved or
// not at all.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.HotelAPI.UseCredits(ctx, req.HotelID, req.CreditsUsed); err != nil {
		return nil, s.mapCreditError(err)
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		HotelID:     req.HotelID,
		ArtistID:    req.ArtistID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreditsUsed: req.CreditsUsed,
		Status:      models.BookingPending,
		Notes:       req.Notes,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		// Compensate: the reservation must not outlive a failed booking.
		if _, relErr := s.HotelAPI.ReleaseCredits(ctx, req.HotelID, req.CreditsUsed); relErr != nil {
			s.Logger.Error("failed to release credits after booking persist failure",
				zap.String("hotelId", req.HotelID),
				zap.Int64("amount", req.CreditsUsed),
				zap.Error(relErr))
		}
		return nil, svcerr.Internal("failed to create booking", err)
	}

	s.notifyBoth(ctx, booking, "booking_created",
		fmt.Sprintf("New booking request for %s to %s (%d credits)",
			booking.StartDate.Format("2006-01-02"), booking.EndDate.Format("2006-01-02"), booking.CreditsUsed))

	return booking, nil
}

// GetBooking retrieves a booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, svcerr.NotFound(fmt.Sprintf("booking %s not found", id))
		}
		return nil, svcerr.Internal("failed to fetch booking", err)
	}
	return booking, nil
}

// ListBookingsByHotel lists a hotel's bookings.
func (s *DefaultBookingService) ListBookingsByHotel(ctx context.Context, hotelID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, svcerr.Internal("failed to list bookings", err)
	}
	return bookings, nil
}

// ListBookingsByArtist lists an artist's bookings.
func (s *DefaultBookingService) ListBookingsByArtist(ctx context.Context, artistID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, svcerr.Internal("failed to list bookings", err)
	}
	return bookings, nil
}

// UpdateBookingStatus applies a transition from the explicit status machine.
// On COMPLETED the artist's aggregates are bumped best-effort with earnings
// from the injected pricing policy. Cancellation does not release credits.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, svcerr.Validation(fmt.Sprintf("invalid booking status %q", status))
	}

	current, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, status) {
		return nil, svcerr.Validation(fmt.Sprintf("cannot transition booking from %s to %s", current.Status, status))
	}

	updated, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, svcerr.NotFound(fmt.Sprintf("booking %s not found", id))
		}
		return nil, svcerr.Internal("failed to update booking status", err)
	}

	s.notifyBoth(ctx, updated, "booking_status_changed",
		fmt.Sprintf("Booking %s is now %s", updated.ID, updated.Status))

	if status == models.BookingCompleted {
		earnings := s.Pricing.EarningsForCredits(updated.CreditsUsed)
		if err := s.ArtistAPI.IncrementStats(ctx, updated.ArtistID, 1, earnings); err != nil {
			s.Logger.Warn("failed to update artist stats after completion",
				zap.String("bookingId", updated.ID),
				zap.String("artistId", updated.ArtistID),
				zap.Error(err))
		}
	}

	return updated, nil
}

// CreateRating records a review for a completed booking and recomputes the
// artist's average rating best-effort.
func (s *DefaultBookingService) CreateRating(ctx context.Context, req models.CreateRatingRequest) (*models.Rating, error) {
	if req.Stars < 1 || req.Stars > 5 {
		return nil, svcerr.Validation("stars must be between 1 and 5")
	}

	booking, err := s.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingCompleted {
		return nil, svcerr.Validation("only completed bookings can be rated")
	}

	visible := true
	if req.IsVisibleToArtist != nil {
		visible = *req.IsVisibleToArtist
	}

	rating := &models.Rating{
		ID:                uuid.New().String(),
		BookingID:         req.BookingID,
		HotelID:           req.HotelID,
		ArtistID:          req.ArtistID,
		Stars:             req.Stars,
		TextReview:        req.TextReview,
		IsVisibleToArtist: visible,
	}
	if err := s.Ratings.Create(ctx, rating); err != nil {
		return nil, svcerr.Internal("failed to create rating", err)
	}

	s.recomputeArtistRating(ctx, req.ArtistID)

	return rating, nil
}

// ListRatingsForArtist lists an artist's ratings, honoring visibility.
func (s *DefaultBookingService) ListRatingsForArtist(ctx context.Context, artistID string, visibleOnly bool) ([]models.Rating, error) {
	ratings, err := s.Ratings.ListByArtist(ctx, artistID, visibleOnly)
	if err != nil {
		return nil, svcerr.Internal("failed to list ratings", err)
	}
	return ratings, nil
}

// mapCreditError translates a hotel client failure into the caller-facing
// taxonomy: business rejections stay validation errors, infrastructure
// failures become a distinguishable 503.
func (s *DefaultBookingService) mapCreditError(err error) error {
	if clients.IsUnavailable(err) {
		s.Logger.Error("hotel service unavailable during credit reservation", zap.Error(err))
		return svcerr.DependencyUnavailable("unable to verify hotel credits: hotel service unavailable", err)
	}

	var se *clients.ServiceError
	if errors.As(err, &se) {
		if se.Status == 404 {
			return svcerr.NotFound("hotel has no credit ledger")
		}
		if se.Message != "" {
			return svcerr.Validation(se.Message)
		}
	}
	return svcerr.Internal("credit reservation failed", err)
}

// recomputeArtistRating recalculates the artist's mean stars and pushes it
// to the artist service. Failures are logged only.
func (s *DefaultBookingService) recomputeArtistRating(ctx context.Context, artistID string) {
	average, err := s.Ratings.AverageStarsForArtist(ctx, artistID)
	if err != nil {
		s.Logger.Warn("failed to recompute artist rating", zap.String("artistId", artistID), zap.Error(err))
		return
	}
	if err := s.ArtistAPI.SetAverageRating(ctx, artistID, average); err != nil {
		s.Logger.Warn("failed to push artist rating", zap.String("artistId", artistID), zap.Error(err))
	}
}

// notifyBoth fires best-effort notifications to the hotel and the artist.
func (s *DefaultBookingService) notifyBoth(ctx context.Context, booking *models.Booking, notifType, message string) {
	data := map[string]string{
		"bookingId": booking.ID,
		"status":    string(booking.Status),
	}
	s.NotifySvc.Notify(ctx, booking.HotelID, notifType, message, data)
	s.NotifySvc.Notify(ctx, booking.ArtistID, notifType, message, data)
}

func validateCreateRequest(req models.CreateBookingRequest) error {
	if req.HotelID == "" || req.ArtistID == "" {
		return svcerr.Validation("hotelId and artistId are required")
	}
	if req.CreditsUsed <= 0 {
		return svcerr.Validation("creditsUsed must be a positive integer")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return svcerr.Validation("startDate and endDate are required")
	}
	if !req.StartDate.Before(req.EndDate) {
		return svcerr.Validation("startDate must be before endDate")
	}
	return nil
}
