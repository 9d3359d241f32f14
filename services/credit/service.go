package credit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	creditRepo "stagelink/database/repository/credit"
	"stagelink/models"
	"stagelink/services/svcerr"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const balanceCacheTTL = 30 * time.Second

// DefaultCreditService is the production implementation.
type DefaultCreditService struct {
	Repo   creditRepo.CreditRepository
	Cache  *redis.Client // optional; balance reads are cached when set
	Logger *zap.Logger
}

func cacheKey(hotelID string) string {
	return "credits:" + hotelID
}

// InitLedger creates the zeroed ledger for a new hotel.
func (s *DefaultCreditService) InitLedger(ctx context.Context, hotelID string) error {
	if hotelID == "" {
		return svcerr.Validation("hotelId is required")
	}
	if err := s.Repo.Create(ctx, hotelID); err != nil {
		return svcerr.Internal("failed to initialize credit ledger", err)
	}
	return nil
}

// GetCredits returns the hotel's balance view, served from cache when fresh.
func (s *DefaultCreditService) GetCredits(ctx context.Context, hotelID string) (*models.CreditBalance, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey(hotelID)).Result(); err == nil {
			var balance models.CreditBalance
			if err := json.Unmarshal([]byte(raw), &balance); err == nil {
				return &balance, nil
			}
		}
	}

	ledger, err := s.Repo.Get(ctx, hotelID)
	if err != nil {
		if errors.Is(err, creditRepo.ErrNotFound) {
			return nil, svcerr.NotFound(fmt.Sprintf("no credit ledger for hotel %s", hotelID))
		}
		return nil, svcerr.Internal("failed to fetch credit ledger", err)
	}

	balance := balanceView(ledger)
	s.cacheBalance(ctx, hotelID, balance)
	return balance, nil
}

// AddCredits increments the hotel's total credits by a positive amount.
func (s *DefaultCreditService) AddCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error) {
	if amount <= 0 {
		return nil, svcerr.Validation("amount must be a positive integer")
	}
	if err := s.Repo.AddCredits(ctx, hotelID, amount); err != nil {
		if errors.Is(err, creditRepo.ErrNotFound) {
			return nil, svcerr.NotFound(fmt.Sprintf("no credit ledger for hotel %s", hotelID))
		}
		return nil, svcerr.Internal("failed to add credits", err)
	}
	return s.refreshBalance(ctx, hotelID)
}

// UseCredits reserves a positive amount of credits. The reservation is a
// single conditional update at the storage layer, so concurrent calls for
// the same hotel can never overdraw the balance.
func (s *DefaultCreditService) UseCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error) {
	if amount <= 0 {
		return nil, svcerr.Validation("amount must be a positive integer")
	}
	if err := s.Repo.UseCredits(ctx, hotelID, amount); err != nil {
		switch {
		case errors.Is(err, creditRepo.ErrInsufficientCredits):
			return nil, svcerr.Validation("Insufficient credits")
		case errors.Is(err, creditRepo.ErrNotFound):
			return nil, svcerr.NotFound(fmt.Sprintf("no credit ledger for hotel %s", hotelID))
		default:
			return nil, svcerr.Internal("failed to use credits", err)
		}
	}
	return s.refreshBalance(ctx, hotelID)
}

// ReleaseCredits returns previously reserved credits. Exposed only to
// service-to-service callers as the booking saga's compensation path.
func (s *DefaultCreditService) ReleaseCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error) {
	if amount <= 0 {
		return nil, svcerr.Validation("amount must be a positive integer")
	}
	if err := s.Repo.ReleaseCredits(ctx, hotelID, amount); err != nil {
		if errors.Is(err, creditRepo.ErrNotFound) {
			return nil, svcerr.NotFound(fmt.Sprintf("no credit ledger for hotel %s", hotelID))
		}
		return nil, svcerr.Internal("failed to release credits", err)
	}
	return s.refreshBalance(ctx, hotelID)
}

// refreshBalance re-reads the ledger after a write and refreshes the cache.
func (s *DefaultCreditService) refreshBalance(ctx context.Context, hotelID string) (*models.CreditBalance, error) {
	ledger, err := s.Repo.Get(ctx, hotelID)
	if err != nil {
		return nil, svcerr.Internal("failed to fetch credit ledger", err)
	}
	balance := balanceView(ledger)
	s.cacheBalance(ctx, hotelID, balance)
	return balance, nil
}

func (s *DefaultCreditService) cacheBalance(ctx context.Context, hotelID string, balance *models.CreditBalance) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(balance)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(hotelID), raw, balanceCacheTTL).Err(); err != nil && s.Logger != nil {
		s.Logger.Warn("failed to cache credit balance", zap.String("hotelId", hotelID), zap.Error(err))
	}
}

func balanceView(ledger *models.CreditLedger) *models.CreditBalance {
	return &models.CreditBalance{
		TotalCredits:     ledger.TotalCredits,
		UsedCredits:      ledger.UsedCredits,
		AvailableCredits: ledger.Available(),
	}
}
