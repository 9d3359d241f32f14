package creditRepo

import (
	"context"
	"errors"

	"stagelink/models"
)

// ErrNotFound is returned when a hotel has no ledger document.
var ErrNotFound = errors.New("credit ledger not found")

// ErrInsufficientCredits is returned when a conditional reservation fails
// because the available balance is smaller than the requested amount.
var ErrInsufficientCredits = errors.New("insufficient credits")

// CreditRepository defines data access for hotel credit ledgers.
//
// UseCredits must be a single atomic conditional update: increment
// used_credits by amount only if used_credits + amount <= total_credits.
// Two concurrent reservations for the same hotel must never drive
// used_credits past total_credits.
type CreditRepository interface {
	// Create inserts a zeroed ledger for a new hotel.
	Create(ctx context.Context, hotelID string) error
	// Get retrieves the ledger for a hotel.
	Get(ctx context.Context, hotelID string) (*models.CreditLedger, error)
	// AddCredits increments total_credits by amount.
	AddCredits(ctx context.Context, hotelID string, amount int64) error
	// UseCredits atomically reserves amount credits.
	UseCredits(ctx context.Context, hotelID string, amount int64) error
	// ReleaseCredits returns amount reserved credits, floored at zero.
	ReleaseCredits(ctx context.Context, hotelID string, amount int64) error
}
