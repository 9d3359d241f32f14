package credit

import (
	"context"

	"stagelink/models"
)

// CreditService owns a hotel's credit balance: reads, purchase top-ups,
// atomic reservations, and the saga-compensation release path.
type CreditService interface {
	// GetCredits returns the hotel's balance view.
	GetCredits(ctx context.Context, hotelID string) (*models.CreditBalance, error)
	// AddCredits increments the hotel's total credits by a positive amount.
	AddCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error)
	// UseCredits reserves a positive amount of credits, failing when the
	// available balance is insufficient.
	UseCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error)
	// ReleaseCredits returns previously reserved credits.
	ReleaseCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error)
	// InitLedger creates the zeroed ledger for a new hotel.
	InitLedger(ctx context.Context, hotelID string) error
}
