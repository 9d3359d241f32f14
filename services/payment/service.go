package payment

import (
	"context"
	"fmt"

	"stagelink/clients"
	"stagelink/models"
	"stagelink/services/svcerr"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// creditPackages are the purchasable bundles. Pricing lives here, in the
// payment domain, not in the booking flow.
var creditPackages = map[string]models.CreditPackage{
	"starter": {ID: "starter", Credits: 10, PriceUSD: 50_00},
	"venue":   {ID: "venue", Credits: 50, PriceUSD: 225_00},
	"resort":  {ID: "resort", Credits: 200, PriceUSD: 800_00},
}

// PaymentService sells credit packages and applies settled purchases to the
// hotel's ledger.
type PaymentService interface {
	ListPackages() []models.CreditPackage
	Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error)
	Confirm(ctx context.Context, confirmation models.PaymentConfirmation) (*models.CreditBalance, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	HotelAPI *clients.HotelClient
	Logger   *zap.Logger
}

// ListPackages returns the available credit packages.
func (s *DefaultPaymentService) ListPackages() []models.CreditPackage {
	packages := make([]models.CreditPackage, 0, len(creditPackages))
	for _, p := range creditPackages {
		packages = append(packages, p)
	}
	return packages
}

// Checkout creates a Stripe PaymentIntent for the selected package.
func (s *DefaultPaymentService) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	pkg, ok := creditPackages[req.PackageID]
	if !ok {
		return nil, svcerr.Validation(fmt.Sprintf("unknown credit package %q", req.PackageID))
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(pkg.PriceUSD),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.AddMetadata("hotel_id", req.HotelID)
	params.AddMetadata("package_id", pkg.ID)
	params.AddMetadata("credits", fmt.Sprintf("%d", pkg.Credits))

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, svcerr.DependencyUnavailable("payment provider unavailable", err)
	}

	return &models.CheckoutResponse{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Credits:         pkg.Credits,
		AmountUSD:       pkg.PriceUSD,
	}, nil
}

// Confirm applies a settled purchase by topping up the hotel's ledger.
func (s *DefaultPaymentService) Confirm(ctx context.Context, confirmation models.PaymentConfirmation) (*models.CreditBalance, error) {
	if confirmation.Credits <= 0 {
		return nil, svcerr.Validation("credits must be a positive integer")
	}

	balance, err := s.HotelAPI.AddCredits(ctx, confirmation.HotelID, confirmation.Credits)
	if err != nil {
		if clients.IsUnavailable(err) {
			s.Logger.Error("hotel service unavailable during credit top-up",
				zap.String("paymentIntentId", confirmation.PaymentIntentID),
				zap.Error(err))
			return nil, svcerr.DependencyUnavailable("hotel service unavailable", err)
		}
		return nil, svcerr.Internal("failed to apply credit top-up", err)
	}
	return balance, nil
}
