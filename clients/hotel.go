package clients

import (
	"context"
	"fmt"

	"stagelink/models"
)

// HotelClient wraps the hotel service's credit ledger API.
type HotelClient struct {
	*ServiceClient
}

// NewHotelClient builds a typed client for the hotel service.
func NewHotelClient(sc *ServiceClient) *HotelClient {
	return &HotelClient{ServiceClient: sc}
}

// GetCredits reads a hotel's current balance.
func (c *HotelClient) GetCredits(ctx context.Context, hotelID string) (*models.CreditBalance, error) {
	var balance models.CreditBalance
	endpoint := fmt.Sprintf("/api/hotels/%s/credits", hotelID)
	if err := c.Get(ctx, endpoint, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// AddCredits increments the hotel's total credits.
func (c *HotelClient) AddCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error) {
	var balance models.CreditBalance
	endpoint := fmt.Sprintf("/api/hotels/%s/credits/add", hotelID)
	req := models.CreditAmountRequest{Amount: amount}
	if err := c.Post(ctx, endpoint, req, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// UseCredits atomically reserves amount credits. The hotel service rejects
// the call with 400 when the available balance is insufficient.
func (c *HotelClient) UseCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error) {
	var balance models.CreditBalance
	endpoint := fmt.Sprintf("/api/hotels/%s/credits/use", hotelID)
	req := models.CreditAmountRequest{Amount: amount}
	if err := c.Post(ctx, endpoint, req, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// ReleaseCredits returns previously reserved credits. This is the booking
// saga's compensation path, not a user-facing refund.
func (c *HotelClient) ReleaseCredits(ctx context.Context, hotelID string, amount int64) (*models.CreditBalance, error) {
	var balance models.CreditBalance
	endpoint := fmt.Sprintf("/api/hotels/%s/credits/release", hotelID)
	req := models.CreditAmountRequest{Amount: amount}
	if err := c.Post(ctx, endpoint, req, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}
