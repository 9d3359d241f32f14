package models

import "time"

// CreditPackage is a purchasable bundle of hotel credits.
type CreditPackage struct {
	ID       string `json:"id"`
	Credits  int64  `json:"credits"`
	PriceUSD int64  `json:"priceUsd"` // cents
}

// CheckoutRequest starts a credit package purchase for a hotel.
type CheckoutRequest struct {
	HotelID   string `json:"hotelId" binding:"required"`
	PackageID string `json:"packageId" binding:"required"`
}

// CheckoutResponse carries the Stripe client secret back to the caller.
type CheckoutResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Credits         int64  `json:"credits"`
	AmountUSD       int64  `json:"amountUsd"`
}

// PaymentConfirmation is posted once a payment settles; it triggers the
// credit top-up on the hotel service.
type PaymentConfirmation struct {
	PaymentIntentID string    `json:"paymentIntentId" binding:"required"`
	HotelID         string    `json:"hotelId" binding:"required"`
	Credits         int64     `json:"credits" binding:"required"`
	PaidAt          time.Time `json:"paidAt"`
}
