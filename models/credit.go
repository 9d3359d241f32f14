package models

import "time"

// CreditLedger is the single source of truth for a hotel's credit balance.
// One document per hotel. Invariant: UsedCredits <= TotalCredits.
type CreditLedger struct {
	HotelID      string    `bson:"hotel_id" json:"hotelId"`
	TotalCredits int64     `bson:"total_credits" json:"totalCredits"`
	UsedCredits  int64     `bson:"used_credits" json:"usedCredits"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Available returns the spendable balance.
func (l CreditLedger) Available() int64 {
	return l.TotalCredits - l.UsedCredits
}

// CreditBalance is the read view returned by the credits endpoints.
type CreditBalance struct {
	TotalCredits     int64 `json:"totalCredits"`
	UsedCredits      int64 `json:"usedCredits"`
	AvailableCredits int64 `json:"availableCredits"`
}

// CreditAmountRequest carries the amount for add/use/release operations.
type CreditAmountRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}
