package creditRepo

import (
	"context"
	"fmt"
	"time"

	"stagelink/database"
	"stagelink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCreditRepo implements CreditRepository using MongoDB.
type MongoCreditRepo struct {
	coll *mongo.Collection
}

// NewMongoCreditRepo creates a new instance of CreditRepository using MongoDB.
func NewMongoCreditRepo() CreditRepository {
	coll := database.MongoClient.Database("stagelink").Collection("credit_ledgers")
	repo := &MongoCreditRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCreditRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "hotel_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a zeroed ledger for a new hotel.
func (r *MongoCreditRepo) Create(ctx context.Context, hotelID string) error {
	now := time.Now()
	ledger := models.CreditLedger{
		HotelID:      hotelID,
		TotalCredits: 0,
		UsedCredits:  0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := r.coll.InsertOne(ctx, ledger); err != nil {
		return fmt.Errorf("failed to create credit ledger for hotel %s: %w", hotelID, err)
	}
	return nil
}

// Get retrieves the ledger for a hotel.
func (r *MongoCreditRepo) Get(ctx context.Context, hotelID string) (*models.CreditLedger, error) {
	var ledger models.CreditLedger
	err := r.coll.FindOne(ctx, bson.M{"hotel_id": hotelID}).Decode(&ledger)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch credit ledger for hotel %s: %w", hotelID, err)
	}
	return &ledger, nil
}

// AddCredits increments total_credits by amount.
func (r *MongoCreditRepo) AddCredits(ctx context.Context, hotelID string, amount int64) error {
	update := bson.M{
		"$inc": bson.M{"total_credits": amount},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"hotel_id": hotelID}, update)
	if err != nil {
		return fmt.Errorf("failed to add credits for hotel %s: %w", hotelID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UseCredits atomically reserves amount credits. The filter only matches when
// used_credits + amount <= total_credits, so the check and the increment are
// one storage-level operation and concurrent reservations serialize on the
// document.
func (r *MongoCreditRepo) UseCredits(ctx context.Context, hotelID string, amount int64) error {
	filter := bson.M{
		"hotel_id": hotelID,
		"$expr": bson.M{
			"$lte": bson.A{
				bson.M{"$add": bson.A{"$used_credits", amount}},
				"$total_credits",
			},
		},
	}
	update := bson.M{
		"$inc": bson.M{"used_credits": amount},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to use credits for hotel %s: %w", hotelID, err)
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing ledger from an insufficient balance.
		if _, getErr := r.Get(ctx, hotelID); getErr != nil {
			return getErr
		}
		return ErrInsufficientCredits
	}
	return nil
}

// ReleaseCredits returns amount reserved credits, floored at zero. The floor
// is computed inside one pipeline update so a concurrent reservation can
// never be overwritten by a stale read.
func (r *MongoCreditRepo) ReleaseCredits(ctx context.Context, hotelID string, amount int64) error {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"used_credits": bson.M{
				"$max": bson.A{0, bson.M{"$subtract": bson.A{"$used_credits", amount}}},
			},
			"updated_at": "$$NOW",
		}}},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"hotel_id": hotelID}, update)
	if err != nil {
		return fmt.Errorf("failed to release credits for hotel %s: %w", hotelID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
