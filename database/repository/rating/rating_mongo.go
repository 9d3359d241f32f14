package ratingRepo

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

// MongoRatingRepo implements RatingRepository using MongoDB.
type MongoRatingRepo struct {
	coll *mongo.Collection
}

// NewMongoRatingRepo creates a new instance of RatingRepository using MongoDB.
func NewMongoRatingRepo() RatingRepository {
	coll := database.MongoClient.Database("stagelink").Collection("ratings")
	repo := &MongoRatingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoRatingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
		{Keys: bson.D{{Key: "artist_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new rating document.
func (r *MongoRatingRepo) Create(ctx context.Context, rating *models.Rating) error {
	rating.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, rating); err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// ListByArtist retrieves ratings for an artist, optionally filtered to those
// the artist is allowed to see.
func (r *MongoRatingRepo) ListByArtist(ctx context.Context, artistID string, visibleOnly bool) ([]models.Rating, error) {
	filter := bson.M{"artist_id": artistID}
	if visibleOnly {
		filter["is_visible_to_artist"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for artist %s: %w", artistID, err)
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	for cursor.Next(ctx) {
		var rt models.Rating
		if err := cursor.Decode(&rt); err != nil {
			return nil, fmt.Errorf("failed to decode rating: %w", err)
		}
		ratings = append(ratings, rt)
	}
	return ratings, nil
}

// AverageStarsForArtist computes the mean stars via an aggregation pipeline
// so the full rating set never crosses the wire.
func (r *MongoRatingRepo) AverageStarsForArtist(ctx context.Context, artistID string) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"artist_id": artistID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$stars"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate ratings for artist %s: %w", artistID, err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Average float64 `bson:"average"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode rating aggregate: %w", err)
		}
	}
	return result.Average, nil
}
