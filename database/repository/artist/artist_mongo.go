package artistRepo

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

// MongoArtistRepo implements ArtistRepository using MongoDB.
type MongoArtistRepo struct {
	coll *mongo.Collection
}

// NewMongoArtistRepo creates a new instance of ArtistRepository using MongoDB.
func NewMongoArtistRepo() ArtistRepository {
	coll := database.MongoClient.Database("stagelink").Collection("artists")
	repo := &MongoArtistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoArtistRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new artist document.
func (r *MongoArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	now := time.Now()
	artist.CreatedAt = now
	artist.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, artist); err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

// GetByID retrieves an artist by its unique ID.
func (r *MongoArtistRepo) GetByID(ctx context.Context, id string) (*models.Artist, error) {
	var artist models.Artist
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&artist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch artist with id %s: %w", id, err)
	}
	return &artist, nil
}

// GetAll retrieves all artists.
func (r *MongoArtistRepo) GetAll(ctx context.Context) ([]models.Artist, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve artists: %w", err)
	}
	defer cursor.Close(ctx)

	var artists []models.Artist
	for cursor.Next(ctx) {
		var a models.Artist
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, nil
}

// IncrementStats bumps total_bookings and total_earnings atomically.
func (r *MongoArtistRepo) IncrementStats(ctx context.Context, id string, bookingsDelta, earningsDelta int64) error {
	update := bson.M{
		"$inc": bson.M{
			"total_bookings": bookingsDelta,
			"total_earnings": earningsDelta,
		},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update stats for artist %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAverageRating replaces the average_rating aggregate.
func (r *MongoArtistRepo) SetAverageRating(ctx context.Context, id string, average float64) error {
	update := bson.M{
		"$set": bson.M{"average_rating": average, "updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for artist %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
