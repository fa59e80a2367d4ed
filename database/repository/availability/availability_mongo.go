package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"guidely/database"
	"guidely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.DB()
	return &MongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
}

// Get retrieves the availability document for a provider.
func (repo *MongoAvailabilityRepo) Get(ctx context.Context, providerID string) (*models.AvailabilityCalendar, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cal models.AvailabilityCalendar
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"provider_id": providerID}).Decode(&cal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching availability for provider %s: %w", providerID, err)
	}
	return &cal, nil
}

// Replace upserts the whole availability document for a provider.
func (repo *MongoAvailabilityRepo) Replace(ctx context.Context, cal *models.AvailabilityCalendar) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": cal.ProviderID}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctxWithTimeout, filter, cal, opts); err != nil {
		return fmt.Errorf("error replacing availability for provider %s: %w", cal.ProviderID, err)
	}
	return nil
}

// Delete removes the availability document for a provider.
func (repo *MongoAvailabilityRepo) Delete(ctx context.Context, providerID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"provider_id": providerID}); err != nil {
		return fmt.Errorf("error deleting availability for provider %s: %w", providerID, err)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the availability collection.
func (repo *MongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_provider_id"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
