package calendarRepo

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

// MongoCalendarRepo implements CalendarRepository using MongoDB.
type MongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo constructs a new instance of MongoCalendarRepo.
func NewMongoCalendarRepo() CalendarRepository {
	db := database.DB()
	return &MongoCalendarRepo{
		coll: db.Collection("provider_calendars"),
	}
}

// Get retrieves the cache document for a provider.
func (repo *MongoCalendarRepo) Get(ctx context.Context, providerID string) (*models.ProviderCalendar, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cal models.ProviderCalendar
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"provider_id": providerID}).Decode(&cal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching provider calendar %s: %w", providerID, err)
	}
	return &cal, nil
}

// Upsert overwrites the provider's cache document with a freshly derived one.
func (repo *MongoCalendarRepo) Upsert(ctx context.Context, cal *models.ProviderCalendar) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": cal.ProviderID}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctxWithTimeout, filter, cal, opts); err != nil {
		return fmt.Errorf("error upserting provider calendar %s: %w", cal.ProviderID, err)
	}
	return nil
}

// Delete discards the cache document for a provider.
func (repo *MongoCalendarRepo) Delete(ctx context.Context, providerID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"provider_id": providerID}); err != nil {
		return fmt.Errorf("error deleting provider calendar %s: %w", providerID, err)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the provider_calendars collection.
func (repo *MongoCalendarRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_provider_id"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create provider calendar indexes: %w", err)
	}
	return nil
}
