package providerRepo

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

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new instance of MongoProviderRepo.
func NewMongoProviderRepo() ProviderRepository {
	db := database.DB()
	return &MongoProviderRepo{
		coll: db.Collection("providers"),
	}
}

// Create inserts a new provider profile.
func (repo *MongoProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, provider); err != nil {
		return fmt.Errorf("error creating provider: %w", err)
	}
	return nil
}

// GetByID retrieves a provider by ID.
func (repo *MongoProviderRepo) GetByID(ctx context.Context, providerID string) (*models.Provider, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": providerID}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching provider %s: %w", providerID, err)
	}
	return &provider, nil
}

// ListByVerificationStatus returns providers whose application sits in the
// given review state.
func (repo *MongoProviderRepo) ListByVerificationStatus(ctx context.Context, status models.VerificationStatus) ([]models.Provider, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if status != "" {
		query["verification_status"] = status
	}

	cursor, err := repo.coll.Find(ctxWithTimeout, query)
	if err != nil {
		return nil, fmt.Errorf("error listing providers: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var providers []models.Provider
	if err := cursor.All(ctxWithTimeout, &providers); err != nil {
		return nil, fmt.Errorf("error decoding providers: %w", err)
	}
	return providers, nil
}

// ListIDs returns the ids of all providers. Used by the calendar reconciler.
func (repo *MongoProviderRepo) ListIDs(ctx context.Context) ([]string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing provider ids: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var ids []string
	for cursor.Next(ctxWithTimeout) {
		var doc struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding provider id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return ids, nil
}

// UpdateVerification moves a provider application through the review workflow
// and returns the updated profile.
func (repo *MongoProviderRepo) UpdateVerification(ctx context.Context, providerID string, status models.VerificationStatus, notes string) (*models.Provider, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"verification_status": status,
		"verification_notes":  notes,
		"updated_at":          time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Provider
	err := repo.coll.FindOneAndUpdate(ctxWithTimeout, bson.M{"id": providerID}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating verification for provider %s: %w", providerID, err)
	}
	return &updated, nil
}

// AddVerificationDocument appends a blob-store reference to the provider's
// verification documents.
func (repo *MongoProviderRepo) AddVerificationDocument(ctx context.Context, providerID string, doc models.VerificationDocument) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"verification_documents": doc},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, bson.M{"id": providerID}, update)
	if err != nil {
		return fmt.Errorf("error adding verification document for provider %s: %w", providerID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the providers collection.
func (repo *MongoProviderRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_email"),
		},
		{
			Keys:    bson.D{{Key: "verification_status", Value: 1}},
			Options: options.Index().SetName("verification_status_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create provider indexes: %w", err)
	}
	return nil
}
