package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB. lockColl holds
// one document per provider whose only purpose is to be written by every
// booking transaction for that provider, forcing concurrent creates to
// conflict instead of committing side by side.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	lockColl    *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		lockColl:    db.Collection("booking_locks"),
	}
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.bookingColl.FindOne(ctxWithTimeout, bson.M{"id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// UpdateStatus transitions a booking conditionally on its current status.
func (repo *MongoBookingRepo) UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus, adminNotes string) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "status": from}
	update := bson.M{"$set": bson.M{
		"status":     to,
		"updated_at": time.Now(),
	}}
	if adminNotes != "" {
		update["$set"].(bson.M)["admin_notes"] = adminNotes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := repo.bookingColl.FindOneAndUpdate(ctxWithTimeout, filter, update, opts).Decode(&updated)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("error updating booking %s: %w", bookingID, err)
		}
		// Distinguish a missing booking from a lost status race.
		if _, getErr := repo.GetByID(ctx, bookingID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrStale
	}
	return &updated, nil
}
