package bookingRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"guidely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns bookings matching the filter, newest first.
func (repo *MongoBookingRepo) List(ctx context.Context, filter Filter) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.ProviderID != "" {
		query["provider_id"] = filter.ProviderID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ClientEmail != "" {
		query["client_email"] = filter.ClientEmail
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.bookingColl.Find(ctxWithTimeout, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	if err := cursor.All(ctxWithTimeout, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ActiveDates returns the sorted union of dates covered by the provider's
// non-cancelled bookings.
func (repo *MongoBookingRepo) ActiveDates(ctx context.Context, providerID string) ([]string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return repo.activeDates(ctxWithTimeout, providerID)
}

// activeDates runs the query on whatever context it is given, so the
// transactional create can re-derive the set inside its session.
func (repo *MongoBookingRepo) activeDates(ctx context.Context, providerID string) ([]string, error) {
	filter := bson.M{
		"provider_id": providerID,
		"status":      bson.M{"$ne": models.BookingStatusCancelled},
	}
	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding active bookings for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	seen := make(map[string]struct{})
	for cursor.Next(ctx) {
		var booking models.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		for _, d := range booking.Dates() {
			seen[d] = struct{}{}
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}
