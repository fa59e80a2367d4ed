package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"guidely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// errDatesTaken aborts the booking transaction when the re-check finds taken
// dates. It never escapes this file.
var errDatesTaken = errors.New("requested dates already taken")

// CreateIfNoConflict inserts the booking inside a Mongo transaction after
// re-deriving the provider's active date set within the same session.
//
// Snapshot isolation alone does not serialize two creates: concurrent
// transactions each read a snapshot without the other's uncommitted booking,
// and two fresh documents never collide on write. Every transaction therefore
// also bumps the provider's lock document first. Overlapping transactions
// then write the same document, the loser hits a write conflict, and
// WithTransaction retries it on a snapshot that already contains the winner's
// booking, so the re-check reports the conflict.
func (repo *MongoBookingRepo) CreateIfNoConflict(ctx context.Context, booking *models.Booking) ([]string, error) {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var conflicts []string

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		conflicts = nil

		lockFilter := bson.M{"provider_id": booking.ProviderID}
		lockUpdate := bson.M{"$inc": bson.M{"version": 1}}
		if _, err := repo.lockColl.UpdateOne(sc, lockFilter, lockUpdate, options.Update().SetUpsert(true)); err != nil {
			return nil, fmt.Errorf("bumping provider booking lock: %w", err)
		}

		taken, err := repo.activeDates(sc, booking.ProviderID)
		if err != nil {
			return nil, fmt.Errorf("re-deriving active dates failed: %w", err)
		}

		conflicts = intersectSorted(taken, booking.Dates())
		if len(conflicts) > 0 {
			// Abort so the lock bump rolls back with everything else.
			return nil, errDatesTaken
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return nil, fmt.Errorf("insert booking failed: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, errDatesTaken) {
			return conflicts, nil
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil, nil
}

// intersectSorted returns the members of requested that appear in taken,
// preserving requested's order. Both inputs hold "YYYY-MM-DD" strings.
func intersectSorted(taken, requested []string) []string {
	if len(taken) == 0 || len(requested) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(taken))
	for _, d := range taken {
		set[d] = struct{}{}
	}
	var out []string
	for _, d := range requested {
		if _, ok := set[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
