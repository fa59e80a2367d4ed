package bookingRepo

import (
	"context"
	"errors"

	"guidely/models"
)

// ErrNotFound is returned when a booking id does not exist.
var ErrNotFound = errors.New("booking not found")

// ErrStale is returned when a conditional status update matched no document,
// meaning the booking changed under the caller.
var ErrStale = errors.New("booking was modified concurrently")

// Filter narrows booking list queries. Zero-valued fields are ignored.
type Filter struct {
	ProviderID  string
	Status      models.BookingStatus
	ClientEmail string
}

// BookingRepository is the authoritative booking ledger.
type BookingRepository interface {
	// CreateIfNoConflict inserts the booking only if none of its dates is
	// already covered by another non-cancelled booking for the same provider.
	// The conflict check and the insert run as one atomic unit serialized per
	// provider, so two overlapping concurrent creates can never both commit.
	// On conflict the returned slice holds the specific conflicting dates and
	// nothing is written.
	CreateIfNoConflict(ctx context.Context, booking *models.Booking) ([]string, error)

	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)

	// UpdateStatus transitions a booking conditionally on its current status
	// still being `from` and returns the updated document. ErrStale signals a
	// lost race; transition legality is the service's concern.
	UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus, adminNotes string) (*models.Booking, error)

	List(ctx context.Context, filter Filter) ([]models.Booking, error)

	// ActiveDates returns the sorted, deduplicated union of dates covered by
	// the provider's bookings with status other than cancelled.
	ActiveDates(ctx context.Context, providerID string) ([]string, error)

	EnsureIndexes() error
}
