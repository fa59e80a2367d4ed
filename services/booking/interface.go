package booking

import (
	"context"

	bookingRepo "guidely/database/repository/booking"
	"guidely/models"
)

// BookingService is the availability & booking manager: it normalizes
// requested dates, resolves conflicts against the booking ledger, enforces
// the status state machine, and keeps the per-provider calendar cache in
// step with the ledger.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.BookingRequestInput) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, adminNotes string) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter bookingRepo.Filter) ([]models.Booking, error)

	// GetProviderCalendar serves the denormalized unavailable-dates cache,
	// regenerating it from the ledger when no cache document exists yet.
	GetProviderCalendar(ctx context.Context, providerID string) (*models.ProviderCalendar, error)

	// RebuildProviderCalendar recomputes the cache from scratch. Exposed for
	// the periodic reconciler; booking mutations trigger it internally.
	RebuildProviderCalendar(ctx context.Context, providerID string) (*models.ProviderCalendar, error)
}
