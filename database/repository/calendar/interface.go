package calendarRepo

import (
	"context"
	"errors"

	"guidely/models"
)

// ErrNotFound is returned when no cache document exists for a provider.
var ErrNotFound = errors.New("provider calendar not found")

// CalendarRepository persists the denormalized unavailable-dates cache,
// one document per provider. The cache is derived data: it is always safe
// to discard and regenerate from the booking ledger.
type CalendarRepository interface {
	Get(ctx context.Context, providerID string) (*models.ProviderCalendar, error)
	Upsert(ctx context.Context, cal *models.ProviderCalendar) error
	Delete(ctx context.Context, providerID string) error
	EnsureIndexes() error
}
