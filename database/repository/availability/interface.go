package availabilityRepo

import (
	"context"
	"errors"

	"guidely/models"
)

// ErrNotFound is returned when no availability document exists for a provider.
var ErrNotFound = errors.New("availability calendar not found")

// AvailabilityRepository holds one availability document per provider.
// The document is owned exclusively by its provider, so writes are whole
// document replacements rather than field patches.
type AvailabilityRepository interface {
	Get(ctx context.Context, providerID string) (*models.AvailabilityCalendar, error)
	Replace(ctx context.Context, cal *models.AvailabilityCalendar) error
	Delete(ctx context.Context, providerID string) error
	EnsureIndexes() error
}
