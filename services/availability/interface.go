package availability

import (
	"context"

	"guidely/models"
)

// BulkDayError records one date of a bulk edit that could not be applied.
type BulkDayError struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// BulkSetResult reports the outcome of a bulk day edit. Malformed dates land
// in Failed without aborting the rest of the batch.
type BulkSetResult struct {
	Applied int            `json:"applied"`
	Failed  []BulkDayError `json:"failed,omitempty"`
}

// AvailabilityService holds and answers queries against a provider's
// offered-date model. The calendar is owned exclusively by its provider and
// mutated only through these explicit edit operations.
type AvailabilityService interface {
	GetCalendar(ctx context.Context, providerID string) (*models.AvailabilityCalendar, error)

	// ReplaceCalendar overwrites the whole availability document; this backs
	// PUT /applications/:id/availability.
	ReplaceCalendar(ctx context.Context, providerID string, cal models.AvailabilityCalendar) (*models.AvailabilityCalendar, error)

	// SetDayAvailability is an idempotent upsert. Setting a day unavailable
	// deletes the schedule entry rather than keeping a negative record.
	SetDayAvailability(ctx context.Context, providerID, date string, available bool) (*models.AvailabilityCalendar, error)

	// BulkSetDays applies many day toggles, continuing past malformed dates.
	BulkSetDays(ctx context.Context, providerID string, days []models.DaySchedule) (*BulkSetResult, error)

	// ApplyRecurringPattern stamps every date in the window matching
	// dayOfWeek into the schedule, skipping dates covered by an unavailable
	// period. Deactivating a pattern later never removes stamped days.
	ApplyRecurringPattern(ctx context.Context, providerID string, dayOfWeek int, windowStart, windowEnd string) (*models.AvailabilityCalendar, error)

	// AddUnavailablePeriod appends a blackout range. Overlaps with existing
	// periods are tolerated, not merged and not an error.
	AddUnavailablePeriod(ctx context.Context, providerID, start, end, reason string) (*models.AvailabilityCalendar, error)

	// ClearSchedule drops all explicit day toggles.
	ClearSchedule(ctx context.Context, providerID string) (*models.AvailabilityCalendar, error)

	// IsOffered reports whether a date is offered: present in the schedule
	// with an available toggle and not covered by any unavailable period.
	IsOffered(ctx context.Context, providerID, date string) (bool, error)
}
