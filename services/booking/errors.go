package booking

import (
	"fmt"
	"strings"

	"guidely/models"
)

// ValidationError rejects a request before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// DateConflictError is the expected, retryable outcome of requesting dates
// another booking already covers. It always carries the specific conflicting
// dates so the caller can re-render availability.
type DateConflictError struct {
	Dates []string
}

func (e *DateConflictError) Error() string {
	return fmt.Sprintf("requested dates already booked: %s", strings.Join(e.Dates, ", "))
}

// InvalidTransitionError rejects a status change that violates the booking
// state machine.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}

// NotFoundError signals an unknown provider or booking id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}
