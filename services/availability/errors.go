package availability

import "fmt"

// InvalidDateError marks a single malformed calendar date. Batch operations
// report it per date and keep processing the rest of the batch.
type InvalidDateError struct {
	Date   string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Date, e.Reason)
}

// ValidationError rejects a calendar-edit request before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
