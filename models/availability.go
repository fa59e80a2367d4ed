package models

import "time"

// DaySchedule is an explicit availability toggle for a single calendar day.
// Presence with IsAvailable=true is what marks the day as offered; a false
// toggle is stored as absence, not as a negative record.
type DaySchedule struct {
	Date        string `bson:"date" json:"date"` // "YYYY-MM-DD"
	IsAvailable bool   `bson:"is_available" json:"isAvailable"`
}

// RecurringPattern is a weekly template. Applying it stamps matching weekdays
// of a target window into the schedule; deactivating it only stops future
// stamping and never removes already-stamped days.
type RecurringPattern struct {
	DayOfWeek int  `bson:"day_of_week" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	IsActive  bool `bson:"is_active" json:"isActive"`
}

// UnavailablePeriod is an explicit blackout range. Periods always override
// schedule entries. The list is append-only; overlaps are tolerated.
type UnavailablePeriod struct {
	StartDate string `bson:"start_date" json:"startDate"`
	EndDate   string `bson:"end_date" json:"endDate"`
	Reason    string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// AvailabilityCalendar is the provider-owned availability document.
// All date arithmetic for this calendar runs through Timezone.
type AvailabilityCalendar struct {
	ProviderID         string              `bson:"provider_id" json:"providerId"`
	IsAvailable        bool                `bson:"is_available" json:"isAvailable"`
	Schedule           []DaySchedule       `bson:"schedule" json:"schedule"`
	RecurringPatterns  []RecurringPattern  `bson:"recurring_patterns,omitempty" json:"recurringPatterns,omitempty"`
	UnavailablePeriods []UnavailablePeriod `bson:"unavailable_periods,omitempty" json:"unavailablePeriods,omitempty"`
	Timezone           string              `bson:"timezone" json:"timezone"`
	LastUpdated        time.Time           `bson:"last_updated" json:"lastUpdated"`
}

// ScheduleEntry returns the explicit toggle for a date, if present.
func (c *AvailabilityCalendar) ScheduleEntry(date string) (DaySchedule, bool) {
	for _, d := range c.Schedule {
		if d.Date == date {
			return d, true
		}
	}
	return DaySchedule{}, false
}

// CoveredByUnavailablePeriod reports whether a date falls inside any blackout
// range. Dates in "YYYY-MM-DD" form compare correctly as strings.
func (c *AvailabilityCalendar) CoveredByUnavailablePeriod(date string) bool {
	for _, p := range c.UnavailablePeriods {
		if date >= p.StartDate && date <= p.EndDate {
			return true
		}
	}
	return false
}
