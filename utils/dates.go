package utils

import (
	"fmt"
	"time"

	"guidely/config"

	"go.uber.org/zap"
)

// CalendarDateLayout is the canonical wire and storage form of a calendar
// date. Dates in this form compare correctly as plain strings.
const CalendarDateLayout = "2006-01-02"

// ParseCalendarDate parses a "YYYY-MM-DD" string in the given location.
// Malformed input (wrong arity, non-numeric components, impossible dates)
// returns an error the caller can attach to the offending value; it never
// panics, so batch operations can keep going past a bad date.
func ParseCalendarDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(CalendarDateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return t, nil
}

// LoadTimezone resolves an IANA timezone name, falling back to the configured
// default and finally UTC. A bad name is logged, not fatal.
func LoadTimezone(name string) *time.Location {
	if name == "" {
		name = config.AppConfig.DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		GetLogger().Warn("unknown timezone, falling back to UTC", zap.String("timezone", name), zap.Error(err))
		return time.UTC
	}
	return loc
}
