package booking

import (
	"sort"
	"time"

	"guidely/models"
	"guidely/utils"
)

// ExpandDateRange returns every calendar date from start to end inclusive of
// both endpoints. A reversed range (end before start) expands to nothing;
// callers treat the empty result as an invalid request rather than guessing
// that the endpoints should be swapped.
func ExpandDateRange(start, end string, loc *time.Location) ([]string, error) {
	from, err := utils.ParseCalendarDate(start, loc)
	if err != nil {
		return nil, &ValidationError{Field: "dates.start", Message: err.Error()}
	}
	to, err := utils.ParseCalendarDate(end, loc)
	if err != nil {
		return nil, &ValidationError{Field: "dates.end", Message: err.Error()}
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(utils.CalendarDateLayout))
	}
	return dates, nil
}

// NormalizeDates resolves the tagged date payload of a booking request into
// the canonical representation every downstream step works with: an ordered,
// deduplicated list of calendar dates. An empty result is a validation error,
// including the reversed-range case.
func NormalizeDates(in models.BookingDates, loc *time.Location) ([]string, error) {
	var dates []string

	switch in.Kind {
	case models.DateKindSingle:
		d, err := utils.ParseCalendarDate(in.Date, loc)
		if err != nil {
			return nil, &ValidationError{Field: "dates.date", Message: err.Error()}
		}
		dates = []string{d.Format(utils.CalendarDateLayout)}

	case models.DateKindRange:
		expanded, err := ExpandDateRange(in.Start, in.End, loc)
		if err != nil {
			return nil, err
		}
		dates = expanded

	case models.DateKindExplicit:
		// Taken as-is, no expansion; only ordered and deduplicated.
		seen := make(map[string]struct{}, len(in.Dates))
		for _, raw := range in.Dates {
			d, err := utils.ParseCalendarDate(raw, loc)
			if err != nil {
				return nil, &ValidationError{Field: "dates.dates", Message: err.Error()}
			}
			canonical := d.Format(utils.CalendarDateLayout)
			if _, dup := seen[canonical]; dup {
				continue
			}
			seen[canonical] = struct{}{}
			dates = append(dates, canonical)
		}
		sort.Strings(dates)

	default:
		return nil, &ValidationError{Field: "dates.kind", Message: "must be one of single, range, explicit"}
	}

	if len(dates) == 0 {
		return nil, &ValidationError{Field: "dates", Message: "no dates requested"}
	}
	return dates, nil
}
