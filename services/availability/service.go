package availability

import (
	"context"
	"errors"
	"sort"
	"time"

	availabilityRepo "guidely/database/repository/availability"
	"guidely/models"
	"guidely/utils"
)

// DefaultAvailabilityService is the production availability store.
type DefaultAvailabilityService struct {
	Repo availabilityRepo.AvailabilityRepository
}

// loadOrInit returns the provider's calendar, or a fresh empty one if none
// has been created yet. First edits materialize the document.
func (s *DefaultAvailabilityService) loadOrInit(ctx context.Context, providerID string) (*models.AvailabilityCalendar, error) {
	cal, err := s.Repo.Get(ctx, providerID)
	if err == nil {
		return cal, nil
	}
	if errors.Is(err, availabilityRepo.ErrNotFound) {
		return &models.AvailabilityCalendar{
			ProviderID:  providerID,
			IsAvailable: true,
		}, nil
	}
	return nil, err
}

func (s *DefaultAvailabilityService) save(ctx context.Context, cal *models.AvailabilityCalendar) error {
	cal.LastUpdated = time.Now()
	return s.Repo.Replace(ctx, cal)
}

// GetCalendar returns the provider's availability document.
func (s *DefaultAvailabilityService) GetCalendar(ctx context.Context, providerID string) (*models.AvailabilityCalendar, error) {
	return s.loadOrInit(ctx, providerID)
}

// ReplaceCalendar overwrites the whole availability document. Every date in
// the payload is validated up front; the provider id and timestamp come from
// the server, not the payload.
func (s *DefaultAvailabilityService) ReplaceCalendar(ctx context.Context, providerID string, cal models.AvailabilityCalendar) (*models.AvailabilityCalendar, error) {
	loc := utils.LoadTimezone(cal.Timezone)

	for _, d := range cal.Schedule {
		if _, err := utils.ParseCalendarDate(d.Date, loc); err != nil {
			return nil, &InvalidDateError{Date: d.Date, Reason: "malformed schedule date"}
		}
	}
	for _, p := range cal.UnavailablePeriods {
		if _, err := utils.ParseCalendarDate(p.StartDate, loc); err != nil {
			return nil, &InvalidDateError{Date: p.StartDate, Reason: "malformed period start"}
		}
		if _, err := utils.ParseCalendarDate(p.EndDate, loc); err != nil {
			return nil, &InvalidDateError{Date: p.EndDate, Reason: "malformed period end"}
		}
	}
	for _, p := range cal.RecurringPatterns {
		if p.DayOfWeek < 0 || p.DayOfWeek > 6 {
			return nil, &ValidationError{Field: "recurringPatterns.dayOfWeek", Message: "must be 0..6"}
		}
	}

	cal.ProviderID = providerID
	sortSchedule(cal.Schedule)
	if err := s.save(ctx, &cal); err != nil {
		return nil, err
	}
	return &cal, nil
}

// SetDayAvailability upserts a single day toggle. The operation is
// idempotent: repeating it leaves exactly one entry for the date, and
// toggling a day off removes its entry entirely.
func (s *DefaultAvailabilityService) SetDayAvailability(ctx context.Context, providerID, date string, available bool) (*models.AvailabilityCalendar, error) {
	cal, err := s.loadOrInit(ctx, providerID)
	if err != nil {
		return nil, err
	}

	loc := utils.LoadTimezone(cal.Timezone)
	if _, err := utils.ParseCalendarDate(date, loc); err != nil {
		return nil, &InvalidDateError{Date: date, Reason: "malformed calendar date"}
	}

	cal.Schedule = upsertDay(cal.Schedule, date, available)
	if err := s.save(ctx, cal); err != nil {
		return nil, err
	}
	return cal, nil
}

// BulkSetDays applies many toggles in one pass. A malformed date is recorded
// in the result and never aborts the remaining entries.
func (s *DefaultAvailabilityService) BulkSetDays(ctx context.Context, providerID string, days []models.DaySchedule) (*BulkSetResult, error) {
	cal, err := s.loadOrInit(ctx, providerID)
	if err != nil {
		return nil, err
	}

	loc := utils.LoadTimezone(cal.Timezone)
	result := &BulkSetResult{}
	for _, d := range days {
		if _, err := utils.ParseCalendarDate(d.Date, loc); err != nil {
			result.Failed = append(result.Failed, BulkDayError{Date: d.Date, Reason: "malformed calendar date"})
			continue
		}
		cal.Schedule = upsertDay(cal.Schedule, d.Date, d.IsAvailable)
		result.Applied++
	}

	if result.Applied > 0 {
		if err := s.save(ctx, cal); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ApplyRecurringPattern stamps matching weekdays of the window into the
// schedule, skipping blackout dates, and records the pattern as active.
func (s *DefaultAvailabilityService) ApplyRecurringPattern(ctx context.Context, providerID string, dayOfWeek int, windowStart, windowEnd string) (*models.AvailabilityCalendar, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, &ValidationError{Field: "dayOfWeek", Message: "must be 0..6"}
	}

	cal, err := s.loadOrInit(ctx, providerID)
	if err != nil {
		return nil, err
	}

	loc := utils.LoadTimezone(cal.Timezone)
	from, err := utils.ParseCalendarDate(windowStart, loc)
	if err != nil {
		return nil, &InvalidDateError{Date: windowStart, Reason: "malformed window start"}
	}
	to, err := utils.ParseCalendarDate(windowEnd, loc)
	if err != nil {
		return nil, &InvalidDateError{Date: windowEnd, Reason: "malformed window end"}
	}
	if to.Before(from) {
		return nil, &ValidationError{Field: "window", Message: "end precedes start"}
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if int(d.Weekday()) != dayOfWeek {
			continue
		}
		date := d.Format(utils.CalendarDateLayout)
		if cal.CoveredByUnavailablePeriod(date) {
			continue
		}
		cal.Schedule = upsertDay(cal.Schedule, date, true)
	}

	cal.RecurringPatterns = upsertPattern(cal.RecurringPatterns, dayOfWeek)
	if err := s.save(ctx, cal); err != nil {
		return nil, err
	}
	return cal, nil
}

// AddUnavailablePeriod appends a blackout range. The list is append-only and
// overlap with existing periods is tolerated.
func (s *DefaultAvailabilityService) AddUnavailablePeriod(ctx context.Context, providerID, start, end, reason string) (*models.AvailabilityCalendar, error) {
	cal, err := s.loadOrInit(ctx, providerID)
	if err != nil {
		return nil, err
	}

	loc := utils.LoadTimezone(cal.Timezone)
	from, err := utils.ParseCalendarDate(start, loc)
	if err != nil {
		return nil, &InvalidDateError{Date: start, Reason: "malformed period start"}
	}
	to, err := utils.ParseCalendarDate(end, loc)
	if err != nil {
		return nil, &InvalidDateError{Date: end, Reason: "malformed period end"}
	}
	if to.Before(from) {
		return nil, &ValidationError{Field: "period", Message: "end precedes start"}
	}

	cal.UnavailablePeriods = append(cal.UnavailablePeriods, models.UnavailablePeriod{
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
	})
	if err := s.save(ctx, cal); err != nil {
		return nil, err
	}
	return cal, nil
}

// ClearSchedule drops all explicit day toggles. Patterns and blackout
// periods are untouched.
func (s *DefaultAvailabilityService) ClearSchedule(ctx context.Context, providerID string) (*models.AvailabilityCalendar, error) {
	cal, err := s.loadOrInit(ctx, providerID)
	if err != nil {
		return nil, err
	}

	cal.Schedule = nil
	if err := s.save(ctx, cal); err != nil {
		return nil, err
	}
	return cal, nil
}

// IsOffered evaluates the offered-date invariant: the master switch is on,
// the day carries an available toggle, and no blackout period covers it.
func (s *DefaultAvailabilityService) IsOffered(ctx context.Context, providerID, date string) (bool, error) {
	cal, err := s.loadOrInit(ctx, providerID)
	if err != nil {
		return false, err
	}

	loc := utils.LoadTimezone(cal.Timezone)
	if _, err := utils.ParseCalendarDate(date, loc); err != nil {
		return false, &InvalidDateError{Date: date, Reason: "malformed calendar date"}
	}

	if !cal.IsAvailable {
		return false, nil
	}
	entry, ok := cal.ScheduleEntry(date)
	if !ok || !entry.IsAvailable {
		return false, nil
	}
	return !cal.CoveredByUnavailablePeriod(date), nil
}

// upsertDay keeps the schedule sorted with at most one entry per date.
// available=false removes the entry: presence means offered.
func upsertDay(schedule []models.DaySchedule, date string, available bool) []models.DaySchedule {
	idx := -1
	for i, d := range schedule {
		if d.Date == date {
			idx = i
			break
		}
	}

	if !available {
		if idx >= 0 {
			return append(schedule[:idx], schedule[idx+1:]...)
		}
		return schedule
	}

	if idx >= 0 {
		schedule[idx].IsAvailable = true
		return schedule
	}
	schedule = append(schedule, models.DaySchedule{Date: date, IsAvailable: true})
	sortSchedule(schedule)
	return schedule
}

func upsertPattern(patterns []models.RecurringPattern, dayOfWeek int) []models.RecurringPattern {
	for i, p := range patterns {
		if p.DayOfWeek == dayOfWeek {
			patterns[i].IsActive = true
			return patterns
		}
	}
	return append(patterns, models.RecurringPattern{DayOfWeek: dayOfWeek, IsActive: true})
}

func sortSchedule(schedule []models.DaySchedule) {
	sort.Slice(schedule, func(i, j int) bool { return schedule[i].Date < schedule[j].Date })
}
