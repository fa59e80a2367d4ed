package availability

import (
	"context"
	"testing"

	availabilityRepo "guidely/database/repository/availability"
	"guidely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityRepo struct {
	calendars map[string]*models.AvailabilityCalendar
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{calendars: make(map[string]*models.AvailabilityCalendar)}
}

func (r *fakeAvailabilityRepo) Get(ctx context.Context, providerID string) (*models.AvailabilityCalendar, error) {
	cal, ok := r.calendars[providerID]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	clone := *cal
	return &clone, nil
}

func (r *fakeAvailabilityRepo) Replace(ctx context.Context, cal *models.AvailabilityCalendar) error {
	clone := *cal
	r.calendars[cal.ProviderID] = &clone
	return nil
}

func (r *fakeAvailabilityRepo) Delete(ctx context.Context, providerID string) error {
	delete(r.calendars, providerID)
	return nil
}

func (r *fakeAvailabilityRepo) EnsureIndexes() error { return nil }

func newTestService() (*DefaultAvailabilityService, *fakeAvailabilityRepo) {
	repo := newFakeAvailabilityRepo()
	return &DefaultAvailabilityService{Repo: repo}, repo
}

func TestGetCalendarInitializesFreshDocument(t *testing.T) {
	svc, _ := newTestService()

	cal, err := svc.GetCalendar(context.Background(), "prov-1")
	require.NoError(t, err)
	assert.Equal(t, "prov-1", cal.ProviderID)
	assert.True(t, cal.IsAvailable)
	assert.Empty(t, cal.Schedule)
}

func TestSetDayAvailabilityIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SetDayAvailability(ctx, "prov-1", "2025-04-10", true)
	require.NoError(t, err)
	cal, err := svc.SetDayAvailability(ctx, "prov-1", "2025-04-10", true)
	require.NoError(t, err)

	require.Len(t, cal.Schedule, 1, "repeating the toggle must not duplicate the entry")
	assert.Equal(t, "2025-04-10", cal.Schedule[0].Date)
	assert.True(t, cal.Schedule[0].IsAvailable)
}

func TestSetDayAvailabilityOffRemovesEntry(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SetDayAvailability(ctx, "prov-1", "2025-04-10", true)
	require.NoError(t, err)
	cal, err := svc.SetDayAvailability(ctx, "prov-1", "2025-04-10", false)
	require.NoError(t, err)

	assert.Empty(t, cal.Schedule, "unavailable days are stored as absence")
}

func TestSetDayAvailabilityKeepsScheduleSorted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, d := range []string{"2025-04-12", "2025-04-10", "2025-04-11"} {
		_, err := svc.SetDayAvailability(ctx, "prov-1", d, true)
		require.NoError(t, err)
	}

	cal, err := svc.GetCalendar(ctx, "prov-1")
	require.NoError(t, err)
	require.Len(t, cal.Schedule, 3)
	assert.Equal(t, "2025-04-10", cal.Schedule[0].Date)
	assert.Equal(t, "2025-04-11", cal.Schedule[1].Date)
	assert.Equal(t, "2025-04-12", cal.Schedule[2].Date)
}

func TestSetDayAvailabilityMalformedDate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SetDayAvailability(context.Background(), "prov-1", "10-04-2025", true)
	var dateErr *InvalidDateError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "10-04-2025", dateErr.Date)
}

func TestBulkSetDaysContinuesPastMalformedDates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	result, err := svc.BulkSetDays(ctx, "prov-1", []models.DaySchedule{
		{Date: "2025-04-10", IsAvailable: true},
		{Date: "not-a-date", IsAvailable: true},
		{Date: "2025-04-11", IsAvailable: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Applied)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "not-a-date", result.Failed[0].Date)

	cal, err := svc.GetCalendar(ctx, "prov-1")
	require.NoError(t, err)
	assert.Len(t, cal.Schedule, 2, "valid dates around the bad one must still land")
}

func TestApplyRecurringPatternStampsMatchingWeekdays(t *testing.T) {
	svc, _ := newTestService()

	// 2025-04-07 is a Monday; Mondays in the window are Apr 7, 14, 21, 28.
	cal, err := svc.ApplyRecurringPattern(context.Background(), "prov-1", 1, "2025-04-01", "2025-04-30")
	require.NoError(t, err)

	var dates []string
	for _, d := range cal.Schedule {
		dates = append(dates, d.Date)
	}
	assert.Equal(t, []string{"2025-04-07", "2025-04-14", "2025-04-21", "2025-04-28"}, dates)

	require.Len(t, cal.RecurringPatterns, 1)
	assert.Equal(t, 1, cal.RecurringPatterns[0].DayOfWeek)
	assert.True(t, cal.RecurringPatterns[0].IsActive)
}

func TestApplyRecurringPatternSkipsBlackoutDates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddUnavailablePeriod(ctx, "prov-1", "2025-04-10", "2025-04-20", "holiday")
	require.NoError(t, err)

	cal, err := svc.ApplyRecurringPattern(ctx, "prov-1", 1, "2025-04-01", "2025-04-30")
	require.NoError(t, err)

	var dates []string
	for _, d := range cal.Schedule {
		dates = append(dates, d.Date)
	}
	assert.Equal(t, []string{"2025-04-07", "2025-04-21", "2025-04-28"}, dates, "Apr 14 falls in the blackout and must be skipped")
}

func TestApplyRecurringPatternValidatesInput(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ApplyRecurringPattern(ctx, "prov-1", 7, "2025-04-01", "2025-04-30")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "dayOfWeek", vErr.Field)

	_, err = svc.ApplyRecurringPattern(ctx, "prov-1", 1, "2025-04-30", "2025-04-01")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "window", vErr.Field)
}

func TestAddUnavailablePeriodRejectsReversedRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddUnavailablePeriod(context.Background(), "prov-1", "2025-04-20", "2025-04-10", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "period", vErr.Field)
}

func TestAddUnavailablePeriodToleratesOverlap(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddUnavailablePeriod(ctx, "prov-1", "2025-04-10", "2025-04-20", "holiday")
	require.NoError(t, err)
	cal, err := svc.AddUnavailablePeriod(ctx, "prov-1", "2025-04-15", "2025-04-25", "family visit")
	require.NoError(t, err)

	assert.Len(t, cal.UnavailablePeriods, 2, "overlapping periods are appended, not merged")
}

func TestClearScheduleKeepsPatternsAndPeriods(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ApplyRecurringPattern(ctx, "prov-1", 1, "2025-04-01", "2025-04-30")
	require.NoError(t, err)
	_, err = svc.AddUnavailablePeriod(ctx, "prov-1", "2025-05-01", "2025-05-05", "")
	require.NoError(t, err)

	cal, err := svc.ClearSchedule(ctx, "prov-1")
	require.NoError(t, err)
	assert.Empty(t, cal.Schedule)
	assert.Len(t, cal.RecurringPatterns, 1)
	assert.Len(t, cal.UnavailablePeriods, 1)
}

func TestIsOffered(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.SetDayAvailability(ctx, "prov-1", "2025-04-10", true)
	require.NoError(t, err)

	offered, err := svc.IsOffered(ctx, "prov-1", "2025-04-10")
	require.NoError(t, err)
	assert.True(t, offered)

	// No explicit toggle means not offered.
	offered, err = svc.IsOffered(ctx, "prov-1", "2025-04-11")
	require.NoError(t, err)
	assert.False(t, offered)

	// A blackout overrides the schedule entry.
	_, err = svc.AddUnavailablePeriod(ctx, "prov-1", "2025-04-10", "2025-04-10", "sick")
	require.NoError(t, err)
	offered, err = svc.IsOffered(ctx, "prov-1", "2025-04-10")
	require.NoError(t, err)
	assert.False(t, offered)

	// The master switch trumps everything.
	repo.calendars["prov-1"].IsAvailable = false
	offered, err = svc.IsOffered(ctx, "prov-1", "2025-04-12")
	require.NoError(t, err)
	assert.False(t, offered)
}

func TestReplaceCalendarValidatesDatesAndOwnsIdentity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ReplaceCalendar(ctx, "prov-1", models.AvailabilityCalendar{
		IsAvailable: true,
		Schedule:    []models.DaySchedule{{Date: "bad", IsAvailable: true}},
	})
	var dateErr *InvalidDateError
	require.ErrorAs(t, err, &dateErr)

	cal, err := svc.ReplaceCalendar(ctx, "prov-1", models.AvailabilityCalendar{
		ProviderID:  "someone-else",
		IsAvailable: true,
		Schedule: []models.DaySchedule{
			{Date: "2025-04-11", IsAvailable: true},
			{Date: "2025-04-10", IsAvailable: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "prov-1", cal.ProviderID, "the route owner wins over the payload")
	assert.Equal(t, "2025-04-10", cal.Schedule[0].Date)
	assert.False(t, cal.LastUpdated.IsZero())
}
