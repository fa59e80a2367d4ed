package booking

import (
	"testing"
	"time"

	"guidely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDateRange(t *testing.T) {
	dates, err := ExpandDateRange("2025-03-01", "2025-03-03", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03"}, dates)
}

func TestExpandDateRangeSingleDay(t *testing.T) {
	dates, err := ExpandDateRange("2025-03-01", "2025-03-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-01"}, dates)
}

func TestExpandDateRangeAcrossMonthBoundary(t *testing.T) {
	dates, err := ExpandDateRange("2025-02-27", "2025-03-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}, dates)
}

func TestExpandDateRangeReversedIsEmpty(t *testing.T) {
	dates, err := ExpandDateRange("2025-03-05", "2025-03-01", time.UTC)
	require.NoError(t, err)
	assert.Empty(t, dates, "reversed range must expand to nothing, never swap endpoints")
}

func TestExpandDateRangeMalformed(t *testing.T) {
	_, err := ExpandDateRange("03/01/2025", "2025-03-03", time.UTC)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "dates.start", vErr.Field)
}

func TestNormalizeDatesSingle(t *testing.T) {
	dates, err := NormalizeDates(models.BookingDates{Kind: models.DateKindSingle, Date: "2025-03-01"}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-01"}, dates)
}

func TestNormalizeDatesRange(t *testing.T) {
	dates, err := NormalizeDates(models.BookingDates{
		Kind:  models.DateKindRange,
		Start: "2025-03-03",
		End:   "2025-03-05",
	}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-03", "2025-03-04", "2025-03-05"}, dates)
}

func TestNormalizeDatesReversedRangeIsValidationError(t *testing.T) {
	_, err := NormalizeDates(models.BookingDates{
		Kind:  models.DateKindRange,
		Start: "2025-03-05",
		End:   "2025-03-01",
	}, time.UTC)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "dates", vErr.Field)
}

func TestNormalizeDatesExplicitSortsAndDedupes(t *testing.T) {
	dates, err := NormalizeDates(models.BookingDates{
		Kind:  models.DateKindExplicit,
		Dates: []string{"2025-03-04", "2025-03-01", "2025-03-04", "2025-03-02"},
	}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-04"}, dates)
}

func TestNormalizeDatesExplicitEmpty(t *testing.T) {
	_, err := NormalizeDates(models.BookingDates{Kind: models.DateKindExplicit}, time.UTC)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "dates", vErr.Field)
}

func TestNormalizeDatesMalformedExplicitDate(t *testing.T) {
	_, err := NormalizeDates(models.BookingDates{
		Kind:  models.DateKindExplicit,
		Dates: []string{"2025-03-01", "2025-13-40"},
	}, time.UTC)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "dates.dates", vErr.Field)
}

func TestNormalizeDatesUnknownKind(t *testing.T) {
	_, err := NormalizeDates(models.BookingDates{Kind: "weekly", Date: "2025-03-01"}, time.UTC)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "dates.kind", vErr.Field)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		allowed  bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusCompleted, models.BookingStatusPending, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 300000.0, TotalPrice(300000, 1))
	assert.Equal(t, 900000.0, TotalPrice(300000, 3))
	assert.Equal(t, 300000.0, TotalPrice(300000, 0), "price never drops below one day")
}
