package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveWindow_WeeklyIsMondayToSunday(t *testing.T) {
	// 2024-03-13 is a Wednesday
	now := time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)
	start, end, err := ResolveWindow("weekly", "", "", now)
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-11", start)
	assert.Equal(t, "2024-03-17", end)
}

func TestResolveWindow_WeeklyOnSunday(t *testing.T) {
	// Sunday still belongs to the week that started the previous Monday
	now := time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC)
	start, end, err := ResolveWindow("weekly", "", "", now)
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-11", start)
	assert.Equal(t, "2024-03-17", end)
}

func TestResolveWindow_MonthlyCoversCalendarMonth(t *testing.T) {
	now := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	start, end, err := ResolveWindow("monthly", "", "", now)
	assert.NoError(t, err)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestResolveWindow_UnknownPeriodFallsBackToMonthly(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	start, end, err := ResolveWindow("quarterly", "", "", now)
	assert.NoError(t, err)
	assert.Equal(t, "2024-05-01", start)
	assert.Equal(t, "2024-05-31", end)
}

func TestResolveWindow_ExplicitBoundsOverride(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	start, end, err := ResolveWindow("weekly", "2024-01-01", "2024-01-15", now)
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-01", start)
	assert.Equal(t, "2024-01-15", end)
}

func TestResolveWindow_PartialOverride(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	start, end, err := ResolveWindow("monthly", "2024-05-10", "", now)
	assert.NoError(t, err)
	assert.Equal(t, "2024-05-10", start)
	assert.Equal(t, "2024-05-31", end)
}

func TestResolveWindow_MalformedDateRejected(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	_, _, err := ResolveWindow("monthly", "05/10/2024", "", now)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolveWindow_InvertedRangeRejected(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	_, _, err := ResolveWindow("monthly", "2024-05-20", "2024-05-01", now)
	assert.ErrorIs(t, err, ErrValidation)
}
