package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewWeeklyStats(t *testing.T) {
	windows := BuildWeekWindow(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), time.UTC)

	t.Run("Reduces totals and averages over active days", func(t *testing.T) {
		totals := make([]DayTotals, len(windows))
		totals[0] = DayTotals{Workouts: 1, CaloriesBurned: 300, CaloriesConsumed: 2000}
		totals[3] = DayTotals{Workouts: 2, CaloriesBurned: 450.5}
		totals[6] = DayTotals{CaloriesConsumed: 1000}

		stats := NewWeeklyStats(windows, totals)

		assert.Equal(t, "2026-03-08", stats.StartDate)
		assert.Equal(t, "2026-03-14", stats.EndDate)
		assert.Equal(t, 3, stats.TotalWorkouts)
		assert.Equal(t, 750.5, stats.CaloriesBurned)
		assert.Equal(t, 3000.0, stats.CaloriesConsumed)
		assert.Equal(t, 2, stats.ActiveDays)
		assert.Equal(t, 1500.0, stats.AverageCaloriesConsumedPerActiveDay)
		assert.Equal(t, []int{1, 0, 0, 2, 0, 0, 0}, stats.WorkoutsByDay)
		assert.Equal(t, []float64{2000, 0, 0, 0, 0, 0, 1000}, stats.CaloriesConsumedByDay)
		assert.Len(t, stats.Labels, WindowDays)
	})

	t.Run("No consumption means zero average, not NaN", func(t *testing.T) {
		stats := NewWeeklyStats(windows, make([]DayTotals, len(windows)))

		assert.Zero(t, stats.ActiveDays)
		assert.Zero(t, stats.AverageCaloriesConsumedPerActiveDay)
		assert.Len(t, stats.DayKeys, WindowDays)
	})

	t.Run("Missing totals are treated as empty days", func(t *testing.T) {
		stats := NewWeeklyStats(windows, nil)

		assert.Zero(t, stats.TotalWorkouts)
		assert.Equal(t, windows[6].Key, stats.DayKeys[6])
	})
}
