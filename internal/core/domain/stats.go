package domain

import "errors"

var ErrAggregationFailed = errors.New("weekly aggregation failed")

// WeeklyStats is derived on every request and never persisted.
// The *ByDay series are parallel to DayKeys and Labels, oldest first.
type WeeklyStats struct {
	StartDate                           string    `json:"start_date"`
	EndDate                             string    `json:"end_date"`
	TotalWorkouts                       int       `json:"total_workouts"`
	CaloriesBurned                      float64   `json:"calories_burned"`
	CaloriesConsumed                    float64   `json:"calories_consumed"`
	ActiveDays                          int       `json:"active_days"`
	AverageCaloriesConsumedPerActiveDay float64   `json:"average_calories_consumed_per_active_day"`
	DayKeys                             []string  `json:"day_keys"`
	Labels                              []string  `json:"labels"`
	WorkoutsByDay                       []int     `json:"workouts_by_day"`
	CaloriesBurnedByDay                 []float64 `json:"calories_burned_by_day"`
	CaloriesConsumedByDay               []float64 `json:"calories_consumed_by_day"`
}

// DayTotals is the per-day reduction input.
type DayTotals struct {
	Workouts         int
	CaloriesBurned   float64
	CaloriesConsumed float64
}

// NewWeeklyStats reduces per-day totals. totals must be parallel to windows.
func NewWeeklyStats(windows []DayWindow, totals []DayTotals) *WeeklyStats {
	stats := &WeeklyStats{
		DayKeys:               make([]string, len(windows)),
		Labels:                make([]string, len(windows)),
		WorkoutsByDay:         make([]int, len(windows)),
		CaloriesBurnedByDay:   make([]float64, len(windows)),
		CaloriesConsumedByDay: make([]float64, len(windows)),
	}
	if len(windows) > 0 {
		stats.StartDate = windows[0].Key
		stats.EndDate = windows[len(windows)-1].Key
	}
	for i, w := range windows {
		stats.DayKeys[i] = w.Key
		stats.Labels[i] = w.Label
		if i >= len(totals) {
			continue
		}
		t := totals[i]
		stats.WorkoutsByDay[i] = t.Workouts
		stats.CaloriesBurnedByDay[i] = t.CaloriesBurned
		stats.CaloriesConsumedByDay[i] = t.CaloriesConsumed

		stats.TotalWorkouts += t.Workouts
		stats.CaloriesBurned += t.CaloriesBurned
		stats.CaloriesConsumed += t.CaloriesConsumed
		if t.CaloriesConsumed > 0 {
			stats.ActiveDays++
		}
	}
	if stats.ActiveDays > 0 {
		stats.AverageCaloriesConsumedPerActiveDay = stats.CaloriesConsumed / float64(stats.ActiveDays)
	}
	return stats
}
