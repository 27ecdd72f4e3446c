package services

import (
	"context"
	"fmt"
	"time"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultQueryTimeout   = 5 * time.Second
	DefaultMaxConcurrency = domain.WindowDays
)

type AggregatorConfig struct {
	// Location is the reporting timezone used for day boundaries. Nil means UTC.
	Location       *time.Location
	QueryTimeout   time.Duration
	MaxConcurrency int
	Clock          func() time.Time
}

type WeeklyAggregator struct {
	workouts domain.WorkoutRepository
	foods    domain.FoodRepository
	cfg      AggregatorConfig
}

func NewWeeklyAggregator(workouts domain.WorkoutRepository, foods domain.FoodRepository, cfg AggregatorConfig) *WeeklyAggregator {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = DefaultQueryTimeout
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &WeeklyAggregator{
		workouts: workouts,
		foods:    foods,
		cfg:      cfg,
	}
}

func (a *WeeklyAggregator) Location() *time.Location {
	return a.cfg.Location
}

// ComputeWeeklyStats aggregates the seven days ending on now's local date.
// A zero now means the injected clock. An empty userID yields zeroed stats
// without touching storage. Any failing day query fails the whole call.
func (a *WeeklyAggregator) ComputeWeeklyStats(ctx context.Context, userID string, now time.Time) (*domain.WeeklyStats, error) {
	if now.IsZero() {
		now = a.cfg.Clock()
	}
	windows := domain.BuildWeekWindow(now, a.cfg.Location)
	totals := make([]domain.DayTotals, len(windows))

	if userID == "" {
		return domain.NewWeeklyStats(windows, totals), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.MaxConcurrency)

	for i, w := range windows {
		g.Go(func() error {
			dayTotals, err := a.aggregateDay(gctx, userID, w)
			if err != nil {
				return fmt.Errorf("%w: day %s: %w", domain.ErrAggregationFailed, w.Key, err)
			}
			totals[i] = dayTotals
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAggregationFailed, err)
	}

	return domain.NewWeeklyStats(windows, totals), nil
}

func (a *WeeklyAggregator) aggregateDay(ctx context.Context, userID string, w domain.DayWindow) (domain.DayTotals, error) {
	var totals domain.DayTotals

	workouts, err := a.listWorkouts(ctx, userID, w)
	if err != nil {
		return totals, fmt.Errorf("workouts: %w", err)
	}
	for _, wk := range workouts {
		totals.Workouts++
		totals.CaloriesBurned += wk.CaloriesBurned
	}

	foods, err := a.listFoods(ctx, userID, w.Key)
	if err != nil {
		return totals, fmt.Errorf("foods: %w", err)
	}
	for _, f := range foods {
		totals.CaloriesConsumed += f.EffectiveCalories
	}

	return totals, nil
}

func (a *WeeklyAggregator) listWorkouts(ctx context.Context, userID string, w domain.DayWindow) ([]*domain.Workout, error) {
	qctx, cancel := context.WithTimeout(ctx, a.cfg.QueryTimeout)
	defer cancel()
	return a.workouts.ListInRange(qctx, userID, w.Start, w.End)
}

func (a *WeeklyAggregator) listFoods(ctx context.Context, userID, day string) ([]*domain.ConsumedFood, error) {
	qctx, cancel := context.WithTimeout(ctx, a.cfg.QueryTimeout)
	defer cancel()
	return a.foods.ListByDay(qctx, userID, day)
}
