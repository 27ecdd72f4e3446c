package domain

import (
	"context"
	"errors"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

type WorkoutRepository interface {
	// Create persists a new workout under the owner's collection.
	Create(ctx context.Context, workout *Workout) error
	// Update overwrites an existing workout. Returns ErrWorkoutNotFound if it is gone.
	Update(ctx context.Context, workout *Workout) error
	Delete(ctx context.Context, userID, id string) error
	GetByID(ctx context.Context, userID, id string) (*Workout, error)
	// ListByUserID returns the user's workouts, most recent occurrence first.
	ListByUserID(ctx context.Context, userID string) ([]*Workout, error)
	// ListInRange returns workouts whose occurrence lies in [start, end] (ISO instants, inclusive).
	ListInRange(ctx context.Context, userID, start, end string) ([]*Workout, error)
}

type FoodRepository interface {
	Create(ctx context.Context, food *ConsumedFood) error
	// ListByDay reads one day bucket in full.
	ListByDay(ctx context.Context, userID, day string) ([]*ConsumedFood, error)
}
