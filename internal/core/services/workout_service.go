package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

type WorkoutService struct {
	repo domain.WorkoutRepository
}

func NewWorkoutService(repo domain.WorkoutRepository) *WorkoutService {
	return &WorkoutService{
		repo: repo,
	}
}

type CreateWorkoutInput struct {
	UserID          string
	Name            string
	Type            string
	Notes           string
	DurationMinutes float64
	CaloriesBurned  float64
	OccurredAt      time.Time
}

// UpdateWorkoutInput is a partial edit: an empty Name or Type, nil pointers and a
// zero OccurredAt keep the stored values. A non-nil zero is applied.
type UpdateWorkoutInput struct {
	ID              string
	UserID          string
	Name            string
	Type            string
	Notes           *string
	DurationMinutes *float64
	CaloriesBurned  *float64
	OccurredAt      time.Time
}

func mergeString(newVal, oldVal string) string {
	if newVal == "" {
		return oldVal
	}
	return newVal
}

func mergeFloat(newVal *float64, oldVal float64) float64 {
	if newVal == nil {
		return oldVal
	}
	return *newVal
}

func (s *WorkoutService) Create(ctx context.Context, input CreateWorkoutInput) (*domain.Workout, error) {
	workout, err := domain.NewWorkout(
		input.UserID,
		input.Name,
		input.Type,
		input.Notes,
		input.DurationMinutes,
		input.CaloriesBurned,
		input.OccurredAt,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, workout); err != nil {
		return nil, err
	}

	return workout, nil
}

func (s *WorkoutService) Update(ctx context.Context, input UpdateWorkoutInput) (*domain.Workout, error) {
	workout, err := s.repo.GetByID(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	notes := workout.Notes
	if input.Notes != nil {
		notes = *input.Notes
	}

	err = workout.Update(
		mergeString(input.Name, workout.Name),
		mergeString(input.Type, string(workout.Type)),
		notes,
		mergeFloat(input.DurationMinutes, workout.DurationMinutes),
		mergeFloat(input.CaloriesBurned, workout.CaloriesBurned),
		input.OccurredAt,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, workout); err != nil {
		return nil, err
	}

	return workout, nil
}

func (s *WorkoutService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *WorkoutService) GetByID(ctx context.Context, userID, id string) (*domain.Workout, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *WorkoutService) ListByUserID(ctx context.Context, userID string) ([]*domain.Workout, error) {
	return s.repo.ListByUserID(ctx, userID)
}
