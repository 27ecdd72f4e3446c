package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

var _ domain.WorkoutRepository = (*DocumentWorkoutRepository)(nil)

const occurredAtField = "occurred_at"

// workoutDocument is the stored shape. OccurredAt is an ISO string so range queries compare lexically.
type workoutDocument struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	DurationMinutes float64 `json:"duration_minutes"`
	CaloriesBurned  float64 `json:"calories_burned"`
	Notes           string  `json:"notes,omitempty"`
	OccurredAt      string  `json:"occurred_at"`
}

type DocumentWorkoutRepository struct {
	store domain.DocumentStore
}

func NewDocumentWorkoutRepository(store domain.DocumentStore) *DocumentWorkoutRepository {
	return &DocumentWorkoutRepository{store: store}
}

func encodeWorkout(w *domain.Workout) (*domain.Document, error) {
	data, err := json.Marshal(workoutDocument{
		UserID:          w.UserID,
		Name:            w.Name,
		Type:            string(w.Type),
		DurationMinutes: w.DurationMinutes,
		CaloriesBurned:  w.CaloriesBurned,
		Notes:           w.Notes,
		OccurredAt:      domain.FormatISO(w.OccurredAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workout: %w", err)
	}
	return &domain.Document{
		ID:        w.ID,
		Data:      data,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}, nil
}

func decodeWorkout(userID string, doc *domain.Document) (*domain.Workout, error) {
	var wd workoutDocument
	if err := json.Unmarshal(doc.Data, &wd); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workout %s: %w", doc.ID, err)
	}
	occurredAt, err := time.Parse(domain.ISOLayout, wd.OccurredAt)
	if err != nil {
		return nil, fmt.Errorf("workout %s has malformed occurred_at: %w", doc.ID, err)
	}
	return &domain.Workout{
		ID:              doc.ID,
		UserID:          userID,
		Name:            wd.Name,
		Type:            domain.WorkoutType(wd.Type),
		DurationMinutes: wd.DurationMinutes,
		CaloriesBurned:  wd.CaloriesBurned,
		Notes:           wd.Notes,
		OccurredAt:      occurredAt,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}, nil
}

func decodeWorkouts(userID string, docs []*domain.Document) ([]*domain.Workout, error) {
	workouts := make([]*domain.Workout, 0, len(docs))
	for _, doc := range docs {
		w, err := decodeWorkout(userID, doc)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

func (r *DocumentWorkoutRepository) Create(ctx context.Context, w *domain.Workout) error {
	doc, err := encodeWorkout(w)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, domain.WorkoutsPath(w.UserID), doc); err != nil {
		return fmt.Errorf("failed to insert workout: %w", err)
	}
	return nil
}

// Update never recreates a workout that was deleted in the meantime.
func (r *DocumentWorkoutRepository) Update(ctx context.Context, w *domain.Workout) error {
	doc, err := encodeWorkout(w)
	if err != nil {
		return err
	}
	if err := r.store.Replace(ctx, domain.WorkoutsPath(w.UserID), doc); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return domain.ErrWorkoutNotFound
		}
		return fmt.Errorf("update workout failed: %w", err)
	}
	w.CreatedAt = doc.CreatedAt
	return nil
}

func (r *DocumentWorkoutRepository) Delete(ctx context.Context, userID, id string) error {
	err := r.store.Delete(ctx, domain.WorkoutsPath(userID), id)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		return domain.ErrWorkoutNotFound
	}
	return err
}

func (r *DocumentWorkoutRepository) GetByID(ctx context.Context, userID, id string) (*domain.Workout, error) {
	doc, err := r.store.Get(ctx, domain.WorkoutsPath(userID), id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, err
	}
	return decodeWorkout(userID, doc)
}

func (r *DocumentWorkoutRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Workout, error) {
	docs, err := r.store.QueryAll(ctx, domain.WorkoutsPath(userID))
	if err != nil {
		return nil, err
	}
	workouts, err := decodeWorkouts(userID, docs)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].OccurredAt.After(workouts[j].OccurredAt)
	})
	return workouts, nil
}

func (r *DocumentWorkoutRepository) ListInRange(ctx context.Context, userID, start, end string) ([]*domain.Workout, error) {
	docs, err := r.store.QueryRange(ctx, domain.WorkoutsPath(userID), occurredAtField, start, end)
	if err != nil {
		return nil, err
	}
	return decodeWorkouts(userID, docs)
}
