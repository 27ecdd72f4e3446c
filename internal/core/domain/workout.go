package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrWorkoutNameEmpty     = errors.New("workout name cannot be empty")
	ErrWorkoutNameTooLong   = errors.New("workout name is too long (max 100 chars)")
	ErrWorkoutNotesTooLong  = errors.New("workout notes are too long (max 500 chars)")
	ErrWorkoutInvalidUserID = errors.New("invalid user id")
	ErrInvalidWorkoutType   = errors.New("invalid workout type")
	ErrInvalidDuration      = errors.New("duration must be greater than zero")
	ErrNegativeCalories     = errors.New("calories cannot be negative")
)

type WorkoutType string

const (
	WorkoutTypeCardio   WorkoutType = "cardio"
	WorkoutTypeStrength WorkoutType = "strength"
	WorkoutTypeYoga     WorkoutType = "yoga"
	WorkoutTypePilates  WorkoutType = "pilates"
	WorkoutTypeSwimming WorkoutType = "swimming"
	WorkoutTypeCycling  WorkoutType = "cycling"
	WorkoutTypeRunning  WorkoutType = "running"
	WorkoutTypeOther    WorkoutType = "other"

	MaxWorkoutNameLen  = 100
	MaxWorkoutNotesLen = 500
)

var workoutTypes = []WorkoutType{
	WorkoutTypeCardio,
	WorkoutTypeStrength,
	WorkoutTypeYoga,
	WorkoutTypePilates,
	WorkoutTypeSwimming,
	WorkoutTypeCycling,
	WorkoutTypeRunning,
	WorkoutTypeOther,
}

// WorkoutTypes lists the accepted categories in display order.
func WorkoutTypes() []WorkoutType {
	out := make([]WorkoutType, len(workoutTypes))
	copy(out, workoutTypes)
	return out
}

// ParseWorkoutType matches case-insensitively. An empty value maps to other.
func ParseWorkoutType(raw string) (WorkoutType, error) {
	clean := strings.ToLower(strings.TrimSpace(raw))
	if clean == "" {
		return WorkoutTypeOther, nil
	}
	for _, t := range workoutTypes {
		if string(t) == clean {
			return t, nil
		}
	}
	return "", ErrInvalidWorkoutType
}

type Workout struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Name            string      `json:"name"`
	Type            WorkoutType `json:"type"`
	DurationMinutes float64     `json:"duration_minutes"`
	CaloriesBurned  float64     `json:"calories_burned"`
	Notes           string      `json:"notes,omitempty"`
	OccurredAt      time.Time   `json:"occurred_at"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func validateWorkout(name, notes, wType string, duration, calories float64) (string, string, WorkoutType, error) {
	cleanName := strings.TrimSpace(name)
	if cleanName == "" {
		return "", "", "", ErrWorkoutNameEmpty
	}
	if len(cleanName) > MaxWorkoutNameLen {
		return "", "", "", ErrWorkoutNameTooLong
	}
	cleanNotes := strings.TrimSpace(notes)
	if len(cleanNotes) > MaxWorkoutNotesLen {
		return "", "", "", ErrWorkoutNotesTooLong
	}
	parsedType, err := ParseWorkoutType(wType)
	if err != nil {
		return "", "", "", err
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return "", "", "", ErrInvalidDuration
	}
	if math.IsNaN(calories) || math.IsInf(calories, 0) || calories < 0 {
		return "", "", "", ErrNegativeCalories
	}
	return cleanName, cleanNotes, parsedType, nil
}

func NewWorkout(userID, name, wType, notes string, duration, calories float64, occurredAt time.Time) (*Workout, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrWorkoutInvalidUserID
	}
	cleanName, cleanNotes, parsedType, err := validateWorkout(name, notes, wType, duration, calories)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if occurredAt.IsZero() {
		occurredAt = now
	}
	return &Workout{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            cleanName,
		Type:            parsedType,
		DurationMinutes: duration,
		CaloriesBurned:  calories,
		Notes:           cleanNotes,
		OccurredAt:      occurredAt.UTC(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Update replaces the editable fields in place. ID and CreatedAt never change.
func (w *Workout) Update(name, wType, notes string, duration, calories float64, occurredAt time.Time) error {
	cleanName, cleanNotes, parsedType, err := validateWorkout(name, notes, wType, duration, calories)
	if err != nil {
		return err
	}
	w.Name = cleanName
	w.Type = parsedType
	w.Notes = cleanNotes
	w.DurationMinutes = duration
	w.CaloriesBurned = calories
	if !occurredAt.IsZero() {
		w.OccurredAt = occurredAt.UTC()
	}
	w.UpdatedAt = time.Now().UTC()
	return nil
}
