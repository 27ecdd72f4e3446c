package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkout(t *testing.T) {
	occurred := time.Date(2026, 3, 14, 7, 30, 0, 0, time.FixedZone("WET", 0))

	t.Run("Should trim fields and assign identity", func(t *testing.T) {
		w, err := NewWorkout("user-1", "  Morning run ", "Running", "  felt good ", 30, 280, occurred)

		require.NoError(t, err)
		assert.NotEmpty(t, w.ID)
		assert.Equal(t, "user-1", w.UserID)
		assert.Equal(t, "Morning run", w.Name)
		assert.Equal(t, WorkoutTypeRunning, w.Type)
		assert.Equal(t, "felt good", w.Notes)
		assert.Equal(t, 30.0, w.DurationMinutes)
		assert.Equal(t, 280.0, w.CaloriesBurned)
		assert.Equal(t, occurred.UTC(), w.OccurredAt)
		assert.False(t, w.CreatedAt.IsZero())
		assert.Equal(t, w.CreatedAt, w.UpdatedAt)
	})

	t.Run("Zero occurrence defaults to now and empty type to other", func(t *testing.T) {
		before := time.Now().UTC()
		w, err := NewWorkout("user-1", "Stretch", "", "", 10, 0, time.Time{})

		require.NoError(t, err)
		assert.Equal(t, WorkoutTypeOther, w.Type)
		assert.False(t, w.OccurredAt.Before(before))
	})

	tests := []struct {
		name     string
		userID   string
		wName    string
		wType    string
		notes    string
		duration float64
		calories float64
		wantErr  error
	}{
		{"Missing user", "", "Run", "running", "", 10, 0, ErrWorkoutInvalidUserID},
		{"Blank name", "u", "   ", "running", "", 10, 0, ErrWorkoutNameEmpty},
		{"Name too long", "u", strings.Repeat("a", MaxWorkoutNameLen+1), "running", "", 10, 0, ErrWorkoutNameTooLong},
		{"Notes too long", "u", "Run", "running", strings.Repeat("n", MaxWorkoutNotesLen+1), 10, 0, ErrWorkoutNotesTooLong},
		{"Unknown type", "u", "Run", "parkour", "", 10, 0, ErrInvalidWorkoutType},
		{"Zero duration", "u", "Run", "running", "", 0, 0, ErrInvalidDuration},
		{"Negative duration", "u", "Run", "running", "", -5, 0, ErrInvalidDuration},
		{"Negative calories", "u", "Run", "running", "", 10, -1, ErrNegativeCalories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorkout(tt.userID, tt.wName, tt.wType, tt.notes, tt.duration, tt.calories, occurred)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWorkout_Update(t *testing.T) {
	original, err := NewWorkout("user-1", "Swim", "swimming", "", 45, 400, time.Now())
	require.NoError(t, err)
	id, createdAt := original.ID, original.CreatedAt

	time.Sleep(1 * time.Millisecond)
	newDate := time.Date(2026, 1, 2, 18, 0, 0, 0, time.UTC)

	require.NoError(t, original.Update("Long swim", "SWIMMING", "pool", 60, 520, newDate))

	assert.Equal(t, id, original.ID, "ID must survive edits")
	assert.Equal(t, createdAt, original.CreatedAt, "CreatedAt must survive edits")
	assert.True(t, original.UpdatedAt.After(createdAt))
	assert.Equal(t, "Long swim", original.Name)
	assert.Equal(t, 60.0, original.DurationMinutes)
	assert.Equal(t, newDate, original.OccurredAt)

	t.Run("Invalid edit leaves the workout untouched", func(t *testing.T) {
		err := original.Update("", "swimming", "", 60, 520, time.Time{})
		assert.ErrorIs(t, err, ErrWorkoutNameEmpty)
		assert.Equal(t, "Long swim", original.Name)
	})
}

func TestParseWorkoutType(t *testing.T) {
	for _, wt := range WorkoutTypes() {
		parsed, err := ParseWorkoutType(strings.ToUpper(string(wt)))
		require.NoError(t, err)
		assert.Equal(t, wt, parsed)
	}
	assert.Len(t, WorkoutTypes(), 8)
}
