package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeekWindow(t *testing.T) {
	t.Run("Seven windows ending on the local date of now", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 15, 45, 0, 0, time.UTC)

		windows := BuildWeekWindow(now, time.UTC)

		require.Len(t, windows, WindowDays)
		assert.Equal(t, "2026-03-08", windows[0].Key)
		assert.Equal(t, "2026-03-14", windows[6].Key)
		assert.Equal(t, "14/3", windows[6].Label)
		assert.Equal(t, "2026-03-14T00:00:00.000Z", windows[6].Start)
		assert.Equal(t, "2026-03-14T23:59:59.999Z", windows[6].End)

		for i := 1; i < len(windows); i++ {
			assert.Less(t, windows[i-1].Key, windows[i].Key, "windows must be oldest first")
			assert.Less(t, windows[i-1].End, windows[i].Start, "windows must not overlap")
		}
	})

	t.Run("Crosses month and year boundaries", func(t *testing.T) {
		windows := BuildWeekWindow(time.Date(2026, 1, 3, 9, 0, 0, 0, time.UTC), nil)

		assert.Equal(t, "2025-12-28", windows[0].Key)
		assert.Equal(t, "28/12", windows[0].Label)
		assert.Equal(t, "2026-01-03", windows[6].Key)
	})

	t.Run("Day key follows the reporting timezone", func(t *testing.T) {
		rome, err := time.LoadLocation("Europe/Rome")
		require.NoError(t, err)
		// 23:30 UTC on the 14th is already the 15th in Rome.
		now := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)

		windows := BuildWeekWindow(now, rome)

		assert.Equal(t, "2026-03-15", windows[6].Key)
		assert.Equal(t, "2026-03-14T23:00:00.000Z", windows[6].Start)
		assert.Equal(t, "2026-03-15T22:59:59.999Z", windows[6].End)
	})

	t.Run("Short DST day spans 23 hours", func(t *testing.T) {
		rome, err := time.LoadLocation("Europe/Rome")
		require.NoError(t, err)
		// Clocks go forward on 2026-03-29 in Rome.
		windows := BuildWeekWindow(time.Date(2026, 3, 30, 12, 0, 0, 0, rome), rome)

		dst := windows[5]
		require.Equal(t, "2026-03-29", dst.Key)
		start, _ := time.Parse(ISOLayout, dst.Start)
		end, _ := time.Parse(ISOLayout, dst.End)
		assert.Equal(t, 23*time.Hour, end.Sub(start)+time.Millisecond)
		assert.Equal(t, dst.End, FormatISO(mustParseISO(t, windows[6].Start).Add(-time.Millisecond)))
	})
}

func TestValidateDayKey(t *testing.T) {
	assert.NoError(t, ValidateDayKey("2026-02-28"))
	assert.ErrorIs(t, ValidateDayKey("2026-02-30"), ErrInvalidDayKey)
	assert.ErrorIs(t, ValidateDayKey("2026-2-3"), ErrInvalidDayKey)
	assert.ErrorIs(t, ValidateDayKey(""), ErrInvalidDayKey)
}

func TestFormatISO_LexicalOrderMatchesTimeOrder(t *testing.T) {
	a := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	b := a.Add(500 * time.Millisecond)
	c := a.Add(10 * time.Hour)

	assert.Less(t, FormatISO(a), FormatISO(b))
	assert.Less(t, FormatISO(b), FormatISO(c))
	assert.Equal(t, "2026-03-14T09:00:00.000Z", FormatISO(a))
}

func mustParseISO(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(ISOLayout, s)
	require.NoError(t, err)
	return v
}
