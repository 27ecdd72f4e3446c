package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDayKey = errors.New("invalid day (expected YYYY-MM-DD)")

const (
	DayKeyLayout = "2006-01-02"
	// ISOLayout is fixed-width so lexical order of stored instants matches time order.
	ISOLayout  = "2006-01-02T15:04:05.000Z"
	WindowDays = 7
)

// DayWindow describes one calendar day of the reporting timezone.
type DayWindow struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

func ValidateDayKey(key string) error {
	if _, err := time.Parse(DayKeyLayout, key); err != nil {
		return ErrInvalidDayKey
	}
	return nil
}

// DayKeyAt returns the calendar day of t in loc.
func DayKeyAt(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayKeyLayout)
}

// NewDayWindow spans local midnight to the instant before the next local midnight,
// so 23h and 25h days around DST switches are covered exactly.
func NewDayWindow(day time.Time, loc *time.Location) DayWindow {
	if loc == nil {
		loc = time.UTC
	}
	local := day.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
	return DayWindow{
		Key:   start.Format(DayKeyLayout),
		Label: fmt.Sprintf("%d/%d", start.Day(), int(start.Month())),
		Start: FormatISO(start),
		End:   FormatISO(end),
	}
}

// BuildWeekWindow returns the WindowDays days ending on now's local date, oldest first.
func BuildWeekWindow(now time.Time, loc *time.Location) []DayWindow {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	windows := make([]DayWindow, 0, WindowDays)
	for i := WindowDays - 1; i >= 0; i-- {
		day := time.Date(local.Year(), local.Month(), local.Day()-i, 12, 0, 0, 0, loc)
		windows = append(windows, NewDayWindow(day, loc))
	}
	return windows
}
