package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrClosed        = errors.New("shop is closed on this day")
	ErrOutOfHours    = errors.New("window falls outside operating hours")
	ErrInvalidWindow = errors.New("invalid day window")
	ErrInvalidTime   = errors.New("invalid time of day")
)

// MinuteOfDay is a wall-clock time expressed as minutes since midnight.
type MinuteOfDay int

// ParseMinuteOfDay parses an "HH:MM" string.
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, ErrInvalidTime
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidTime
	}
	return MinuteOfDay(h*60 + m), nil
}

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// DayWindow is one weekday's entry in the shop schedule. Start and End are
// only meaningful when Open is true.
type DayWindow struct {
	Open  bool
	Start MinuteOfDay
	End   MinuteOfDay
}

func NewDayWindow(open bool, start, end MinuteOfDay) (DayWindow, error) {
	if open && start >= end {
		return DayWindow{}, ErrInvalidWindow
	}
	return DayWindow{Open: open, Start: start, End: end}, nil
}

// Week is the shop's weekly operating schedule. One instance per shop.
type Week struct {
	days [7]DayWindow
}

func NewWeek(days map[time.Weekday]DayWindow) Week {
	var w Week
	for d, win := range days {
		w.days[int(d)] = win
	}
	return w
}

func (w Week) Day(d time.Weekday) DayWindow {
	return w.days[int(d)]
}

// CheckWindow reports whether an appointment starting at start and running
// durationMinutes fits inside the operating hours of start's weekday. The
// weekday and minutes come from start's wall clock; no timezone conversion is
// performed beyond what the host environment's local time already applied.
//
// Containment is strict: the appointment may end exactly at closing time but
// not one minute past it.
func (w Week) CheckWindow(start time.Time, durationMinutes int) (DayWindow, error) {
	win := w.Day(start.Weekday())
	if !win.Open {
		return win, ErrClosed
	}

	startMin := MinuteOfDay(start.Hour()*60 + start.Minute())
	endMin := startMin + MinuteOfDay(durationMinutes)

	if startMin < win.Start || endMin > win.End {
		return win, ErrOutOfHours
	}
	return win, nil
}
