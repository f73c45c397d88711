//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"petshop-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMinute(t *testing.T, s string) schedule.MinuteOfDay {
	t.Helper()
	m, err := schedule.ParseMinuteOfDay(s)
	require.NoError(t, err)
	return m
}

// Tue 09:00-18:00, Sunday closed, everything else open 08:00-20:00.
func testWeek(t *testing.T) schedule.Week {
	t.Helper()
	open := func(start, end string) schedule.DayWindow {
		w, err := schedule.NewDayWindow(true, mustMinute(t, start), mustMinute(t, end))
		require.NoError(t, err)
		return w
	}
	days := map[time.Weekday]schedule.DayWindow{
		time.Monday:    open("08:00", "20:00"),
		time.Tuesday:   open("09:00", "18:00"),
		time.Wednesday: open("08:00", "20:00"),
		time.Thursday:  open("08:00", "20:00"),
		time.Friday:    open("08:00", "20:00"),
		time.Saturday:  open("08:00", "20:00"),
		// Sunday left as zero value: closed
	}
	return schedule.NewWeek(days)
}

func TestParseMinuteOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "garbage", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			m, err := schedule.ParseMinuteOfDay(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, int(m))
		})
	}
}

func TestMinuteOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", mustMinute(t, "9:5").String())
	assert.Equal(t, "18:00", mustMinute(t, "18:00").String())
}

func TestNewDayWindow(t *testing.T) {
	_, err := schedule.NewDayWindow(true, mustMinute(t, "18:00"), mustMinute(t, "09:00"))
	assert.ErrorIs(t, err, schedule.ErrInvalidWindow)

	// Closed days may carry a zero window.
	w, err := schedule.NewDayWindow(false, 0, 0)
	require.NoError(t, err)
	assert.False(t, w.Open)
}

func TestCheckWindow(t *testing.T) {
	week := testWeek(t)
	// 2026-09-01 is a Tuesday.
	tuesday := func(hour, min int) time.Time {
		return time.Date(2026, 9, 1, hour, min, 0, 0, time.Local)
	}
	sunday := time.Date(2026, 9, 6, 10, 0, 0, 0, time.Local)

	cases := []struct {
		name     string
		start    time.Time
		duration int
		errIs    error
	}{
		{name: "inside hours", start: tuesday(10, 0), duration: 60},
		{name: "starts at opening", start: tuesday(9, 0), duration: 30},
		{name: "ends exactly at closing", start: tuesday(17, 0), duration: 60},
		{name: "one minute past closing", start: tuesday(17, 1), duration: 60, errIs: schedule.ErrOutOfHours},
		{name: "starts before opening", start: tuesday(8, 30), duration: 30, errIs: schedule.ErrOutOfHours},
		{name: "entirely after closing", start: tuesday(20, 0), duration: 60, errIs: schedule.ErrOutOfHours},
		{name: "spans past closing", start: tuesday(17, 30), duration: 31, errIs: schedule.ErrOutOfHours},
		{name: "closed day regardless of duration", start: sunday, duration: 1, errIs: schedule.ErrClosed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			win, err := week.CheckWindow(tc.start, tc.duration)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, win.Open)
			assert.Equal(t, "09:00", win.Start.String())
			assert.Equal(t, "18:00", win.End.String())
		})
	}
}
