package schedule

import "time"

// dayKeys indexes the persisted form by lowercase weekday name, matching the
// shape the admin API accepts.
var dayKeys = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// DayConfig is the persisted form of one weekday's hours. Start and End are
// "HH:MM" strings and are ignored when Open is false.
type DayConfig struct {
	Open  bool   `json:"open"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// WeekConfig is the shop schedule as stored in the settings row, keyed by
// lowercase weekday name. Missing days are treated as closed.
type WeekConfig map[string]DayConfig

// Week validates every configured day and builds the domain schedule.
func (c WeekConfig) Week() (Week, error) {
	days := make(map[time.Weekday]DayWindow, len(c))
	for i, key := range dayKeys {
		dc, ok := c[key]
		if !ok || !dc.Open {
			continue
		}
		start, err := ParseMinuteOfDay(dc.Start)
		if err != nil {
			return Week{}, err
		}
		end, err := ParseMinuteOfDay(dc.End)
		if err != nil {
			return Week{}, err
		}
		win, err := NewDayWindow(true, start, end)
		if err != nil {
			return Week{}, err
		}
		days[time.Weekday(i)] = win
	}
	return NewWeek(days), nil
}

// Validate checks the config without building a Week.
func (c WeekConfig) Validate() error {
	_, err := c.Week()
	return err
}
