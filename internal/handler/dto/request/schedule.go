package request

import (
	"petshop-booking/internal/domain/schedule"
)

type ScheduleDayRequest struct {
	Open  bool   `json:"open"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// UpdateScheduleRequest is keyed by lowercase weekday name; omitted days are
// closed.
type UpdateScheduleRequest map[string]ScheduleDayRequest

func (r UpdateScheduleRequest) ToDomain() schedule.WeekConfig {
	cfg := make(schedule.WeekConfig, len(r))
	for day, d := range r {
		cfg[day] = schedule.DayConfig{Open: d.Open, Start: d.Start, End: d.End}
	}
	return cfg
}
