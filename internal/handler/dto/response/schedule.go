package response

import (
	"petshop-booking/internal/domain/schedule"
)

type ScheduleDayResponse struct {
	Open  bool   `json:"open"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type ScheduleResponse map[string]ScheduleDayResponse

func FromWeekConfig(cfg schedule.WeekConfig) ScheduleResponse {
	resp := make(ScheduleResponse, len(cfg))
	for day, d := range cfg {
		resp[day] = ScheduleDayResponse{Open: d.Open, Start: d.Start, End: d.End}
	}
	return resp
}
