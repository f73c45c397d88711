package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PetID      uuid.UUID   `json:"pet_id" binding:"required"`
	ServiceIDs []uuid.UUID `json:"service_ids" binding:"required,min=1"`
	StartTime  time.Time   `json:"start_time" binding:"required"`
	Notes      *string     `json:"notes,omitempty"`
	// UseSubscription pays with plan credits instead of at the counter.
	UseSubscription bool `json:"use_subscription"`
}

// DistinctServiceIDs preserves request order while dropping duplicates, so a
// service listed twice is booked and charged once.
func (r CreateAppointmentRequest) DistinctServiceIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(r.ServiceIDs))
	distinct := make([]uuid.UUID, 0, len(r.ServiceIDs))
	for _, id := range r.ServiceIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}
