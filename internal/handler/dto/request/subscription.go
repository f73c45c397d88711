package request

import (
	"github.com/google/uuid"
)

type SubscribeRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
}
