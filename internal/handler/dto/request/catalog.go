package request

import (
	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	PriceCents      int32  `json:"price_cents" binding:"gte=0"`
}

type UpdateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	PriceCents      int32  `json:"price_cents" binding:"gte=0"`
}

type PlanCreditRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

type CreatePlanRequest struct {
	Name       string              `json:"name" binding:"required"`
	PriceCents int32               `json:"price_cents" binding:"gte=0"`
	Credits    []PlanCreditRequest `json:"credits" binding:"required,min=1,dive"`
}

type UpdatePlanRequest struct {
	Name       string              `json:"name" binding:"required"`
	PriceCents int32               `json:"price_cents" binding:"gte=0"`
	Credits    []PlanCreditRequest `json:"credits" binding:"required,min=1,dive"`
}
