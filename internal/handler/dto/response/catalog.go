package response

import (
	"time"

	"petshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceCents      int32     `json:"priceCents"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:              v.ID,
		Name:            v.Name,
		DurationMinutes: v.DurationMinutes,
		PriceCents:      v.PriceCents,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

type PlanCreditResponse struct {
	ServiceID uuid.UUID `json:"serviceId"`
	Quantity  int       `json:"quantity"`
}

type PlanResponse struct {
	ID         uuid.UUID            `json:"id"`
	Name       string               `json:"name"`
	PriceCents int32                `json:"priceCents"`
	Credits    []PlanCreditResponse `json:"credits"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

func FromPlanView(v *queries.PlanView) *PlanResponse {
	credits := make([]PlanCreditResponse, len(v.Credits))
	for i, c := range v.Credits {
		credits[i] = PlanCreditResponse{ServiceID: c.ServiceID, Quantity: c.Quantity}
	}
	return &PlanResponse{
		ID:         v.ID,
		Name:       v.Name,
		PriceCents: v.PriceCents,
		Credits:    credits,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
