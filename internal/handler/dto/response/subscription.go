package response

import (
	"time"

	"petshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreditResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Total       int       `json:"total"`
	Used        int       `json:"used"`
	Remaining   int       `json:"remaining"`
	RenewalDate time.Time `json:"renewalDate"`
}

type SubscriptionResponse struct {
	ID          uuid.UUID        `json:"id"`
	ClientID    uuid.UUID        `json:"clientId"`
	PlanID      uuid.UUID        `json:"planId"`
	PlanName    string           `json:"planName"`
	Status      string           `json:"status"`
	StartDate   time.Time        `json:"startDate"`
	RenewalDate time.Time        `json:"renewalDate"`
	Credits     []CreditResponse `json:"credits"`
}

func FromSubscriptionView(v *queries.SubscriptionView) *SubscriptionResponse {
	credits := make([]CreditResponse, len(v.Credits))
	for i, c := range v.Credits {
		credits[i] = CreditResponse{
			ID:          c.ID,
			ServiceID:   c.ServiceID,
			ServiceName: c.ServiceName,
			Total:       c.Total,
			Used:        c.Used,
			Remaining:   c.Remaining,
			RenewalDate: c.RenewalDate,
		}
	}
	return &SubscriptionResponse{
		ID:          v.ID,
		ClientID:    v.ClientID,
		PlanID:      v.PlanID,
		PlanName:    v.PlanName,
		Status:      v.Status,
		StartDate:   v.StartDate,
		RenewalDate: v.RenewalDate,
		Credits:     credits,
	}
}
