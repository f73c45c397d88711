package response

import (
	"time"

	"petshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentServiceResponse struct {
	ServiceID       uuid.UUID `json:"serviceId"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceCents      int32     `json:"priceCents"`
}

type AppointmentResponse struct {
	ID               uuid.UUID                    `json:"id"`
	ClientID         uuid.UUID                    `json:"clientId"`
	ClientName       string                       `json:"clientName"`
	PetID            uuid.UUID                    `json:"petId"`
	PetName          string                       `json:"petName"`
	StartTime        time.Time                    `json:"startTime"`
	EndTime          time.Time                    `json:"endTime"`
	DurationMinutes  int                          `json:"durationMinutes"`
	Status           string                       `json:"status"`
	Notes            *string                      `json:"notes,omitempty"`
	FromSubscription bool                         `json:"fromSubscription"`
	TotalPriceCents  int32                        `json:"totalPriceCents"`
	Services         []AppointmentServiceResponse `json:"services"`
	CreatedAt        time.Time                    `json:"createdAt"`
	UpdatedAt        time.Time                    `json:"updatedAt"`
}

type AppointmentListResponse struct {
	ID         uuid.UUID `json:"id"`
	ClientID   uuid.UUID `json:"clientId"`
	ClientName string    `json:"clientName"`
	PetName    string    `json:"petName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	services := make([]AppointmentServiceResponse, len(v.Services))
	for i, s := range v.Services {
		services[i] = AppointmentServiceResponse{
			ServiceID:       s.ServiceID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			PriceCents:      s.PriceCents,
		}
	}
	return &AppointmentResponse{
		ID:               v.ID,
		ClientID:         v.ClientID,
		ClientName:       v.ClientName,
		PetID:            v.PetID,
		PetName:          v.PetName,
		StartTime:        v.StartTime,
		EndTime:          v.EndTime,
		DurationMinutes:  v.DurationMinutes,
		Status:           v.Status,
		Notes:            v.Notes,
		FromSubscription: v.FromSubscription,
		TotalPriceCents:  v.TotalPriceCents,
		Services:         services,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromAppointmentListItem(v *queries.AppointmentListItem) *AppointmentListResponse {
	return &AppointmentListResponse{
		ID:         v.ID,
		ClientID:   v.ClientID,
		ClientName: v.ClientName,
		PetName:    v.PetName,
		StartTime:  v.StartTime,
		EndTime:    v.EndTime,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
	}
}
