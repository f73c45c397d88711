package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AppointmentServiceView struct {
	ServiceID       uuid.UUID `json:"service_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int32     `json:"price_cents"`
}

type AppointmentView struct {
	ID               uuid.UUID                `json:"id"`
	ClientID         uuid.UUID                `json:"client_id"`
	ClientName       string                   `json:"client_name"`
	PetID            uuid.UUID                `json:"pet_id"`
	PetName          string                   `json:"pet_name"`
	StartTime        time.Time                `json:"start_time"`
	EndTime          time.Time                `json:"end_time"`
	DurationMinutes  int                      `json:"duration_minutes"`
	Status           string                   `json:"status"`
	Notes            *string                  `json:"notes,omitempty"`
	FromSubscription bool                     `json:"from_subscription"`
	TotalPriceCents  int32                    `json:"total_price_cents"`
	Services         []AppointmentServiceView `json:"services"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

type AppointmentListItem struct {
	ID         uuid.UUID `json:"id"`
	ClientID   uuid.UUID `json:"client_id"`
	ClientName string    `json:"client_name"`
	PetName    string    `json:"pet_name"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int32     `json:"price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PlanCreditView struct {
	ServiceID uuid.UUID `json:"service_id"`
	Quantity  int       `json:"quantity"`
}

type PlanView struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	PriceCents int32            `json:"price_cents"`
	Credits    []PlanCreditView `json:"credits"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type CreditView struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Total       int       `json:"total"`
	Used        int       `json:"used"`
	Remaining   int       `json:"remaining"`
	RenewalDate time.Time `json:"renewal_date"`
}

type SubscriptionView struct {
	ID          uuid.UUID    `json:"id"`
	ClientID    uuid.UUID    `json:"client_id"`
	PlanID      uuid.UUID    `json:"plan_id"`
	PlanName    string       `json:"plan_name"`
	Status      string       `json:"status"`
	StartDate   time.Time    `json:"start_date"`
	RenewalDate time.Time    `json:"renewal_date"`
	Credits     []CreditView `json:"credits"`
}

type PetView struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     *string   `json:"breed,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorizedUserView carries what the auth middleware needs to make decisions
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}
