package shared

import (
	"time"

	"petshop-booking/internal/domain/appointment"
	"petshop-booking/internal/domain/subscription"
	"petshop-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side view types.

type AppointmentSnapshot struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	PetID            uuid.UUID
	Status           appointment.Status
	StartTime        time.Time
	FromSubscription bool
}

type SubscriptionSnapshot struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	PlanID      uuid.UUID
	Status      subscription.SubStatus
	StartDate   time.Time
	RenewalDate time.Time
}

type AuthUserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         user.Role
	Name         string
	IsActive     bool
	LastLogin    *time.Time
}
