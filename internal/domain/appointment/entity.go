package appointment

import (
	"errors"
	"time"

	"petshop-booking/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid appointment status")
	ErrNoServices    = errors.New("appointment requires at least one service")
)

// Appointment is the booked visit. End time is always derived from the
// service durations, never stored.
type Appointment struct {
	id               uuid.UUID
	clientID         uuid.UUID
	petID            uuid.UUID
	services         []*catalog.Service
	startTime        time.Time
	status           Status
	notes            string
	fromSubscription bool
	createdAt        time.Time
	updatedAt        time.Time
}

// New builds a bookable appointment. Subscription-funded bookings are
// confirmed immediately; everything else waits for payment as PENDING.
func New(
	clientID, petID uuid.UUID,
	services []*catalog.Service,
	startTime time.Time,
	notes string,
	fromSubscription bool,
) (*Appointment, error) {
	if len(services) == 0 {
		return nil, ErrNoServices
	}

	status := StatusPending
	if fromSubscription {
		status = StatusConfirmed
	}

	return &Appointment{
		id:               uuid.New(),
		clientID:         clientID,
		petID:            petID,
		services:         services,
		startTime:        startTime,
		status:           status,
		notes:            notes,
		fromSubscription: fromSubscription,
	}, nil
}

func Reconstruct(
	id, clientID, petID uuid.UUID,
	services []*catalog.Service,
	startTime time.Time,
	status Status,
	notes string,
	fromSubscription bool,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:               id,
		clientID:         clientID,
		petID:            petID,
		services:         services,
		startTime:        startTime,
		status:           status,
		notes:            notes,
		fromSubscription: fromSubscription,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (a *Appointment) ID() uuid.UUID                { return a.id }
func (a *Appointment) ClientID() uuid.UUID          { return a.clientID }
func (a *Appointment) PetID() uuid.UUID             { return a.petID }
func (a *Appointment) Services() []*catalog.Service { return a.services }
func (a *Appointment) StartTime() time.Time         { return a.startTime }
func (a *Appointment) Status() Status               { return a.status }
func (a *Appointment) Notes() string                { return a.notes }
func (a *Appointment) FromSubscription() bool       { return a.fromSubscription }
func (a *Appointment) CreatedAt() time.Time         { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time         { return a.updatedAt }

func (a *Appointment) DurationMinutes() int {
	total := 0
	for _, s := range a.services {
		total += s.DurationMinutes()
	}
	return total
}

// EndTime is startTime + sum of service durations.
func (a *Appointment) EndTime() time.Time {
	return a.startTime.Add(time.Duration(a.DurationMinutes()) * time.Minute)
}

func (a *Appointment) Window() Window {
	return Window{Start: a.startTime, End: a.EndTime()}
}

func (a *Appointment) IsCancelled() bool {
	return a.status == StatusCancelled
}
