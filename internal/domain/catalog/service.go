package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("service name cannot be empty")
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrNegativePrice   = errors.New("service price cannot be negative")
	ErrEmptyServiceSet = errors.New("at least one service is required")
)

// Service is a bookable catalog entry. Immutable during a booking operation.
type Service struct {
	id              uuid.UUID
	name            string
	durationMinutes int
	priceCents      int32
}

func NewService(name string, durationMinutes int, priceCents int32) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Service{
		id:              uuid.New(),
		name:            name,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
	}, nil
}

func ReconstructService(id uuid.UUID, name string, durationMinutes int, priceCents int32) *Service {
	return &Service{
		id:              id,
		name:            name,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
	}
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) DurationMinutes() int { return s.durationMinutes }
func (s *Service) PriceCents() int32    { return s.priceCents }

// TotalDuration sums the durations of all services in one appointment.
func TotalDuration(services []*Service) (int, error) {
	if len(services) == 0 {
		return 0, ErrEmptyServiceSet
	}
	total := 0
	for _, s := range services {
		total += s.durationMinutes
	}
	return total, nil
}

// TotalPriceCents sums service prices; used for display and for the payment
// flow that lives outside the booking core.
func TotalPriceCents(services []*Service) int32 {
	var total int32
	for _, s := range services {
		total += s.priceCents
	}
	return total
}
