package subscription

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPlanName    = errors.New("plan name cannot be empty")
	ErrNoPlanCredits    = errors.New("plan must grant at least one credit")
	ErrNegativePrice    = errors.New("plan price cannot be negative")
	ErrInvalidSubStatus = errors.New("invalid subscription status")
)

// PlanCredit is one grant line of a plan: quantity credits for a service per
// renewal cycle.
type PlanCredit struct {
	ServiceID uuid.UUID `json:"serviceId"`
	Quantity  int       `json:"quantity"`
}

type Plan struct {
	id         uuid.UUID
	name       string
	priceCents int32
	credits    []PlanCredit
}

func NewPlan(name string, priceCents int32, credits []PlanCredit) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPlanName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if len(credits) == 0 {
		return nil, ErrNoPlanCredits
	}
	for _, c := range credits {
		if c.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	return &Plan{
		id:         uuid.New(),
		name:       name,
		priceCents: priceCents,
		credits:    credits,
	}, nil
}

func ReconstructPlan(id uuid.UUID, name string, priceCents int32, credits []PlanCredit) *Plan {
	return &Plan{id: id, name: name, priceCents: priceCents, credits: credits}
}

func (p *Plan) ID() uuid.UUID         { return p.id }
func (p *Plan) Name() string          { return p.name }
func (p *Plan) PriceCents() int32     { return p.priceCents }
func (p *Plan) Credits() []PlanCredit { return p.credits }

type SubStatus string

const (
	SubStatusActive    SubStatus = "ACTIVE"
	SubStatusCancelled SubStatus = "CANCELLED"
)

func (s SubStatus) String() string { return string(s) }

func (s SubStatus) IsValid() bool {
	return s == SubStatusActive || s == SubStatusCancelled
}

// Subscription ties a client to a plan for the current cycle. Credit rows are
// minted at subscribe time and re-minted by the renewal process.
type Subscription struct {
	id          uuid.UUID
	clientID    uuid.UUID
	planID      uuid.UUID
	planName    string
	status      SubStatus
	startDate   time.Time
	renewalDate time.Time
}

func NewSubscription(clientID uuid.UUID, plan *Plan, startDate time.Time) *Subscription {
	return &Subscription{
		id:          uuid.New(),
		clientID:    clientID,
		planID:      plan.ID(),
		planName:    plan.Name(),
		status:      SubStatusActive,
		startDate:   startDate,
		renewalDate: startDate.AddDate(0, 1, 0),
	}
}

func ReconstructSubscription(id, clientID, planID uuid.UUID, planName string, status SubStatus, startDate, renewalDate time.Time) *Subscription {
	return &Subscription{
		id:          id,
		clientID:    clientID,
		planID:      planID,
		planName:    planName,
		status:      status,
		startDate:   startDate,
		renewalDate: renewalDate,
	}
}

func (s *Subscription) ID() uuid.UUID          { return s.id }
func (s *Subscription) ClientID() uuid.UUID    { return s.clientID }
func (s *Subscription) PlanID() uuid.UUID      { return s.planID }
func (s *Subscription) PlanName() string       { return s.planName }
func (s *Subscription) Status() SubStatus      { return s.status }
func (s *Subscription) StartDate() time.Time   { return s.startDate }
func (s *Subscription) RenewalDate() time.Time { return s.renewalDate }

func (s *Subscription) IsActive() bool {
	return s.status == SubStatusActive
}

// DueForRenewal reports whether the cycle has lapsed as of now.
func (s *Subscription) DueForRenewal(now time.Time) bool {
	return s.IsActive() && !s.renewalDate.After(now)
}

// Renew advances the cycle one month from the previous renewal date.
func (s *Subscription) Renew() {
	s.renewalDate = s.renewalDate.AddDate(0, 1, 0)
}
