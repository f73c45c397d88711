package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCreditExhausted   = errors.New("no remaining credits for service")
	ErrCreditImbalance   = errors.New("credit counters do not add up")
	ErrInvalidQuantity   = errors.New("credit quantity must be positive")
	ErrNegativeRemaining = errors.New("remaining credits cannot be negative")
)

// Credit is a client's prepaid balance for one service under one plan cycle.
// Invariants: used + remaining == total, remaining >= 0. The storage layer
// enforces the same rules with CHECK constraints and a conditional decrement;
// this type is the in-memory mirror used by domain logic and tests.
type Credit struct {
	id          uuid.UUID
	clientID    uuid.UUID
	planID      uuid.UUID
	serviceID   uuid.UUID
	serviceName string
	total       int
	used        int
	remaining   int
	renewalDate time.Time
}

func NewCredit(clientID, planID, serviceID uuid.UUID, serviceName string, quantity int, renewalDate time.Time) (*Credit, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Credit{
		id:          uuid.New(),
		clientID:    clientID,
		planID:      planID,
		serviceID:   serviceID,
		serviceName: serviceName,
		total:       quantity,
		used:        0,
		remaining:   quantity,
		renewalDate: renewalDate,
	}, nil
}

func ReconstructCredit(id, clientID, planID, serviceID uuid.UUID, serviceName string, total, used, remaining int, renewalDate time.Time) (*Credit, error) {
	if remaining < 0 {
		return nil, ErrNegativeRemaining
	}
	if used+remaining != total {
		return nil, ErrCreditImbalance
	}
	return &Credit{
		id:          id,
		clientID:    clientID,
		planID:      planID,
		serviceID:   serviceID,
		serviceName: serviceName,
		total:       total,
		used:        used,
		remaining:   remaining,
		renewalDate: renewalDate,
	}, nil
}

func (c *Credit) ID() uuid.UUID          { return c.id }
func (c *Credit) ClientID() uuid.UUID    { return c.clientID }
func (c *Credit) PlanID() uuid.UUID      { return c.planID }
func (c *Credit) ServiceID() uuid.UUID   { return c.serviceID }
func (c *Credit) ServiceName() string    { return c.serviceName }
func (c *Credit) Total() int             { return c.total }
func (c *Credit) Used() int              { return c.used }
func (c *Credit) Remaining() int         { return c.remaining }
func (c *Credit) RenewalDate() time.Time { return c.renewalDate }

// Consume spends one credit. Never drives remaining below zero.
func (c *Credit) Consume() error {
	if c.remaining <= 0 {
		return ErrCreditExhausted
	}
	c.used++
	c.remaining--
	return nil
}
