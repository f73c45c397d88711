package queries

import (
	"context"

	"github.com/google/uuid"
)

type SubscriptionQueries interface {
	// GetActiveByClient returns the client's current subscription with its
	// credit balances, or a NOT_FOUND repository error.
	GetActiveByClient(ctx context.Context, clientID uuid.UUID) (*SubscriptionView, error)
}

type SubscriptionViewRepo interface {
	FindActiveByClient(ctx context.Context, clientID uuid.UUID) (*SubscriptionView, error)
}

type subscriptionQueriesImpl struct {
	repo SubscriptionViewRepo
}

func NewSubscriptionQueries(repo SubscriptionViewRepo) SubscriptionQueries {
	return &subscriptionQueriesImpl{repo: repo}
}

func (q *subscriptionQueriesImpl) GetActiveByClient(ctx context.Context, clientID uuid.UUID) (*SubscriptionView, error) {
	return q.repo.FindActiveByClient(ctx, clientID)
}
