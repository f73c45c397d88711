package queries

import (
	"context"

	"github.com/google/uuid"
)

type PetQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PetView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*PetView, error)
}

type PetViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PetView, error)
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*PetView, error)
}

type petQueriesImpl struct {
	repo PetViewRepo
}

func NewPetQueries(repo PetViewRepo) PetQueries {
	return &petQueriesImpl{repo: repo}
}

func (q *petQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PetView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *petQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*PetView, error) {
	return q.repo.FindByClient(ctx, clientID)
}
