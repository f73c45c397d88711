package queries

import (
	"context"

	"github.com/google/uuid"
)

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context) ([]*ServiceView, error)
}

type ServiceViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindAll(ctx context.Context) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	repo ServiceViewRepo
}

func NewServiceQueries(repo ServiceViewRepo) ServiceQueries {
	return &serviceQueriesImpl{repo: repo}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *serviceQueriesImpl) List(ctx context.Context) ([]*ServiceView, error) {
	return q.repo.FindAll(ctx)
}

type PlanQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PlanView, error)
	List(ctx context.Context) ([]*PlanView, error)
}

type PlanViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PlanView, error)
	FindAll(ctx context.Context) ([]*PlanView, error)
}

type planQueriesImpl struct {
	repo PlanViewRepo
}

func NewPlanQueries(repo PlanViewRepo) PlanQueries {
	return &planQueriesImpl{repo: repo}
}

func (q *planQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PlanView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *planQueriesImpl) List(ctx context.Context) ([]*PlanView, error) {
	return q.repo.FindAll(ctx)
}
