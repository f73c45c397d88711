package queries

import (
	"context"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetAuthorizedUser(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	GetClient(ctx context.Context, id uuid.UUID) (*ClientView, error)
	ListClients(ctx context.Context, limit, offset int) ([]*ClientView, error)
}

type UserViewRepo interface {
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindClientByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	FindClients(ctx context.Context, limit, offset int32) ([]*ClientView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetAuthorizedUser(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	return q.repo.FindAuthorizedByID(ctx, id)
}

func (q *userQueriesImpl) GetClient(ctx context.Context, id uuid.UUID) (*ClientView, error) {
	return q.repo.FindClientByID(ctx, id)
}

func (q *userQueriesImpl) ListClients(ctx context.Context, limit, offset int) ([]*ClientView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.FindClients(ctx, int32(limit), int32(offset))
}
