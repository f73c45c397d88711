package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const defaultListLimit = 50

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*AppointmentListItem, error)
	ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*AppointmentListItem, error)
}

type AppointmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByClient(ctx context.Context, clientID uuid.UUID, limit, offset int32) ([]*AppointmentListItem, error)
	FindByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentViewRepo
}

func NewAppointmentQueries(repo AppointmentViewRepo) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *appointmentQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*AppointmentListItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.FindByClient(ctx, clientID, int32(limit), int32(offset))
}

func (q *appointmentQueriesImpl) ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*AppointmentListItem, error) {
	return q.repo.FindByDay(ctx, dayStart, dayEnd)
}
