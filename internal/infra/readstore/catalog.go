package readstore

import (
	"context"
	"encoding/json"

	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"
	"petshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const findServiceViewSQL = `
SELECT id, name, duration_minutes, price_cents, created_at, updated_at
FROM services
WHERE id = $1`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	var view queries.ServiceView
	err := r.db.QueryRow(ctx, findServiceViewSQL, id).Scan(
		&view.ID, &view.Name, &view.DurationMinutes, &view.PriceCents, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service view", err)
	}
	return &view, nil
}

const listServicesSQL = `
SELECT id, name, duration_minutes, price_cents, created_at, updated_at
FROM services
ORDER BY name`

func (r *ServiceReadStore) FindAll(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, listServicesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var view queries.ServiceView
		if err := rows.Scan(&view.ID, &view.Name, &view.DurationMinutes, &view.PriceCents, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}
	return views, nil
}

type PlanReadStore struct {
	db db.DBTX
}

func NewPlanReadStore(dbtx db.DBTX) *PlanReadStore {
	return &PlanReadStore{db: dbtx}
}

const findPlanViewSQL = `
SELECT id, name, price_cents, credits, created_at, updated_at
FROM subscription_plans
WHERE id = $1`

func (r *PlanReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PlanView, error) {
	var (
		view queries.PlanView
		raw  []byte
	)
	err := r.db.QueryRow(ctx, findPlanViewSQL, id).Scan(
		&view.ID, &view.Name, &view.PriceCents, &raw, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find plan view", err)
	}
	if err := decodePlanCredits(raw, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

const listPlansSQL = `
SELECT id, name, price_cents, credits, created_at, updated_at
FROM subscription_plans
ORDER BY price_cents`

func (r *PlanReadStore) FindAll(ctx context.Context) ([]*queries.PlanView, error) {
	rows, err := r.db.Query(ctx, listPlansSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list plans", err)
	}
	defer rows.Close()

	var views []*queries.PlanView
	for rows.Next() {
		var (
			view queries.PlanView
			raw  []byte
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.PriceCents, &raw, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan plan row", err)
		}
		if err := decodePlanCredits(raw, &view); err != nil {
			return nil, err
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read plan rows", err)
	}
	return views, nil
}

// Plan credit grants are stored with the serviceId/quantity keys the admin API
// writes; the view re-exposes them in snake case.
func decodePlanCredits(raw []byte, view *queries.PlanView) error {
	var stored []struct {
		ServiceID uuid.UUID `json:"serviceId"`
		Quantity  int       `json:"quantity"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return infra.WrapRepoErr("failed to decode plan credits", err)
	}
	view.Credits = make([]queries.PlanCreditView, len(stored))
	for i, s := range stored {
		view.Credits[i] = queries.PlanCreditView{ServiceID: s.ServiceID, Quantity: s.Quantity}
	}
	return nil
}
