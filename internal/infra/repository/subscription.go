package repository

import (
	"context"
	"encoding/json"
	"time"

	"petshop-booking/internal/domain/subscription"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"
	"petshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscriptionRepository struct{}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{}
}

const insertSubscriptionSQL = `
INSERT INTO subscriptions (id, client_id, plan_id, status, start_date, renewal_date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *SubscriptionRepository) Create(ctx context.Context, tx db.DBTX, sub *subscription.Subscription) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertSubscriptionSQL,
		sub.ID(), sub.ClientID(), sub.PlanID(), sub.Status().String(), sub.StartDate(), sub.RenewalDate(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("client already has an active subscription", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("subscription references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create subscription", err)
	}
	return id, nil
}

const findActiveSubscriptionSQL = `
SELECT id, client_id, plan_id, status, start_date, renewal_date
FROM subscriptions
WHERE client_id = $1 AND status = 'ACTIVE'`

func (r *SubscriptionRepository) FindActiveByClient(ctx context.Context, tx db.DBTX, clientID uuid.UUID) (*shared.SubscriptionSnapshot, error) {
	var snap shared.SubscriptionSnapshot
	var status string
	err := tx.QueryRow(ctx, findActiveSubscriptionSQL, clientID).Scan(
		&snap.ID, &snap.ClientID, &snap.PlanID, &status, &snap.StartDate, &snap.RenewalDate,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active subscription", err)
	}
	snap.Status = subscription.SubStatus(status)
	return &snap, nil
}

const updateSubscriptionRenewalSQL = `
UPDATE subscriptions
SET renewal_date = $2, updated_at = now()
WHERE id = $1`

func (r *SubscriptionRepository) UpdateRenewal(ctx context.Context, tx db.DBTX, id uuid.UUID, renewalDate time.Time) error {
	tag, err := tx.Exec(ctx, updateSubscriptionRenewalSQL, id, renewalDate)
	if err != nil {
		return infra.WrapRepoErr("failed to update renewal date", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateSubscriptionStatusSQL = `
UPDATE subscriptions
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status subscription.SubStatus) error {
	tag, err := tx.Exec(ctx, updateSubscriptionStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update subscription status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}

type PlanRepository struct{}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

const insertPlanSQL = `
INSERT INTO subscription_plans (id, name, price_cents, credits)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *PlanRepository) Create(ctx context.Context, tx db.DBTX, plan *subscription.Plan) (uuid.UUID, error) {
	credits, err := json.Marshal(plan.Credits())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode plan credits", err)
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, insertPlanSQL, plan.ID(), plan.Name(), plan.PriceCents(), credits).Scan(&id); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("plan name already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create plan", err)
	}
	return id, nil
}

const findPlanSQL = `
SELECT id, name, price_cents, credits
FROM subscription_plans
WHERE id = $1`

func (r *PlanRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*subscription.Plan, error) {
	var (
		planID     uuid.UUID
		name       string
		priceCents int32
		raw        []byte
	)
	err := tx.QueryRow(ctx, findPlanSQL, id).Scan(&planID, &name, &priceCents, &raw)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find plan", err)
	}

	var credits []subscription.PlanCredit
	if err := json.Unmarshal(raw, &credits); err != nil {
		return nil, infra.WrapRepoErr("failed to decode plan credits", err)
	}
	return subscription.ReconstructPlan(planID, name, priceCents, credits), nil
}

const updatePlanSQL = `
UPDATE subscription_plans
SET name = $2, price_cents = $3, credits = $4, updated_at = now()
WHERE id = $1`

func (r *PlanRepository) Update(ctx context.Context, tx db.DBTX, plan *subscription.Plan) error {
	credits, err := json.Marshal(plan.Credits())
	if err != nil {
		return infra.WrapRepoErr("failed to encode plan credits", err)
	}

	tag, err := tx.Exec(ctx, updatePlanSQL, plan.ID(), plan.Name(), plan.PriceCents(), credits)
	if err != nil {
		return infra.WrapRepoErr("failed to update plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("plan not found", nil, infra.KindNotFound)
	}
	return nil
}

const deletePlanSQL = `DELETE FROM subscription_plans WHERE id = $1`

func (r *PlanRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deletePlanSQL, id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("plan is referenced by subscriptions", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("plan not found", nil, infra.KindNotFound)
	}
	return nil
}
