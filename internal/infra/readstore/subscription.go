package readstore

import (
	"context"

	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"
	"petshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionReadStore struct {
	db db.DBTX
}

func NewSubscriptionReadStore(dbtx db.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{db: dbtx}
}

const findActiveSubscriptionViewSQL = `
SELECT s.id, s.client_id, s.plan_id, p.name, s.status, s.start_date, s.renewal_date
FROM subscriptions s
JOIN subscription_plans p ON p.id = s.plan_id
WHERE s.client_id = $1 AND s.status = 'ACTIVE'`

const findSubscriptionCreditsSQL = `
SELECT id, service_id, service_name, total_credits, used_credits, remaining_credits, renewal_date
FROM subscription_credits
WHERE client_id = $1 AND plan_id = $2
ORDER BY service_name`

func (r *SubscriptionReadStore) FindActiveByClient(ctx context.Context, clientID uuid.UUID) (*queries.SubscriptionView, error) {
	var view queries.SubscriptionView
	err := r.db.QueryRow(ctx, findActiveSubscriptionViewSQL, clientID).Scan(
		&view.ID, &view.ClientID, &view.PlanID, &view.PlanName, &view.Status,
		&view.StartDate, &view.RenewalDate,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscription view", err)
	}

	rows, err := r.db.Query(ctx, findSubscriptionCreditsSQL, view.ClientID, view.PlanID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load subscription credits", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c queries.CreditView
		if err := rows.Scan(&c.ID, &c.ServiceID, &c.ServiceName, &c.Total, &c.Used, &c.Remaining, &c.RenewalDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan credit row", err)
		}
		view.Credits = append(view.Credits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read credit rows", err)
	}

	return &view, nil
}
