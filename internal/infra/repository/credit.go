package repository

import (
	"context"

	"petshop-booking/internal/domain/subscription"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CreditRepository struct{}

func NewCreditRepository() *CreditRepository {
	return &CreditRepository{}
}

// The WHERE clause is the guard: the row is only touched while it still has
// remaining credits, so the balance can never go negative regardless of how
// many transactions race on it.
const consumeCreditSQL = `
UPDATE subscription_credits
SET used_credits = used_credits + 1,
    remaining_credits = remaining_credits - 1,
    updated_at = now()
WHERE client_id = $1
  AND service_id = $2
  AND remaining_credits > 0`

func (r *CreditRepository) Consume(ctx context.Context, tx db.DBTX, clientID, serviceID uuid.UUID) error {
	tag, err := tx.Exec(ctx, consumeCreditSQL, clientID, serviceID)
	if err != nil {
		// The table's CHECK constraints back the guard up; a violation still
		// reads as an exhausted balance, not a database failure.
		if pgconv.IsCheckViolation(err) {
			return infra.WrapRepoErr("credit balance exhausted", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to consume credit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no consumable credit for service", nil, infra.KindNotFound)
	}
	return nil
}

const insertCreditSQL = `
INSERT INTO subscription_credits
    (id, client_id, plan_id, service_id, service_name, total_credits, used_credits, remaining_credits, renewal_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *CreditRepository) CreateBatch(ctx context.Context, tx db.DBTX, credits []*subscription.Credit) error {
	for _, c := range credits {
		_, err := tx.Exec(ctx, insertCreditSQL,
			c.ID(), c.ClientID(), c.PlanID(), c.ServiceID(), c.ServiceName(),
			c.Total(), c.Used(), c.Remaining(), c.RenewalDate(),
		)
		if err != nil {
			if pgconv.IsUniqueViolation(err) {
				return infra.WrapRepoErr("credit already minted for service", err, infra.KindDuplicateKey)
			}
			return infra.WrapRepoErr("failed to mint credit", err)
		}
	}
	return nil
}

const deleteCreditsSQL = `
DELETE FROM subscription_credits
WHERE client_id = $1 AND plan_id = $2`

func (r *CreditRepository) DeleteForClientPlan(ctx context.Context, tx db.DBTX, clientID, planID uuid.UUID) error {
	if _, err := tx.Exec(ctx, deleteCreditsSQL, clientID, planID); err != nil {
		return infra.WrapRepoErr("failed to delete credits", err)
	}
	return nil
}
