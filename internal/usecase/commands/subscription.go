package commands

import (
	"context"

	"petshop-booking/internal/domain/subscription"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/pkg/clock"
	"petshop-booking/internal/pkg/errs"
	"petshop-booking/internal/usecase/queries"
	"petshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscriptionCommands interface {
	// Subscribe opens a monthly cycle and mints the plan's credits in the
	// same transaction.
	Subscribe(ctx context.Context, clientID, planID uuid.UUID) (*queries.SubscriptionView, error)
	// Renew advances the cycle one month, discards leftover credits and mints
	// a fresh batch.
	Renew(ctx context.Context, clientID uuid.UUID) (*queries.SubscriptionView, error)
	Cancel(ctx context.Context, clientID uuid.UUID) error
}

type subscriptionCommandsImpl struct {
	uow                 shared.UnitOfWork
	subscriptionQueries queries.SubscriptionQueries
	clock               clock.Clock
}

func NewSubscriptionCommands(
	unitOfWork shared.UnitOfWork,
	subscriptionQueries queries.SubscriptionQueries,
	clk clock.Clock,
) SubscriptionCommands {
	return &subscriptionCommandsImpl{
		uow:                 unitOfWork,
		subscriptionQueries: subscriptionQueries,
		clock:               clk,
	}
}

func (s *subscriptionCommandsImpl) Subscribe(ctx context.Context, clientID, planID uuid.UUID) (*queries.SubscriptionView, error) {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Subscriptions().FindActiveByClient(ctx, tx.DB(), clientID); err == nil {
			return ErrActiveSubscriptionExists
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		plan, err := s.findPlan(ctx, tx, planID)
		if err != nil {
			return err
		}

		sub := subscription.NewSubscription(clientID, plan, s.clock.Now())
		if _, err := tx.Subscriptions().Create(ctx, tx.DB(), sub); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrActiveSubscriptionExists)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return s.mintCredits(ctx, tx, sub, plan)
	})
	if err != nil {
		return nil, err
	}

	return s.activeView(ctx, clientID)
}

func (s *subscriptionCommandsImpl) Renew(ctx context.Context, clientID uuid.UUID) (*queries.SubscriptionView, error) {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := s.findActive(ctx, tx, clientID)
		if err != nil {
			return err
		}

		plan, err := s.findPlan(ctx, tx, snap.PlanID)
		if err != nil {
			return err
		}

		sub := subscription.ReconstructSubscription(
			snap.ID, snap.ClientID, snap.PlanID, plan.Name(), snap.Status, snap.StartDate, snap.RenewalDate,
		)
		sub.Renew()

		if err := tx.Subscriptions().UpdateRenewal(ctx, tx.DB(), sub.ID(), sub.RenewalDate()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Unused credits do not roll over between cycles.
		if err := tx.Credits().DeleteForClientPlan(ctx, tx.DB(), clientID, snap.PlanID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return s.mintCredits(ctx, tx, sub, plan)
	})
	if err != nil {
		return nil, err
	}

	return s.activeView(ctx, clientID)
}

func (s *subscriptionCommandsImpl) Cancel(ctx context.Context, clientID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := s.findActive(ctx, tx, clientID)
		if err != nil {
			return err
		}

		if err := tx.Subscriptions().UpdateStatus(ctx, tx.DB(), snap.ID, subscription.SubStatusCancelled); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Credits().DeleteForClientPlan(ctx, tx.DB(), clientID, snap.PlanID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (s *subscriptionCommandsImpl) findActive(ctx context.Context, tx shared.Tx, clientID uuid.UUID) (*shared.SubscriptionSnapshot, error) {
	snap, err := tx.Subscriptions().FindActiveByClient(ctx, tx.DB(), clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSubscriptionNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (s *subscriptionCommandsImpl) findPlan(ctx context.Context, tx shared.Tx, planID uuid.UUID) (*subscription.Plan, error) {
	plan, err := tx.Plans().FindByID(ctx, tx.DB(), planID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPlanNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return plan, nil
}

func (s *subscriptionCommandsImpl) mintCredits(ctx context.Context, tx shared.Tx, sub *subscription.Subscription, plan *subscription.Plan) error {
	serviceIDs := make([]uuid.UUID, len(plan.Credits()))
	for i, grant := range plan.Credits() {
		serviceIDs[i] = grant.ServiceID
	}

	services, err := tx.Services().FindByIDs(ctx, tx.DB(), serviceIDs)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrServiceNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	names := make(map[uuid.UUID]string, len(services))
	for _, svc := range services {
		names[svc.ID()] = svc.Name()
	}

	credits := make([]*subscription.Credit, 0, len(plan.Credits()))
	for _, grant := range plan.Credits() {
		credit, err := subscription.NewCredit(
			sub.ClientID(), plan.ID(), grant.ServiceID, names[grant.ServiceID], grant.Quantity, sub.RenewalDate(),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		credits = append(credits, credit)
	}

	if err := tx.Credits().CreateBatch(ctx, tx.DB(), credits); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *subscriptionCommandsImpl) activeView(ctx context.Context, clientID uuid.UUID) (*queries.SubscriptionView, error) {
	view, err := s.subscriptionQueries.GetActiveByClient(ctx, clientID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
