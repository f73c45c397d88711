package commands

import (
	"context"

	"petshop-booking/internal/domain/catalog"
	"petshop-booking/internal/domain/subscription"
	reqdto "petshop-booking/internal/handler/dto/request"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/pkg/errs"
	"petshop-booking/internal/usecase/queries"
	"petshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogCommands interface {
	CreateService(ctx context.Context, req reqdto.CreateServiceRequest) (*queries.ServiceView, error)
	UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	CreatePlan(ctx context.Context, req reqdto.CreatePlanRequest) (*queries.PlanView, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, req reqdto.UpdatePlanRequest) (*queries.PlanView, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow            shared.UnitOfWork
	serviceQueries queries.ServiceQueries
	planQueries    queries.PlanQueries
}

func NewCatalogCommands(
	unitOfWork shared.UnitOfWork,
	serviceQueries queries.ServiceQueries,
	planQueries queries.PlanQueries,
) CatalogCommands {
	return &catalogCommandsImpl{
		uow:            unitOfWork,
		serviceQueries: serviceQueries,
		planQueries:    planQueries,
	}
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, req reqdto.CreateServiceRequest) (*queries.ServiceView, error) {
	svc, err := catalog.NewService(req.Name, req.DurationMinutes, req.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Services().Create(ctx, tx.DB(), svc)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.serviceQueries.GetByID(ctx, id)
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error) {
	if _, err := catalog.NewService(req.Name, req.DurationMinutes, req.PriceCents); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	svc := catalog.ReconstructService(id, req.Name, req.DurationMinutes, req.PriceCents)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Services().Update(ctx, tx.DB(), svc); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrServiceNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.serviceQueries.GetByID(ctx, id)
}

func (c *catalogCommandsImpl) DeleteService(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Services().Delete(ctx, tx.DB(), id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrServiceNotFound)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, ErrServiceInUse)
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

func (c *catalogCommandsImpl) CreatePlan(ctx context.Context, req reqdto.CreatePlanRequest) (*queries.PlanView, error) {
	plan, err := subscription.NewPlan(req.Name, req.PriceCents, toPlanCredits(req.Credits))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.checkPlanServices(ctx, tx, plan); err != nil {
			return err
		}
		id, err = tx.Plans().Create(ctx, tx.DB(), plan)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.planQueries.GetByID(ctx, id)
}

func (c *catalogCommandsImpl) UpdatePlan(ctx context.Context, id uuid.UUID, req reqdto.UpdatePlanRequest) (*queries.PlanView, error) {
	if _, err := subscription.NewPlan(req.Name, req.PriceCents, toPlanCredits(req.Credits)); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	plan := subscription.ReconstructPlan(id, req.Name, req.PriceCents, toPlanCredits(req.Credits))

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.checkPlanServices(ctx, tx, plan); err != nil {
			return err
		}
		if err := tx.Plans().Update(ctx, tx.DB(), plan); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPlanNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.planQueries.GetByID(ctx, id)
}

func (c *catalogCommandsImpl) DeletePlan(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Plans().Delete(ctx, tx.DB(), id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrPlanNotFound)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, ErrPlanInUse)
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

// Every service a plan grants credits for must exist when the plan is saved.
func (c *catalogCommandsImpl) checkPlanServices(ctx context.Context, tx shared.Tx, plan *subscription.Plan) error {
	ids := make([]uuid.UUID, len(plan.Credits()))
	for i, grant := range plan.Credits() {
		ids[i] = grant.ServiceID
	}
	if _, err := tx.Services().FindByIDs(ctx, tx.DB(), ids); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrServiceNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func toPlanCredits(reqs []reqdto.PlanCreditRequest) []subscription.PlanCredit {
	credits := make([]subscription.PlanCredit, len(reqs))
	for i, r := range reqs {
		credits[i] = subscription.PlanCredit{ServiceID: r.ServiceID, Quantity: r.Quantity}
	}
	return credits
}
