package commands

import (
	"context"

	"petshop-booking/internal/domain/schedule"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/pkg/errs"
	"petshop-booking/internal/usecase/shared"
)

type ScheduleCommands interface {
	Get(ctx context.Context) (schedule.WeekConfig, error)
	Update(ctx context.Context, cfg schedule.WeekConfig) error
}

type scheduleCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleCommands(unitOfWork shared.UnitOfWork) ScheduleCommands {
	return &scheduleCommandsImpl{uow: unitOfWork}
}

func (s *scheduleCommandsImpl) Get(ctx context.Context) (schedule.WeekConfig, error) {
	var cfg schedule.WeekConfig
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loaded, err := tx.Schedule().Get(ctx, tx.DB())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrScheduleNotConfigured)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		cfg = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *scheduleCommandsImpl) Update(ctx context.Context, cfg schedule.WeekConfig) error {
	if err := cfg.Validate(); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Schedule().Put(ctx, tx.DB(), cfg); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
