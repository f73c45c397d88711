package commands

import (
	"context"

	"petshop-booking/internal/domain/appointment"
	"petshop-booking/internal/domain/user"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/pkg/errs"
	"petshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentCommands interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, next appointment.Status) error
	// Cancel is idempotent: cancelling an already cancelled appointment
	// succeeds without touching the row.
	Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
}

type appointmentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAppointmentCommands(unitOfWork shared.UnitOfWork) AppointmentCommands {
	return &appointmentCommandsImpl{uow: unitOfWork}
}

func (a *appointmentCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, next appointment.Status) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := a.findAppointment(ctx, tx, id)
		if err != nil {
			return err
		}

		if snap.Status == next {
			return nil
		}
		if !snap.Status.CanTransitionTo(next) {
			return errs.Mark(
				errs.Newf("cannot move appointment from %s to %s", snap.Status, next),
				ErrInvalidTransition,
			)
		}

		if err := tx.Appointments().UpdateStatus(ctx, tx.DB(), id, next); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (a *appointmentCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := a.findAppointment(ctx, tx, id)
		if err != nil {
			return err
		}

		if actorRole == user.RoleClient && snap.ClientID != actorID {
			return ErrNotAppointmentOwner
		}

		if snap.Status == appointment.StatusCancelled {
			return nil
		}
		if !snap.Status.CanTransitionTo(appointment.StatusCancelled) {
			return errs.Mark(
				errs.Newf("cannot cancel appointment in status %s", snap.Status),
				ErrInvalidTransition,
			)
		}

		if err := tx.Appointments().UpdateStatus(ctx, tx.DB(), id, appointment.StatusCancelled); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (a *appointmentCommandsImpl) findAppointment(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	snap, err := tx.Appointments().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAppointmentNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}
