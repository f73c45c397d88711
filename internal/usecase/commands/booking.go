package commands

import (
	"context"
	"errors"
	"time"

	"petshop-booking/internal/domain/appointment"
	"petshop-booking/internal/domain/catalog"
	"petshop-booking/internal/domain/schedule"
	reqdto "petshop-booking/internal/handler/dto/request"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/uow"
	"petshop-booking/internal/pkg/clock"
	"petshop-booking/internal/pkg/errs"
	"petshop-booking/internal/usecase/queries"
	"petshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	// Create runs the whole booking pipeline in one serializable transaction:
	// schedule check, conflict scan, credit spend and insert all commit or
	// none do.
	Create(ctx context.Context, clientID uuid.UUID, req reqdto.CreateAppointmentRequest) (*queries.AppointmentView, error)
}

type bookingCommandsImpl struct {
	uow                shared.UnitOfWork
	appointmentQueries queries.AppointmentQueries
	clock              clock.Clock
}

func NewBookingCommands(
	unitOfWork shared.UnitOfWork,
	appointmentQueries queries.AppointmentQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:                unitOfWork,
		appointmentQueries: appointmentQueries,
		clock:              clk,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, clientID uuid.UUID, req reqdto.CreateAppointmentRequest) (*queries.AppointmentView, error) {
	serviceIDs := req.DistinctServiceIDs()
	if len(serviceIDs) == 0 {
		return nil, ErrDomainValidation
	}
	if req.StartTime.Before(b.clock.Now()) {
		return nil, errs.Mark(errs.New("start time is in the past"), ErrDomainValidation)
	}

	var createdID uuid.UUID
	err := b.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		week, err := b.loadSchedule(ctx, tx)
		if err != nil {
			return err
		}

		pet, err := tx.Pets().FindByID(ctx, tx.DB(), req.PetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPetNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !pet.OwnedBy(clientID) {
			return ErrPetOwnership
		}

		services, err := tx.Services().FindByIDs(ctx, tx.DB(), serviceIDs)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrServiceNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		totalMinutes, err := catalog.TotalDuration(services)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if _, err := week.CheckWindow(req.StartTime, totalMinutes); err != nil {
			if errors.Is(err, schedule.ErrClosed) {
				return errs.Mark(err, ErrShopClosed)
			}
			return errs.Mark(err, ErrOutsideOperatingHours)
		}

		appt, err := appointment.New(clientID, req.PetID, services, req.StartTime, noteValue(req.Notes), req.UseSubscription)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := b.checkConflicts(ctx, tx, appt); err != nil {
			return err
		}

		if req.UseSubscription {
			if err := b.spendCredits(ctx, tx, clientID, services); err != nil {
				return err
			}
		}

		createdID, err = tx.Appointments().Create(ctx, tx.DB(), appt)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, uow.ErrMaxRetriesExceeded) {
			return nil, errs.Mark(err, ErrStorageConflict)
		}
		return nil, err
	}

	view, err := b.appointmentQueries.GetByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) loadSchedule(ctx context.Context, tx shared.Tx) (schedule.Week, error) {
	cfg, err := tx.Schedule().Get(ctx, tx.DB())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return schedule.Week{}, errs.Mark(err, ErrScheduleNotConfigured)
		}
		return schedule.Week{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	week, err := cfg.Week()
	if err != nil {
		// A stored schedule that cannot be parsed is as unusable as a missing one.
		return schedule.Week{}, errs.Mark(err, ErrScheduleNotConfigured)
	}
	return week, nil
}

// The scan and the insert run under serializable isolation, so two bookings
// racing for the same slot cannot both see an empty day.
func (b *bookingCommandsImpl) checkConflicts(ctx context.Context, tx shared.Tx, appt *appointment.Appointment) error {
	dayStart := startOfDay(appt.StartTime())
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := tx.Appointments().FindDayOccupancy(ctx, tx.DB(), dayStart, dayEnd)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if conflict := appointment.FindConflict(appt.Window(), booked); conflict != nil {
		return errs.Mark(
			errs.Newf("requested %s overlaps appointment %s", appt.Window().String(), conflict.ID),
			ErrScheduleConflict,
		)
	}
	return nil
}

// One credit per distinct service. The conditional decrement in the repository
// is what keeps balances non-negative under concurrency.
func (b *bookingCommandsImpl) spendCredits(ctx context.Context, tx shared.Tx, clientID uuid.UUID, services []*catalog.Service) error {
	for _, svc := range services {
		if err := tx.Credits().Consume(ctx, tx.DB(), clientID, svc.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(&InsufficientCreditsError{ServiceName: svc.Name(), Err: err}, ErrInsufficientCredits)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func noteValue(n *string) string {
	if n == nil {
		return ""
	}
	return *n
}
