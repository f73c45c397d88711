//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"petshop-booking/internal/domain/appointment"
	"petshop-booking/internal/domain/catalog"
	"petshop-booking/internal/domain/pet"
	"petshop-booking/internal/domain/schedule"
	"petshop-booking/internal/domain/subscription"
	reqdto "petshop-booking/internal/handler/dto/request"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/infra/uow"
	"petshop-booking/internal/pkg/clock"
	"petshop-booking/internal/usecase/commands"
	"petshop-booking/internal/usecase/queries"
	"petshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// fakes
// ---------------------------------------------------------------------------

type fakeState struct {
	schedule     schedule.WeekConfig
	scheduleErr  error
	pets         map[uuid.UUID]*pet.Pet
	services     map[uuid.UUID]*catalog.Service
	booked       []appointment.Booked
	credits      map[uuid.UUID]int // serviceID -> remaining for the test client
	creditErr    error             // overrides the Consume outcome when set
	created      []*appointment.Appointment
	failSerially error // forces WithinSerializable to fail
}

type fakeUoW struct {
	state *fakeState
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{state: u.state})
}

func (u *fakeUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.state.failSerially != nil {
		return u.state.failSerially
	}
	// Snapshot so a failing pipeline leaves no partial writes, mirroring a
	// rolled back transaction.
	createdBefore := len(u.state.created)
	creditsBefore := make(map[uuid.UUID]int, len(u.state.credits))
	for k, v := range u.state.credits {
		creditsBefore[k] = v
	}

	if err := fn(ctx, &fakeTx{state: u.state}); err != nil {
		u.state.created = u.state.created[:createdBefore]
		u.state.credits = creditsBefore
		return err
	}
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Appointments() shared.AppointmentRepository   { return &fakeAppointmentRepo{t.state} }
func (t *fakeTx) Credits() shared.CreditRepository             { return &fakeCreditRepo{t.state} }
func (t *fakeTx) Subscriptions() shared.SubscriptionRepository { return nil }
func (t *fakeTx) Plans() shared.PlanRepository                 { return nil }
func (t *fakeTx) Services() shared.ServiceRepository           { return &fakeServiceRepo{t.state} }
func (t *fakeTx) Pets() shared.PetRepository                   { return &fakePetRepo{t.state} }
func (t *fakeTx) Users() shared.UserRepository                 { return nil }
func (t *fakeTx) Schedule() shared.ScheduleRepository          { return &fakeScheduleRepo{t.state} }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeScheduleRepo struct{ state *fakeState }

func (r *fakeScheduleRepo) Get(_ context.Context, _ db.DBTX) (schedule.WeekConfig, error) {
	if r.state.scheduleErr != nil {
		return nil, r.state.scheduleErr
	}
	return r.state.schedule, nil
}

func (r *fakeScheduleRepo) Put(_ context.Context, _ db.DBTX, cfg schedule.WeekConfig) error {
	r.state.schedule = cfg
	return nil
}

type fakePetRepo struct{ state *fakeState }

func (r *fakePetRepo) Create(_ context.Context, _ db.DBTX, p *pet.Pet) (uuid.UUID, error) {
	r.state.pets[p.ID()] = p
	return p.ID(), nil
}

func (r *fakePetRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*pet.Pet, error) {
	p, ok := r.state.pets[id]
	if !ok {
		return nil, infra.WrapRepoErr("pet not found", errors.New("no rows"), infra.KindNotFound)
	}
	return p, nil
}

func (r *fakePetRepo) Update(_ context.Context, _ db.DBTX, p *pet.Pet) error { return nil }
func (r *fakePetRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	delete(r.state.pets, id)
	return nil
}

type fakeServiceRepo struct{ state *fakeState }

func (r *fakeServiceRepo) Create(_ context.Context, _ db.DBTX, svc *catalog.Service) (uuid.UUID, error) {
	r.state.services[svc.ID()] = svc
	return svc.ID(), nil
}

func (r *fakeServiceRepo) FindByIDs(_ context.Context, _ db.DBTX, ids []uuid.UUID) ([]*catalog.Service, error) {
	out := make([]*catalog.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := r.state.services[id]
		if !ok {
			return nil, infra.WrapRepoErr("service not found", errors.New("no rows"), infra.KindNotFound)
		}
		out = append(out, svc)
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, _ db.DBTX, svc *catalog.Service) error { return nil }
func (r *fakeServiceRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error         { return nil }

type fakeAppointmentRepo struct{ state *fakeState }

func (r *fakeAppointmentRepo) Create(_ context.Context, _ db.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	r.state.created = append(r.state.created, appt)
	return appt.ID(), nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	for _, appt := range r.state.created {
		if appt.ID() == id {
			return &shared.AppointmentSnapshot{
				ID:        appt.ID(),
				ClientID:  appt.ClientID(),
				PetID:     appt.PetID(),
				Status:    appt.Status(),
				StartTime: appt.StartTime(),
			}, nil
		}
	}
	return nil, infra.WrapRepoErr("appointment not found", errors.New("no rows"), infra.KindNotFound)
}

func (r *fakeAppointmentRepo) FindDayOccupancy(_ context.Context, _ db.DBTX, dayStart, dayEnd time.Time) ([]appointment.Booked, error) {
	out := append([]appointment.Booked{}, r.state.booked...)
	for _, appt := range r.state.created {
		if !appt.StartTime().Before(dayStart) && appt.StartTime().Before(dayEnd) {
			out = append(out, appointment.Booked{ID: appt.ID(), Window: appt.Window()})
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status appointment.Status) error {
	return nil
}

type fakeCreditRepo struct{ state *fakeState }

func (r *fakeCreditRepo) Consume(_ context.Context, _ db.DBTX, clientID, serviceID uuid.UUID) error {
	if r.state.creditErr != nil {
		return r.state.creditErr
	}
	if r.state.credits[serviceID] <= 0 {
		return infra.WrapRepoErr("no remaining credits", errors.New("no rows"), infra.KindNotFound)
	}
	r.state.credits[serviceID]--
	return nil
}

func (r *fakeCreditRepo) CreateBatch(_ context.Context, _ db.DBTX, _ []*subscription.Credit) error {
	return nil
}

func (r *fakeCreditRepo) DeleteForClientPlan(_ context.Context, _ db.DBTX, clientID, planID uuid.UUID) error {
	return nil
}

type fakeAppointmentQueries struct{ state *fakeState }

func (q *fakeAppointmentQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	for _, appt := range q.state.created {
		if appt.ID() == id {
			return &queries.AppointmentView{
				ID:               appt.ID(),
				ClientID:         appt.ClientID(),
				PetID:            appt.PetID(),
				StartTime:        appt.StartTime(),
				EndTime:          appt.EndTime(),
				DurationMinutes:  appt.DurationMinutes(),
				Status:           appt.Status().String(),
				FromSubscription: appt.FromSubscription(),
			}, nil
		}
	}
	return nil, errors.New("view not found")
}

func (q *fakeAppointmentQueries) ListByClient(_ context.Context, _ uuid.UUID, _, _ int) ([]*queries.AppointmentListItem, error) {
	return nil, nil
}

func (q *fakeAppointmentQueries) ListByDay(_ context.Context, _, _ time.Time) ([]*queries.AppointmentListItem, error) {
	return nil, nil
}

// ---------------------------------------------------------------------------
// fixture
// ---------------------------------------------------------------------------

var testNow = time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)

type bookingFixture struct {
	state    *fakeState
	clientID uuid.UUID
	petID    uuid.UUID
	grooming *catalog.Service
	bath     *catalog.Service
	cmd      commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	clientID := uuid.New()

	grooming, err := catalog.NewService("Full Grooming", 60, 4500)
	require.NoError(t, err)
	bath, err := catalog.NewService("Bath", 30, 2000)
	require.NoError(t, err)

	p, err := pet.New(clientID, "Rex", "dog", "labrador")
	require.NoError(t, err)

	openAllWeek := schedule.WeekConfig{}
	for _, day := range []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		openAllWeek[day] = schedule.DayConfig{Open: true, Start: "09:00", End: "17:00"}
	}

	state := &fakeState{
		schedule: openAllWeek,
		pets:     map[uuid.UUID]*pet.Pet{p.ID(): p},
		services: map[uuid.UUID]*catalog.Service{grooming.ID(): grooming, bath.ID(): bath},
		credits:  map[uuid.UUID]int{},
	}

	cmd := commands.NewBookingCommands(
		&fakeUoW{state: state},
		&fakeAppointmentQueries{state: state},
		clock.NewMockClock(testNow),
	)

	return &bookingFixture{
		state:    state,
		clientID: clientID,
		petID:    p.ID(),
		grooming: grooming,
		bath:     bath,
		cmd:      cmd,
	}
}

func (f *bookingFixture) request(start time.Time, serviceIDs ...uuid.UUID) reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		PetID:      f.petID,
		ServiceIDs: serviceIDs,
		StartTime:  start,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 1, hour, minute, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestBookingCreate_Succeeds(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(10, 0), f.grooming.ID(), f.bath.ID()))
	require.NoError(t, err)

	assert.Equal(t, 90, view.DurationMinutes)
	assert.Equal(t, at(11, 30), view.EndTime)
	assert.Equal(t, "PENDING", view.Status)
	assert.Len(t, f.state.created, 1)
}

func TestBookingCreate_DuplicateServiceBookedOnce(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(10, 0), f.bath.ID(), f.bath.ID()))
	require.NoError(t, err)

	assert.Equal(t, 30, view.DurationMinutes)
}

func TestBookingCreate_EndsExactlyAtClosing(t *testing.T) {
	f := newBookingFixture(t)

	// 16:00 + 60min ends at 17:00, the closing instant, which is allowed.
	_, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(16, 0), f.grooming.ID()))
	require.NoError(t, err)
}

func TestBookingCreate_RunsPastClosing(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(16, 30), f.grooming.ID()))
	require.ErrorIs(t, err, commands.ErrOutsideOperatingHours)
	assert.Empty(t, f.state.created)
}

func TestBookingCreate_ClosedDay(t *testing.T) {
	f := newBookingFixture(t)
	f.state.schedule["tuesday"] = schedule.DayConfig{Open: false}

	_, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(10, 0), f.grooming.ID()))
	require.ErrorIs(t, err, commands.ErrShopClosed)
}

func TestBookingCreate_ScheduleMissing(t *testing.T) {
	f := newBookingFixture(t)
	f.state.scheduleErr = infra.WrapRepoErr("settings not found", errors.New("no rows"), infra.KindNotFound)

	_, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(10, 0), f.grooming.ID()))
	require.ErrorIs(t, err, commands.ErrScheduleNotConfigured)
}

func TestBookingCreate_OverlapRejected(t *testing.T) {
	f := newBookingFixture(t)
	f.state.booked = []appointment.Booked{
		{ID: uuid.New(), Window: appointment.Window{Start: at(10, 0), End: at(11, 0)}},
	}

	_, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(10, 30), f.grooming.ID()))
	require.ErrorIs(t, err, commands.ErrScheduleConflict)
	assert.Empty(t, f.state.created)
}

func TestBookingCreate_BackToBackAllowed(t *testing.T) {
	f := newBookingFixture(t)
	f.state.booked = []appointment.Booked{
		{ID: uuid.New(), Window: appointment.Window{Start: at(10, 0), End: at(11, 0)}},
	}

	_, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(11, 0), f.grooming.ID()))
	require.NoError(t, err)
}

func TestBookingCreate_CancelledSlotDoesNotBlock(t *testing.T) {
	f := newBookingFixture(t)
	// Occupancy already excludes cancelled rows, so an empty day means a
	// previously cancelled 10:00 slot is rebookable.
	_, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(10, 0), f.grooming.ID()))
	require.NoError(t, err)
}

func TestBookingCreate_SubscriptionSpendsOneCreditPerService(t *testing.T) {
	f := newBookingFixture(t)
	f.state.credits[f.grooming.ID()] = 2
	f.state.credits[f.bath.ID()] = 1

	req := f.request(at(10, 0), f.grooming.ID(), f.bath.ID())
	req.UseSubscription = true

	view, err := f.cmd.Create(context.Background(), f.clientID, req)
	require.NoError(t, err)

	assert.Equal(t, "CONFIRMED", view.Status)
	assert.True(t, view.FromSubscription)
	assert.Equal(t, 1, f.state.credits[f.grooming.ID()])
	assert.Equal(t, 0, f.state.credits[f.bath.ID()])
}

func TestBookingCreate_InsufficientCreditsRollsBack(t *testing.T) {
	f := newBookingFixture(t)
	f.state.credits[f.grooming.ID()] = 1
	// No credits for bath; the grooming decrement must not survive.

	req := f.request(at(10, 0), f.grooming.ID(), f.bath.ID())
	req.UseSubscription = true

	_, err := f.cmd.Create(context.Background(), f.clientID, req)
	require.ErrorIs(t, err, commands.ErrInsufficientCredits)

	var credErr *commands.InsufficientCreditsError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "Bath", credErr.ServiceName, "error must name the service that ran out")

	assert.Empty(t, f.state.created)
	assert.Equal(t, 1, f.state.credits[f.grooming.ID()], "consumed credit must be restored on rollback")
}

func TestBookingCreate_BalanceConflictReadsAsInsufficient(t *testing.T) {
	f := newBookingFixture(t)
	// A concurrent decrement tripping the balance CHECK surfaces as a
	// CONFLICT-kinded repository error, not a plain database failure.
	f.state.creditErr = infra.WrapRepoErr("credit balance exhausted", errors.New("check violation"), infra.KindConflict)

	req := f.request(at(10, 0), f.grooming.ID())
	req.UseSubscription = true

	_, err := f.cmd.Create(context.Background(), f.clientID, req)
	require.ErrorIs(t, err, commands.ErrInsufficientCredits)

	var credErr *commands.InsufficientCreditsError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "Full Grooming", credErr.ServiceName)
}

func TestBookingCreate_PastStartRejected(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.cmd.Create(context.Background(), f.clientID, f.request(testNow.Add(-time.Hour), f.grooming.ID()))
	require.ErrorIs(t, err, commands.ErrDomainValidation)
	assert.Empty(t, f.state.created)
}

func TestBookingCreate_UnknownService(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(10, 0), uuid.New()))
	require.ErrorIs(t, err, commands.ErrServiceNotFound)
}

func TestBookingCreate_ForeignPetRejected(t *testing.T) {
	f := newBookingFixture(t)

	otherPet, err := pet.New(uuid.New(), "Mia", "cat", "")
	require.NoError(t, err)
	f.state.pets[otherPet.ID()] = otherPet

	req := f.request(at(10, 0), f.grooming.ID())
	req.PetID = otherPet.ID()

	_, err = f.cmd.Create(context.Background(), f.clientID, req)
	require.ErrorIs(t, err, commands.ErrPetOwnership)
}

func TestBookingCreate_RetriesExhaustedMapToStorageConflict(t *testing.T) {
	f := newBookingFixture(t)
	f.state.failSerially = uow.ErrMaxRetriesExceeded

	_, err := f.cmd.Create(context.Background(), f.clientID, f.request(at(10, 0), f.grooming.ID()))
	require.ErrorIs(t, err, commands.ErrStorageConflict)
}
