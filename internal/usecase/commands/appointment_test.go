//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"petshop-booking/internal/domain/appointment"
	"petshop-booking/internal/domain/catalog"
	"petshop-booking/internal/domain/user"
	"petshop-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedAppointment(t *testing.T, state *fakeState, clientID uuid.UUID, status appointment.Status) uuid.UUID {
	t.Helper()

	svc, err := catalog.NewService("Bath", 30, 2000)
	require.NoError(t, err)

	appt := appointment.Reconstruct(
		uuid.New(), clientID, uuid.New(),
		[]*catalog.Service{svc},
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		status, "", false,
		testNow, testNow,
	)
	state.created = append(state.created, appt)
	return appt.ID()
}

func TestAppointmentUpdateStatus(t *testing.T) {
	f := newBookingFixture(t)
	cmd := commands.NewAppointmentCommands(&fakeUoW{state: f.state})

	t.Run("valid transition", func(t *testing.T) {
		id := seedAppointment(t, f.state, f.clientID, appointment.StatusPending)
		require.NoError(t, cmd.UpdateStatus(context.Background(), id, appointment.StatusConfirmed))
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		id := seedAppointment(t, f.state, f.clientID, appointment.StatusConfirmed)
		require.NoError(t, cmd.UpdateStatus(context.Background(), id, appointment.StatusConfirmed))
	})

	t.Run("completed is terminal", func(t *testing.T) {
		id := seedAppointment(t, f.state, f.clientID, appointment.StatusCompleted)
		err := cmd.UpdateStatus(context.Background(), id, appointment.StatusConfirmed)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		err := cmd.UpdateStatus(context.Background(), uuid.New(), appointment.StatusConfirmed)
		require.ErrorIs(t, err, commands.ErrAppointmentNotFound)
	})
}

func TestAppointmentCancel(t *testing.T) {
	f := newBookingFixture(t)
	cmd := commands.NewAppointmentCommands(&fakeUoW{state: f.state})

	t.Run("owner can cancel", func(t *testing.T) {
		id := seedAppointment(t, f.state, f.clientID, appointment.StatusPending)
		require.NoError(t, cmd.Cancel(context.Background(), id, f.clientID, user.RoleClient))
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		id := seedAppointment(t, f.state, f.clientID, appointment.StatusCancelled)
		require.NoError(t, cmd.Cancel(context.Background(), id, f.clientID, user.RoleClient))
	})

	t.Run("other client cannot cancel", func(t *testing.T) {
		id := seedAppointment(t, f.state, f.clientID, appointment.StatusPending)
		err := cmd.Cancel(context.Background(), id, uuid.New(), user.RoleClient)
		require.ErrorIs(t, err, commands.ErrNotAppointmentOwner)
	})

	t.Run("admin can cancel any", func(t *testing.T) {
		id := seedAppointment(t, f.state, f.clientID, appointment.StatusConfirmed)
		require.NoError(t, cmd.Cancel(context.Background(), id, uuid.New(), user.RoleAdmin))
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		id := seedAppointment(t, f.state, f.clientID, appointment.StatusCompleted)
		err := cmd.Cancel(context.Background(), id, f.clientID, user.RoleClient)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}
