//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"petshop-booking/internal/domain/appointment"
	"petshop-booking/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServices(t *testing.T) []*catalog.Service {
	t.Helper()
	bath, err := catalog.NewService("Bath", 30, 2000)
	require.NoError(t, err)
	groom, err := catalog.NewService("Grooming", 60, 4500)
	require.NoError(t, err)
	return []*catalog.Service{bath, groom}
}

func TestNewAppointment(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)

	t.Run("pay-per-visit starts pending", func(t *testing.T) {
		appt, err := appointment.New(uuid.New(), uuid.New(), testServices(t), start, "", false)
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusPending, appt.Status())
		assert.False(t, appt.FromSubscription())
	})

	t.Run("subscription-funded is confirmed immediately", func(t *testing.T) {
		appt, err := appointment.New(uuid.New(), uuid.New(), testServices(t), start, "", true)
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusConfirmed, appt.Status())
		assert.True(t, appt.FromSubscription())
	})

	t.Run("requires at least one service", func(t *testing.T) {
		_, err := appointment.New(uuid.New(), uuid.New(), nil, start, "", false)
		assert.ErrorIs(t, err, appointment.ErrNoServices)
	})
}

func TestAppointmentDerivedTimes(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	appt, err := appointment.New(uuid.New(), uuid.New(), testServices(t), start, "", false)
	require.NoError(t, err)

	assert.Equal(t, 90, appt.DurationMinutes())
	assert.Equal(t, start.Add(90*time.Minute), appt.EndTime())

	w := appt.Window()
	assert.Equal(t, start, w.Start)
	assert.Equal(t, appt.EndTime(), w.End)
}

func TestStatusOccupies(t *testing.T) {
	assert.True(t, appointment.StatusPending.Occupies())
	assert.True(t, appointment.StatusConfirmed.Occupies())
	assert.True(t, appointment.StatusCompleted.Occupies())
	assert.False(t, appointment.StatusCancelled.Occupies())
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to appointment.Status
		want     bool
	}{
		{appointment.StatusPending, appointment.StatusConfirmed, true},
		{appointment.StatusPending, appointment.StatusCompleted, true},
		{appointment.StatusPending, appointment.StatusCancelled, true},
		{appointment.StatusConfirmed, appointment.StatusCompleted, true},
		{appointment.StatusConfirmed, appointment.StatusCancelled, true},
		{appointment.StatusConfirmed, appointment.StatusPending, false},
		{appointment.StatusCompleted, appointment.StatusCancelled, false},
		{appointment.StatusCancelled, appointment.StatusConfirmed, false},
		{appointment.StatusCancelled, appointment.StatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestNewStatus(t *testing.T) {
	s, err := appointment.NewStatus("CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusConfirmed, s)

	_, err = appointment.NewStatus("confirmed")
	assert.ErrorIs(t, err, appointment.ErrInvalidStatus)
}
