//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"petshop-booking/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func win(t *testing.T, start, end string) appointment.Window {
	t.Helper()
	day := "2026-09-01T"
	s, err := time.Parse(time.RFC3339, day+start+":00Z")
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, day+end+":00Z")
	require.NoError(t, err)
	return appointment.Window{Start: s, End: e}
}

func TestWindowOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b appointment.Window
		want bool
	}{
		{name: "identical", a: win(t, "10:00", "11:00"), b: win(t, "10:00", "11:00"), want: true},
		{name: "partial tail", a: win(t, "10:00", "11:00"), b: win(t, "10:30", "11:30"), want: true},
		{name: "partial head", a: win(t, "10:30", "11:30"), b: win(t, "10:00", "11:00"), want: true},
		{name: "containment", a: win(t, "10:00", "12:00"), b: win(t, "10:30", "11:00"), want: true},
		{name: "back to back", a: win(t, "10:00", "11:00"), b: win(t, "11:00", "12:00"), want: false},
		{name: "back to back reversed", a: win(t, "11:00", "12:00"), b: win(t, "10:00", "11:00"), want: false},
		{name: "disjoint", a: win(t, "09:00", "09:30"), b: win(t, "14:00", "15:00"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestFindConflict(t *testing.T) {
	first := appointment.Booked{ID: uuid.New(), Window: win(t, "09:00", "10:00")}
	second := appointment.Booked{ID: uuid.New(), Window: win(t, "13:00", "14:00")}
	existing := []appointment.Booked{first, second}

	t.Run("no conflict between slots", func(t *testing.T) {
		assert.Nil(t, appointment.FindConflict(win(t, "10:00", "11:00"), existing))
	})

	t.Run("returns the conflicting slot", func(t *testing.T) {
		hit := appointment.FindConflict(win(t, "13:30", "14:30"), existing)
		require.NotNil(t, hit)
		assert.Equal(t, second.ID, hit.ID)
	})

	t.Run("empty occupancy", func(t *testing.T) {
		assert.Nil(t, appointment.FindConflict(win(t, "09:00", "17:00"), nil))
	})
}
