//go:build unit

package catalog_test

import (
	"testing"

	"petshop-booking/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	cases := []struct {
		name     string
		svcName  string
		duration int
		price    int32
		errIs    error
	}{
		{name: "valid", svcName: "Full Grooming", duration: 90, price: 4500},
		{name: "free service is allowed", svcName: "Consultation", duration: 15, price: 0},
		{name: "empty name", svcName: "   ", duration: 30, price: 1000, errIs: catalog.ErrEmptyName},
		{name: "zero duration", svcName: "Bath", duration: 0, price: 1000, errIs: catalog.ErrInvalidDuration},
		{name: "negative duration", svcName: "Bath", duration: -10, price: 1000, errIs: catalog.ErrInvalidDuration},
		{name: "negative price", svcName: "Bath", duration: 30, price: -1, errIs: catalog.ErrNegativePrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := catalog.NewService(tc.svcName, tc.duration, tc.price)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.duration, svc.DurationMinutes())
		})
	}
}

func TestTotalDuration(t *testing.T) {
	bath, err := catalog.NewService("Bath", 30, 2000)
	require.NoError(t, err)
	groom, err := catalog.NewService("Grooming", 60, 4500)
	require.NoError(t, err)
	nails, err := catalog.NewService("Nail Trim", 15, 800)
	require.NoError(t, err)

	t.Run("single service", func(t *testing.T) {
		total, err := catalog.TotalDuration([]*catalog.Service{bath})
		require.NoError(t, err)
		assert.Equal(t, 30, total)
	})

	t.Run("sums all services", func(t *testing.T) {
		total, err := catalog.TotalDuration([]*catalog.Service{bath, groom, nails})
		require.NoError(t, err)
		assert.Equal(t, 105, total)
	})

	t.Run("empty set is rejected", func(t *testing.T) {
		_, err := catalog.TotalDuration(nil)
		assert.ErrorIs(t, err, catalog.ErrEmptyServiceSet)
	})
}

func TestTotalPriceCents(t *testing.T) {
	bath, err := catalog.NewService("Bath", 30, 2000)
	require.NoError(t, err)
	groom, err := catalog.NewService("Grooming", 60, 4500)
	require.NoError(t, err)

	assert.Equal(t, int32(6500), catalog.TotalPriceCents([]*catalog.Service{bath, groom}))
	assert.Equal(t, int32(0), catalog.TotalPriceCents(nil))
}
