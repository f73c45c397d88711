//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"petshop-booking/internal/domain/subscription"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredit(t *testing.T) {
	renewal := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	c, err := subscription.NewCredit(uuid.New(), uuid.New(), uuid.New(), "Bath", 4, renewal)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Total())
	assert.Equal(t, 0, c.Used())
	assert.Equal(t, 4, c.Remaining())

	_, err = subscription.NewCredit(uuid.New(), uuid.New(), uuid.New(), "Bath", 0, renewal)
	assert.ErrorIs(t, err, subscription.ErrInvalidQuantity)
}

func TestReconstructCredit(t *testing.T) {
	renewal := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid counters", func(t *testing.T) {
		c, err := subscription.ReconstructCredit(uuid.New(), uuid.New(), uuid.New(), uuid.New(), "Bath", 4, 1, 3, renewal)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Remaining())
	})

	t.Run("counters must add up", func(t *testing.T) {
		_, err := subscription.ReconstructCredit(uuid.New(), uuid.New(), uuid.New(), uuid.New(), "Bath", 4, 1, 1, renewal)
		assert.ErrorIs(t, err, subscription.ErrCreditImbalance)
	})

	t.Run("remaining cannot be negative", func(t *testing.T) {
		_, err := subscription.ReconstructCredit(uuid.New(), uuid.New(), uuid.New(), uuid.New(), "Bath", 4, 5, -1, renewal)
		assert.ErrorIs(t, err, subscription.ErrNegativeRemaining)
	})
}

func TestCreditConsume(t *testing.T) {
	renewal := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	c, err := subscription.NewCredit(uuid.New(), uuid.New(), uuid.New(), "Bath", 2, renewal)
	require.NoError(t, err)

	require.NoError(t, c.Consume())
	require.NoError(t, c.Consume())
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, 2, c.Used())

	// Exhausted balance stays untouched.
	err = c.Consume()
	assert.ErrorIs(t, err, subscription.ErrCreditExhausted)
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, 2, c.Used())
}

func TestNewPlan(t *testing.T) {
	grant := []subscription.PlanCredit{{ServiceID: uuid.New(), Quantity: 4}}

	p, err := subscription.NewPlan("Monthly Grooming", 9900, grant)
	require.NoError(t, err)
	assert.Len(t, p.Credits(), 1)

	_, err = subscription.NewPlan(" ", 9900, grant)
	assert.ErrorIs(t, err, subscription.ErrEmptyPlanName)

	_, err = subscription.NewPlan("Monthly", 9900, nil)
	assert.ErrorIs(t, err, subscription.ErrNoPlanCredits)

	_, err = subscription.NewPlan("Monthly", 9900, []subscription.PlanCredit{{ServiceID: uuid.New(), Quantity: 0}})
	assert.ErrorIs(t, err, subscription.ErrInvalidQuantity)
}

func TestSubscriptionLifecycle(t *testing.T) {
	plan, err := subscription.NewPlan("Monthly Grooming", 9900, []subscription.PlanCredit{{ServiceID: uuid.New(), Quantity: 4}})
	require.NoError(t, err)

	start := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	sub := subscription.NewSubscription(uuid.New(), plan, start)

	assert.Equal(t, subscription.SubStatusActive, sub.Status())
	assert.Equal(t, start.AddDate(0, 1, 0), sub.RenewalDate())

	t.Run("not due before renewal date", func(t *testing.T) {
		assert.False(t, sub.DueForRenewal(start.AddDate(0, 0, 20)))
	})

	t.Run("due on and after renewal date", func(t *testing.T) {
		assert.True(t, sub.DueForRenewal(sub.RenewalDate()))
		assert.True(t, sub.DueForRenewal(sub.RenewalDate().AddDate(0, 0, 3)))
	})

	t.Run("renew advances one month", func(t *testing.T) {
		before := sub.RenewalDate()
		sub.Renew()
		assert.Equal(t, before.AddDate(0, 1, 0), sub.RenewalDate())
	})
}
