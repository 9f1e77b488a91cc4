package customer_test

import (
	"testing"
	"time"

	"storeops/internal/core/domain/model/customer"
	"storeops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.New(1, "Pedro Gómez", "1234567890", "3001234567")
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("should create customer with zero balance", func(t *testing.T) {
		before := time.Now()

		c, err := customer.New(1, "Pedro Gómez", "1234567890", "3001234567")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, 1, c.ID())
		assert.Equal(t, "Pedro Gómez", c.Name())
		assert.Equal(t, "1234567890", c.NationalID())
		assert.Equal(t, "3001234567", c.Phone())
		assert.Zero(t, c.Balance())
		assert.False(t, c.HasDebt())
		assert.Empty(t, c.Purchases())
		assert.False(t, c.RegisteredAt().Before(before))
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		c, err := customer.New(1, " ", "1234567890", "")

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, c)
	})

	t.Run("should fail with blank national id", func(t *testing.T) {
		c, err := customer.New(1, "Pedro Gómez", "", "")

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, c)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c *customer.Customer
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, c.Validate())
	})
}

func TestCustomer_AddPurchase(t *testing.T) {
	t.Run("should accumulate onto the balance", func(t *testing.T) {
		c := newCustomer(t)

		require.NoError(t, c.AddPurchase(50000))
		require.NoError(t, c.AddPurchase(30000))

		assert.InDelta(t, 80000, c.Balance(), 1e-9)
		assert.True(t, c.HasDebt())
	})

	t.Run("should append a history entry per purchase", func(t *testing.T) {
		c := newCustomer(t)

		require.NoError(t, c.AddPurchase(50000))

		purchases := c.Purchases()
		require.Len(t, purchases, 1)
		assert.InDelta(t, 50000, purchases[0].Amount(), 1e-9)
		assert.Equal(t, "store credit purchase", purchases[0].Note())
		assert.False(t, purchases[0].At().IsZero())
	})

	t.Run("should fail with zero or negative amount", func(t *testing.T) {
		c := newCustomer(t)

		require.ErrorIs(t, c.AddPurchase(0), errs.ErrValidation)
		require.ErrorIs(t, c.AddPurchase(-100), errs.ErrValidation)
		assert.Zero(t, c.Balance())
		assert.Empty(t, c.Purchases())
	})
}

func TestCustomer_RegisterPayment(t *testing.T) {
	t.Run("should reduce the balance and return the remainder", func(t *testing.T) {
		c := newCustomer(t)
		require.NoError(t, c.AddPurchase(50000))

		remaining, err := c.RegisterPayment(20000)

		require.NoError(t, err)
		assert.InDelta(t, 30000, remaining, 1e-9)
		assert.InDelta(t, 30000, c.Balance(), 1e-9)
	})

	t.Run("full payment clears the debt", func(t *testing.T) {
		c := newCustomer(t)
		require.NoError(t, c.AddPurchase(50000))

		remaining, err := c.RegisterPayment(50000)

		require.NoError(t, err)
		assert.Zero(t, remaining)
		assert.False(t, c.HasDebt())
	})

	t.Run("should fail when payment exceeds the balance", func(t *testing.T) {
		c := newCustomer(t)
		require.NoError(t, c.AddPurchase(50000))

		_, err := c.RegisterPayment(60000)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.InDelta(t, 50000, c.Balance(), 1e-9)
	})

	t.Run("should fail with zero or negative amount", func(t *testing.T) {
		c := newCustomer(t)
		require.NoError(t, c.AddPurchase(50000))

		_, err := c.RegisterPayment(0)
		require.ErrorIs(t, err, errs.ErrValidation)

		_, err = c.RegisterPayment(-5)
		require.ErrorIs(t, err, errs.ErrValidation)

		assert.InDelta(t, 50000, c.Balance(), 1e-9)
	})
}

func TestCustomer_SettleDebt(t *testing.T) {
	c := newCustomer(t)
	require.NoError(t, c.AddPurchase(50000))

	c.SettleDebt()

	assert.Zero(t, c.Balance())
	assert.False(t, c.HasDebt())

	// The history is not erased by settling.
	assert.Len(t, c.Purchases(), 1)
}

func TestCustomer_Purchases_DefensiveCopy(t *testing.T) {
	c := newCustomer(t)
	require.NoError(t, c.AddPurchase(50000))

	purchases := c.Purchases()
	purchases[0] = customer.Purchase{}

	restored := c.Purchases()
	require.Len(t, restored, 1)
	assert.InDelta(t, 50000, restored[0].Amount(), 1e-9)
}
