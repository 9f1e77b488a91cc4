package ledger_test

import (
	"testing"

	"storeops/internal/core/application/ledger"
	"storeops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Create(t *testing.T) {
	t.Run("should register customers with sequential ids", func(t *testing.T) {
		l := ledger.NewLedger()

		first, err := l.Create("Maria Lopez", "11222333", "555-0101")
		require.NoError(t, err)
		second, err := l.Create("Juan Perez", "44555666", "")
		require.NoError(t, err)

		assert.Equal(t, 1, first.ID())
		assert.Equal(t, 2, second.ID())
		assert.Equal(t, 2, l.Count())
	})

	t.Run("should reject blank name and national id", func(t *testing.T) {
		l := ledger.NewLedger()

		_, err := l.Create("  ", "11222333", "")
		require.ErrorIs(t, err, errs.ErrValidation)

		_, err = l.Create("Maria Lopez", "", "")
		require.ErrorIs(t, err, errs.ErrValidation)

		assert.Zero(t, l.Count())
	})

	t.Run("should reject duplicate national id", func(t *testing.T) {
		l := ledger.NewLedger()
		_, err := l.Create("Maria Lopez", "11222333", "")
		require.NoError(t, err)

		_, err = l.Create("Other Person", "11222333", "")

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, 1, l.Count())
	})

	t.Run("rejected creation does not burn an id", func(t *testing.T) {
		l := ledger.NewLedger()
		_, err := l.Create("Maria Lopez", "11222333", "")
		require.NoError(t, err)
		_, err = l.Create("Other Person", "11222333", "")
		require.Error(t, err)

		c, err := l.Create("Juan Perez", "44555666", "")

		require.NoError(t, err)
		assert.Equal(t, 2, c.ID())
	})
}

func TestLedger_Find(t *testing.T) {
	l := ledger.NewLedger()
	maria, err := l.Create("Maria Lopez", "11222333", "")
	require.NoError(t, err)
	_, err = l.Create("Juan Perez", "44555666", "")
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		found, ok := l.FindByID(maria.ID())
		require.True(t, ok)
		assert.Equal(t, "Maria Lopez", found.Name())

		_, ok = l.FindByID(999)
		assert.False(t, ok)
	})

	t.Run("by name, case insensitive", func(t *testing.T) {
		found, ok := l.FindByName("  maria lopez ")
		require.True(t, ok)
		assert.Equal(t, maria.ID(), found.ID())

		_, ok = l.FindByName("")
		assert.False(t, ok)
	})

	t.Run("by national id", func(t *testing.T) {
		found, ok := l.FindByNationalID("44555666")
		require.True(t, ok)
		assert.Equal(t, "Juan Perez", found.Name())

		_, ok = l.FindByNationalID("  ")
		assert.False(t, ok)
	})

	t.Run("partial name search", func(t *testing.T) {
		matches := l.SearchByName("pe")
		require.Len(t, matches, 2)

		matches = l.SearchByName("juan")
		require.Len(t, matches, 1)
		assert.Equal(t, "Juan Perez", matches[0].Name())

		assert.Empty(t, l.SearchByName("   "))
		assert.Empty(t, l.SearchByName("nobody"))
	})
}

func TestLedger_Payments(t *testing.T) {
	t.Run("should reduce the balance on a valid payment", func(t *testing.T) {
		l := ledger.NewLedger()
		c, err := l.Create("Maria Lopez", "11222333", "")
		require.NoError(t, err)
		require.NoError(t, c.AddPurchase(20000))

		ok := l.RegisterPayment(c.ID(), 5000)

		assert.True(t, ok)
		assert.InDelta(t, 15000, c.Balance(), 1e-9)
	})

	t.Run("absorbs the validation error on an overpayment", func(t *testing.T) {
		l := ledger.NewLedger()
		c, err := l.Create("Maria Lopez", "11222333", "")
		require.NoError(t, err)
		require.NoError(t, c.AddPurchase(1000))

		assert.False(t, l.RegisterPayment(c.ID(), 5000))
		assert.InDelta(t, 1000, c.Balance(), 1e-9)
	})

	t.Run("returns false for unknown customer", func(t *testing.T) {
		l := ledger.NewLedger()

		assert.False(t, l.RegisterPayment(999, 100))
	})

	t.Run("settle clears the balance", func(t *testing.T) {
		l := ledger.NewLedger()
		c, err := l.Create("Maria Lopez", "11222333", "")
		require.NoError(t, err)
		require.NoError(t, c.AddPurchase(20000))

		assert.True(t, l.SettleDebt(c.ID()))
		assert.Zero(t, c.Balance())
		assert.False(t, c.HasDebt())

		assert.False(t, l.SettleDebt(999))
	})
}

func TestLedger_DebtQueries(t *testing.T) {
	l := ledger.NewLedger()
	maria, err := l.Create("Maria Lopez", "11222333", "")
	require.NoError(t, err)
	juan, err := l.Create("Juan Perez", "44555666", "")
	require.NoError(t, err)
	_, err = l.Create("Ana Diaz", "77888999", "")
	require.NoError(t, err)

	require.NoError(t, maria.AddPurchase(20000))
	require.NoError(t, juan.AddPurchase(5000))

	t.Run("with debt, in registration order", func(t *testing.T) {
		debtors := l.WithDebt()

		require.Len(t, debtors, 2)
		assert.Equal(t, maria.ID(), debtors[0].ID())
		assert.Equal(t, juan.ID(), debtors[1].ID())
	})

	t.Run("total debt", func(t *testing.T) {
		assert.InDelta(t, 25000, l.TotalDebt(), 1e-9)
	})

	t.Run("all returns a safe snapshot", func(t *testing.T) {
		all := l.All()
		require.Len(t, all, 3)

		all[0] = nil
		assert.NotNil(t, l.All()[0])
	})
}

func TestLedger_Remove(t *testing.T) {
	l := ledger.NewLedger()
	maria, err := l.Create("Maria Lopez", "11222333", "")
	require.NoError(t, err)
	_, err = l.Create("Juan Perez", "44555666", "")
	require.NoError(t, err)

	t.Run("should remove an existing customer", func(t *testing.T) {
		assert.True(t, l.Remove(maria.ID()))
		assert.Equal(t, 1, l.Count())
		_, ok := l.FindByID(maria.ID())
		assert.False(t, ok)
	})

	t.Run("removed ids are never reused", func(t *testing.T) {
		c, err := l.Create("Ana Diaz", "77888999", "")
		require.NoError(t, err)
		assert.Equal(t, 3, c.ID())
	})

	t.Run("returns false for unknown customer", func(t *testing.T) {
		assert.False(t, l.Remove(999))
	})
}
