package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts_zero_and_positive_amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), zero.Amount())

		price, err := kernel.NewMoney(14990)
		require.NoError(t, err)
		assert.Equal(t, int64(14990), price.Amount())
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add_and_multiply", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoney(2500)

		lineTotal := unitPrice.MulQuantity(3)
		assert.Equal(t, int64(7500), lineTotal.Amount())

		shipping, _ := kernel.NewMoney(499)
		assert.Equal(t, int64(7999), lineTotal.Add(shipping).Amount())
	})

	t.Run("sub_rejects_negative_results", func(t *testing.T) {
		small, _ := kernel.NewMoney(100)
		big, _ := kernel.NewMoney(200)

		_, err := small.Sub(big)
		require.Error(t, err)

		diff, err := big.Sub(small)
		require.NoError(t, err)
		assert.Equal(t, int64(100), diff.Amount())
	})

	t.Run("zero_value_is_a_valid_accumulator", func(t *testing.T) {
		var sum kernel.Money
		for _, amount := range []int64{100, 200, 300} {
			m, err := kernel.NewMoney(amount)
			require.NoError(t, err)
			sum = sum.Add(m)
		}
		assert.Equal(t, int64(600), sum.Amount())
	})
}

func TestMoney_String(t *testing.T) {
	m, _ := kernel.NewMoney(14990)
	assert.Equal(t, "149.90", m.String())

	m, _ = kernel.NewMoney(5)
	assert.Equal(t, "0.05", m.String())
}
