package kernel_test

import (
	"testing"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/kernel/kerneltest"
	"deliveryops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("should parse decimal input", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"0", "0.00"},
			{"12", "12.00"},
			{" 7.5 ", "7.50"},
			{"0.125", "0.13"},
		}

		for _, tc := range testCases {
			a, err := kernel.ParseAmount("cod", tc.input)

			require.NoError(t, err, tc.input)
			assert.Equal(t, tc.expected, a.String(), tc.input)
		}
	})

	t.Run("should reject negative values", func(t *testing.T) {
		_, err := kernel.ParseAmount("cod", "-1")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.ParseAmount("cod", "ten")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cod")
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.ParseAmount("cod", "   ")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAmount_Arithmetic(t *testing.T) {
	t.Run("should add exactly", func(t *testing.T) {
		sum := kerneltest.Amount("0.1").Add(kerneltest.Amount("0.2"))

		assert.True(t, sum.Decimal().Equal(decimal.RequireFromString("0.3")))
	})

	t.Run("zero value is zero", func(t *testing.T) {
		var a kernel.Amount

		assert.True(t, a.IsZero())
		assert.True(t, a.Equal(kernel.Amount{}))
		assert.Equal(t, "0.00", a.String())
	})

	t.Run("equality ignores scale", func(t *testing.T) {
		assert.True(t, kerneltest.Amount("2").Equal(kerneltest.Amount("2.00")))
	})
}
