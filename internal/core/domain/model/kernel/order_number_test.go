package kernel_test

import (
	"strings"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	t.Run("accepts_opaque_token", func(t *testing.T) {
		number, err := kernel.NewOrderNumber("ORD-2041")

		require.NoError(t, err)
		require.NoError(t, number.Validate())
		assert.Equal(t, "ORD-2041", number.String())
	})

	t.Run("trims_surrounding_whitespace", func(t *testing.T) {
		number, err := kernel.NewOrderNumber("  ORD-7  ")

		require.NoError(t, err)
		assert.Equal(t, "ORD-7", number.String())
	})

	t.Run("rejects_empty_token", func(t *testing.T) {
		_, err := kernel.NewOrderNumber("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_inner_whitespace", func(t *testing.T) {
		_, err := kernel.NewOrderNumber("ORD 2041")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_overlong_token", func(t *testing.T) {
		_, err := kernel.NewOrderNumber(strings.Repeat("X", 33))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderNumber_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var number kernel.OrderNumber

		err := number.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderNumber_IsEqual(t *testing.T) {
	a, _ := kernel.NewOrderNumber("ORD-1")
	b, _ := kernel.NewOrderNumber("ORD-1")
	c, _ := kernel.NewOrderNumber("ORD-2")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
