package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates_valid_address", func(t *testing.T) {
		addr, err := kernel.NewAddress("12 Baker St", "Springfield", "+15550101")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "12 Baker St", addr.Street())
		assert.Equal(t, "Springfield", addr.City())
		assert.Equal(t, "+15550101", addr.Phone())
	})

	t.Run("city_is_optional", func(t *testing.T) {
		_, err := kernel.NewAddress("12 Baker St", "", "+15550101")

		require.NoError(t, err)
	})

	t.Run("rejects_missing_street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Springfield", "+15550101")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_missing_phone", func(t *testing.T) {
		_, err := kernel.NewAddress("12 Baker St", "Springfield", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
