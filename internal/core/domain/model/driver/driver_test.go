package driver_test

import (
	"testing"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("hired_driver_starts_available", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "Alice")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Alice", d.Name())
		assert.Equal(t, driver.Available, d.Status())
	})

	t.Run("rejects_missing_name", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.UUID{}, "Alice")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("restores_persisted_status", func(t *testing.T) {
		d, err := driver.RestoreDriver(kernel.NewUUID(), "Bob", driver.Busy)

		require.NoError(t, err)
		assert.Equal(t, driver.Busy, d.Status())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := driver.RestoreDriver(kernel.NewUUID(), "Bob", driver.StatusUnknown)

		require.Error(t, err)
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var d driver.Driver

		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})

	t.Run("nil_driver_is_invalid", func(t *testing.T) {
		var d *driver.Driver

		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}

func TestDriver_MarkBusy(t *testing.T) {
	t.Run("available_driver_becomes_busy", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Alice")

		require.NoError(t, d.MarkBusy())
		assert.Equal(t, driver.Busy, d.Status())
	})

	t.Run("busy_driver_conflicts", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Alice")
		require.NoError(t, d.MarkBusy())

		err := d.MarkBusy()

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, driver.Busy, d.Status())
	})
}

func TestDriver_MarkAvailable(t *testing.T) {
	t.Run("busy_driver_is_released", func(t *testing.T) {
		d, _ := driver.RestoreDriver(kernel.NewUUID(), "Alice", driver.Busy)

		require.NoError(t, d.MarkAvailable())
		assert.Equal(t, driver.Available, d.Status())
	})

	t.Run("available_driver_conflicts", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Alice")

		require.ErrorIs(t, d.MarkAvailable(), errs.ErrStateConflict)
	})
}

func TestDriver_Shift(t *testing.T) {
	t.Run("available_driver_goes_offline_and_back", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Alice")

		require.NoError(t, d.GoOffline())
		assert.Equal(t, driver.Offline, d.Status())

		require.NoError(t, d.GoOnline())
		assert.Equal(t, driver.Available, d.Status())
	})

	t.Run("busy_driver_cannot_leave_shift", func(t *testing.T) {
		d, _ := driver.RestoreDriver(kernel.NewUUID(), "Alice", driver.Busy)

		require.ErrorIs(t, d.GoOffline(), errs.ErrStateConflict)
	})
}

func TestDriver_EnsureRemovable(t *testing.T) {
	t.Run("available_driver_is_removable", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Alice")

		require.NoError(t, d.EnsureRemovable())
	})

	t.Run("offline_driver_is_removable", func(t *testing.T) {
		d, _ := driver.RestoreDriver(kernel.NewUUID(), "Alice", driver.Offline)

		require.NoError(t, d.EnsureRemovable())
	})

	t.Run("busy_driver_is_not_removable", func(t *testing.T) {
		d, _ := driver.RestoreDriver(kernel.NewUUID(), "Alice", driver.Busy)

		err := d.EnsureRemovable()

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}
