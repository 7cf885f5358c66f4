package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderNumber", "ORD-1")

		assert.Equal(t, "orderNumber", err.ParamName)
		assert.Equal(t, "ORD-1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: ORD-1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("driverId", "123", cause)

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driverId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestStateConflictError(t *testing.T) {
	t.Run("NewStateConflictError", func(t *testing.T) {
		err := errs.NewStateConflictError("order", "OutForDelivery")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "OutForDelivery", err.CurrentState)
		require.NoError(t, err.Cause)
		assert.Equal(t, "state conflict: order is in state OutForDelivery", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})

	t.Run("NewStateConflictError without observed state", func(t *testing.T) {
		err := errs.NewStateConflictError("order", "")

		assert.Equal(t, "state conflict: order", err.Error())
	})

	t.Run("NewStateConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("concurrent update won")
		err := errs.NewStateConflictErrorWithCause("driver", "Busy", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "state conflict: driver is in state Busy (cause: concurrent update won)", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("deliveredAt")

		assert.Equal(t, "deliveredAt", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: deliveredAt", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("precedes placement time")
		err := errs.NewValueIsInvalidErrorWithCause("deliveredAt", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: deliveredAt (cause: precedes placement time)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "state conflict", errs.ErrStateConflict.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})

	t.Run("sanitize strips newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("multi\nline")
		assert.Contains(t, err.Error(), "multi line")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderNumber", "ORD-1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewStateConflictError("order", "Delivered"), errs.ErrStateConflict)
		require.ErrorIs(t, errs.NewValueIsInvalidError("deliveredAt"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	})
}
