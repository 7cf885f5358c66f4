package http

import (
	"errors"
	"net/http"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "object_not_found_maps_to_404",
			err:  errs.NewObjectNotFoundError("order", "ORD-1001"),
			want: http.StatusNotFound,
		},
		{
			name: "empty_queue_maps_to_404",
			err:  commands.ErrNoOrderFound,
			want: http.StatusNotFound,
		},
		{
			name: "state_conflict_maps_to_409",
			err:  errs.NewStateConflictError("order", "Delivered"),
			want: http.StatusConflict,
		},
		{
			name: "no_available_drivers_maps_to_409",
			err:  commands.ErrNoAvailableDriversFound,
			want: http.StatusConflict,
		},
		{
			name: "invalid_value_maps_to_400",
			err:  errs.NewValueIsInvalidError("deliveredAt"),
			want: http.StatusBadRequest,
		},
		{
			name: "required_value_maps_to_400",
			err:  errs.NewValueIsRequiredError("deliveredAt"),
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped_sentinel_is_still_mapped",
			err:  errs.NewStateConflictErrorWithCause("driver", "Busy", errors.New("row conflict")),
			want: http.StatusConflict,
		},
		{
			name: "unknown_error_maps_to_500",
			err:  errors.New("connection refused"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
