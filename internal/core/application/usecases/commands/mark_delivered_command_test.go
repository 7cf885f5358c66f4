package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkDeliveredCommand_ValidInput(t *testing.T) {
	number, _ := kernel.NewOrderNumber("ORD-4001")
	deliveredAt := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)

	cmd, err := commands.NewMarkDeliveredCommand(number, deliveredAt)
	require.NoError(t, err)
	assert.Equal(t, number, cmd.Number())
	assert.True(t, cmd.DeliveredAt().Equal(deliveredAt))
}

func TestNewMarkDeliveredCommand_InvalidNumber(t *testing.T) {
	_, err := commands.NewMarkDeliveredCommand(kernel.OrderNumber{}, time.Now())
	require.Error(t, err)
}

func TestNewMarkDeliveredCommand_ZeroDeliveredAt(t *testing.T) {
	number, _ := kernel.NewOrderNumber("ORD-4001")

	_, err := commands.NewMarkDeliveredCommand(number, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestMarkDeliveredCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.MarkDeliveredCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMarkDeliveredCommandIsNotConstructed)
}
