package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand confirms an in-flight delivery.
// The delivered-at timestamp is supplied by the caller (driver app or staff
// UI) rather than stamped server-side, because confirmation may arrive after
// the fact; the domain still rejects timestamps preceding placement.
//
// Example:
//
//	number, _ := kernel.NewOrderNumber("ORD-2041")
//	cmd, _ := NewMarkDeliveredCommand(number, time.Now())
//	delivered, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    // delivered-at precedes the order's placement time
//	}
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	number      kernel.OrderNumber
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to confirm a delivery.
// The timestamp must be non-zero; its relation to the order's placement time
// is checked by the aggregate once the order is loaded.
func NewMarkDeliveredCommand(number kernel.OrderNumber, deliveredAt time.Time) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setDeliveredAt(deliveredAt),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// Number returns the order number to complete.
func (c MarkDeliveredCommand) Number() kernel.OrderNumber {
	return c.number
}

// DeliveredAt returns the confirmed delivery timestamp.
func (c MarkDeliveredCommand) DeliveredAt() time.Time {
	return c.deliveredAt
}

func (c *MarkDeliveredCommand) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	c.number = number
	return nil
}

func (c *MarkDeliveredCommand) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	c.deliveredAt = deliveredAt
	return nil
}
