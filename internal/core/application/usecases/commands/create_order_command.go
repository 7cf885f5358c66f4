package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order into the shared
// queue. Order intake is the only producer of Pending orders; everything
// downstream (claim, dispatch, delivery) consumes what this command creates.
//
// Example:
//
//	number, _ := kernel.NewOrderNumber("ORD-2041")
//	cmd, err := NewCreateOrderCommand(number, restaurantID, time.Now(),
//	    time.Now().Add(45*time.Minute), address, total)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	number              kernel.OrderNumber
	restaurantID        kernel.UUID
	placedAt            time.Time
	estimatedDeliveryAt time.Time
	address             kernel.Address
	total               kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates every attribute so the handler can build the aggregate directly.
func NewCreateOrderCommand(
	number kernel.OrderNumber,
	restaurantID kernel.UUID,
	placedAt time.Time,
	estimatedDeliveryAt time.Time,
	address kernel.Address,
	total kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setRestaurantID(restaurantID),
		cmd.setPlacedAt(placedAt),
		cmd.setEstimatedDeliveryAt(estimatedDeliveryAt),
		cmd.setAddress(address),
		cmd.setTotal(total),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Number returns the order's unique number.
func (c CreateOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

// RestaurantID returns the restaurant preparing the order.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// PlacedAt returns the placement timestamp.
func (c CreateOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

// EstimatedDeliveryAt returns the promised delivery time.
func (c CreateOrderCommand) EstimatedDeliveryAt() time.Time {
	return c.estimatedDeliveryAt
}

// Address returns the delivery destination.
func (c CreateOrderCommand) Address() kernel.Address {
	return c.address
}

// Total returns the order's monetary total.
func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

func (c *CreateOrderCommand) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	c.number = number
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	c.placedAt = placedAt
	return nil
}

func (c *CreateOrderCommand) setEstimatedDeliveryAt(estimatedDeliveryAt time.Time) error {
	if estimatedDeliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDeliveryAt")
	}
	c.estimatedDeliveryAt = estimatedDeliveryAt
	return nil
}

func (c *CreateOrderCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	c.total = total
	return nil
}
