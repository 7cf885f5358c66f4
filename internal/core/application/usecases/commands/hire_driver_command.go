package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrHireDriverCommandIsNotConstructed = errors.New(
		"HireDriverCommand must be created via NewHireDriverCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// HireDriverCommand registers a new driver on the roster. A freshly hired
// driver starts Available and is immediately eligible for dispatch.
//
// Example:
//
//	cmd, err := NewHireDriverCommand("Dana Reyes")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewHireDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to hire driver: %w", err)
//	}
//	fmt.Printf("Hired driver with ID: %s", cmd.DriverID())
type HireDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewHireDriverCommand creates a command to register a new driver.
// Automatically generates a unique ID for the driver.
func NewHireDriverCommand(name string) (HireDriverCommand, error) {
	command := HireDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return HireDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c HireDriverCommand) Validate() error {
	return c.guard.Validate(ErrHireDriverCommandIsNotConstructed)
}

// DriverID returns the generated driver ID.
func (c HireDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver name from the command.
func (c HireDriverCommand) Name() string {
	return c.name
}

func (c *HireDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *HireDriverCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
