// Package commands contains write operations that mutate or produce new
// state. Implements the Command pattern for the write side of the use case
// layer: each command is a validated request object paired with a handler
// that orchestrates domain services and outbound ports.
package commands

import (
	"errors"

	"shipnotice/internal/core/domain/model/order"
	"shipnotice/internal/pkg/guard"
)

var (
	ErrCartonizeOrderCommandIsNotConstructed = errors.New(
		"CartonizeOrderCommand must be created via NewCartonizeOrderCommand constructor",
	)
)

// CartonizeOrderCommand represents a request to pack a validated order into
// capacity-bounded cartons with assigned container codes.
//
// Example:
//
//	cmd, err := NewCartonizeOrderCommand(ord)
//	if err != nil {
//	    return fmt.Errorf("invalid cartonization request: %w", err)
//	}
//
//	shp, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("cartonization failed: %w", err)
//	}
//	fmt.Printf("Packed into %d cartons", shp.TotalCartons())
type CartonizeOrderCommand struct { //nolint:recvcheck //using for validation
	order *order.Order

	guard guard.ConstructorGuard
}

// NewCartonizeOrderCommand creates a command to cartonize the given order.
// The order must be a fully constructed aggregate.
func NewCartonizeOrderCommand(o *order.Order) (CartonizeOrderCommand, error) {
	cmd := CartonizeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrder(o); err != nil {
		return CartonizeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCartonizeOrderCommandIsNotConstructed if validation fails.
func (c CartonizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrCartonizeOrderCommandIsNotConstructed)
}

// Order returns the order to be packed.
func (c CartonizeOrderCommand) Order() *order.Order {
	return c.order
}

func (c *CartonizeOrderCommand) setOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	c.order = o
	return nil
}
