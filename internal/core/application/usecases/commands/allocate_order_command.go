package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAllocateOrderCommandIsNotConstructed = errors.New(
	"AllocateOrderCommand must be created via NewAllocateOrderCommand constructor",
)

// AllocateOrderCommand represents a request to bind an approved order's
// lines to physical containers, creating reservations. The strategy name
// selects the allocation algorithm; empty means the default.
type AllocateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	strategy string

	guard guard.ConstructorGuard
}

// NewAllocateOrderCommand creates a command to allocate an order.
// The strategy name is resolved by the handler, so an unknown name fails
// there rather than here.
func NewAllocateOrderCommand(orderID kernel.UUID, strategy string) (AllocateOrderCommand, error) {
	cmd := AllocateOrderCommand{
		strategy: strategy,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AllocateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AllocateOrderCommand) Validate() error {
	return c.guard.Validate(ErrAllocateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c AllocateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Strategy returns the requested allocation strategy name.
func (c AllocateOrderCommand) Strategy() string {
	return c.strategy
}

func (c *AllocateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
