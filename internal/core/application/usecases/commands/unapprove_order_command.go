package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUnapproveOrderCommandIsNotConstructed = errors.New(
	"UnapproveOrderCommand must be created via NewUnapproveOrderCommand constructor",
)

// UnapproveOrderCommand represents a request to withdraw an order's
// approval. Only legal while the order is still Pending.
type UnapproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnapproveOrderCommand creates a command to withdraw approval.
func NewUnapproveOrderCommand(orderID kernel.UUID) (UnapproveOrderCommand, error) {
	cmd := UnapproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UnapproveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnapproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnapproveOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c UnapproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *UnapproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
