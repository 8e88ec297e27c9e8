package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

// ErrNoPendingOrders signals that no approved order is waiting for
// allocation. The background sweep treats this as a quiet tick.
var ErrNoPendingOrders = errors.New("no approved pending orders")

// AllocateNextOrderCommandHandler finds the oldest approved order still in
// Pending and runs the default allocation strategy on it. Order lookup and
// allocation run in separate transactions; if another allocation wins the
// race in between, the inner handler fails on the status check and the
// next tick moves on.
type AllocateNextOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	allocate   AllocateOrderCommandHandler
}

// NewAllocateNextOrderCommandHandler creates a handler for the allocation sweep.
func NewAllocateNextOrderCommandHandler(
	uowFactory AllocationUoWFactory,
	allocate AllocateOrderCommandHandler,
) AllocateNextOrderCommandHandler {
	return AllocateNextOrderCommandHandler{
		uowFactory: uowFactory,
		allocate:   allocate,
	}
}

// Handle processes one sweep tick.
func (h *AllocateNextOrderCommandHandler) Handle(ctx context.Context, cmd AllocateNextOrderCommand) error {
	if cmd.IsEmpty() {
		return errors.New("AllocateNextOrderCommand must be created via NewAllocateNextOrderCommand constructor")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().GetFirstApprovedPending(ctx)
	_ = uow.Rollback(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrNoPendingOrders
		}
		return err
	}

	allocateCmd, err := NewAllocateOrderCommand(aggregate.ID(), "")
	if err != nil {
		return err
	}

	return h.allocate.Handle(ctx, allocateCmd)
}
