package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// DeallocateOrderCommandHandler reverses an allocation: restores each
// touched entry's reserved balance, deletes the order's reservations and
// returns the order to Pending. The round trip leaves every entry's
// available quantity exactly where it was before allocation.
type DeallocateOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewDeallocateOrderCommandHandler creates a handler for deallocation.
func NewDeallocateOrderCommandHandler(
	uowFactory AllocationUoWFactory,
	publisher ports.OrderEventPublisher,
) DeallocateOrderCommandHandler {
	return DeallocateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the deallocation command.
func (h *DeallocateOrderCommandHandler) Handle(ctx context.Context, cmd DeallocateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ReleaseAllocation(); err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	reservations, err := stockRepo.GetReservationsByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	for _, r := range reservations {
		entry, err := stockRepo.GetEntry(ctx, r.ContainerID(), r.SKU())
		if err != nil {
			return err
		}
		if err = entry.Release(r.Quantity()); err != nil {
			return err
		}
		if err = stockRepo.UpdateEntry(ctx, entry); err != nil {
			return err
		}
	}

	if err = stockRepo.DeleteReservationsByOrder(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		_ = h.publisher.PublishOrderChanged(ctx, aggregate)
	}

	return nil
}
