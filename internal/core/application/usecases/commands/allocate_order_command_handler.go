package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// AllocateOrderCommandHandler runs the allocation engine for one order.
// The order must be approved and Pending. The selected strategy reserves
// stock on the candidate entries; the handler persists the changed
// balances and the reservation records in one transaction.
//
// Approval checked availability earlier, but another order may have
// reserved stock in between. The strategy re-checks against live balances
// and fails with *services.AllocationInfeasibleError instead of partially
// allocating; the transaction rolls back and nothing is held.
type AllocateOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAllocateOrderCommandHandler creates a handler for order allocation.
func NewAllocateOrderCommandHandler(
	uowFactory AllocationUoWFactory,
	publisher ports.OrderEventPublisher,
) AllocateOrderCommandHandler {
	return AllocateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the allocation command.
func (h *AllocateOrderCommandHandler) Handle(ctx context.Context, cmd AllocateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	strategy, err := services.StrategyByName(cmd.Strategy())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// MarkAllocated runs before reserving so an unapproved or non-Pending
	// order fails fast without touching stock.
	if err = aggregate.MarkAllocated(); err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	entries, err := stockRepo.GetEntriesBySKUs(ctx, aggregate.SKUs())
	if err != nil {
		return err
	}

	reservations, err := strategy.Allocate(aggregate, entries)
	if err != nil {
		return err
	}

	reserved := make(map[string]bool)
	for _, r := range reservations {
		key := r.ContainerID().String() + "/" + r.SKU()
		reserved[key] = true
	}
	for _, entry := range entries {
		if !reserved[entry.ContainerID().String()+"/"+entry.SKU()] {
			continue
		}
		if err = stockRepo.UpdateEntry(ctx, entry); err != nil {
			return err
		}
	}

	if err = stockRepo.AddReservations(ctx, reservations); err != nil {
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
