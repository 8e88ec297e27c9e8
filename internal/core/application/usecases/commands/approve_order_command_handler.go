package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// ApproveOrderCommandHandler handles the approval gate. For every line it
// computes the stock available across all containers (on hand minus what
// other orders already reserved) and rejects the whole order with
// *InsufficientStockError when any line falls short. On success the order
// is approved but stays Pending; allocation is a separate step.
type ApproveOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewApproveOrderCommandHandler creates a handler for order approval.
// The publisher may be nil when no broker is configured.
func NewApproveOrderCommandHandler(
	uowFactory AllocationUoWFactory,
	publisher ports.OrderEventPublisher,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the approval command.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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

	entries, err := uow.StockRepository().GetEntriesBySKUs(ctx, aggregate.SKUs())
	if err != nil {
		return err
	}

	availableBySKU := make(map[string]int)
	for _, entry := range entries {
		availableBySKU[entry.SKU()] += entry.Available()
	}

	var missing []ShortLine
	for _, line := range aggregate.Lines() {
		available := availableBySKU[line.SKU()]
		if available < line.RequestedQty() {
			missing = append(missing, ShortLine{
				Product:   line.SKU(),
				Requested: line.RequestedQty(),
				Available: available,
				Missing:   line.RequestedQty() - available,
			})
			continue
		}
		// Two lines of the same product share the availability pool.
		availableBySKU[line.SKU()] -= line.RequestedQty()
	}
	if len(missing) > 0 {
		return &InsufficientStockError{OrderID: aggregate.ID(), Missing: missing}
	}

	if err = aggregate.Approve(time.Now()); err != nil {
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
