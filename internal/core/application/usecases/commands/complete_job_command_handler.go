package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// CompleteJobCommandHandler is the completion trigger. It fails with
// picking.ErrJobIncomplete while any task is still pending or blocked
// behind a shortage request; otherwise the job completes and the order
// moves to Packed, ready for shipment.
type CompleteJobCommandHandler struct {
	uowFactory PickingUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCompleteJobCommandHandler creates a handler for job completion.
func NewCompleteJobCommandHandler(
	uowFactory PickingUoWFactory,
	publisher ports.OrderEventPublisher,
) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command.
func (h *CompleteJobCommandHandler) Handle(ctx context.Context, cmd CompleteJobCommand) error {
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

	job, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = job.Complete(time.Now()); err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, job.OrderID())
	if err != nil {
		return err
	}
	if err = aggregate.Pack(); err != nil {
		return err
	}

	if err = uow.JobRepository().Update(ctx, job); err != nil {
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
