package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// CreateJobCommandHandler is the job builder. It turns an allocated
// order's reservations into one pick task each, orders the tasks by
// storage location, container and product, and moves the order to Ready.
type CreateJobCommandHandler struct {
	uowFactory PickingUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreateJobCommandHandler creates a handler for job building.
func NewCreateJobCommandHandler(
	uowFactory PickingUoWFactory,
	publisher ports.OrderEventPublisher,
) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the job creation command.
func (h *CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = aggregate.MarkReady(); err != nil {
		return kernel.UUID{}, err
	}

	stockRepo := uow.StockRepository()
	reservations, err := stockRepo.GetReservationsByOrder(ctx, aggregate.ID())
	if err != nil {
		return kernel.UUID{}, err
	}

	tasks := make([]*picking.Task, 0, len(reservations))
	for _, r := range reservations {
		container, err := stockRepo.GetContainer(ctx, r.ContainerID())
		if err != nil {
			return kernel.UUID{}, err
		}

		task, err := picking.NewTask(
			kernel.NewUUID(), r.LineID(), r.ContainerID(),
			container.Code(), container.LocationCode(), r.SKU(), r.Quantity())
		if err != nil {
			return kernel.UUID{}, err
		}
		tasks = append(tasks, task)
	}

	services.OrderTasksForTraversal(tasks)

	job, err := picking.NewJob(kernel.NewUUID(), aggregate.ID(), tasks)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.JobRepository().Add(ctx, job); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if h.publisher != nil {
		_ = h.publisher.PublishOrderChanged(ctx, aggregate)
	}

	return job.ID(), nil
}
