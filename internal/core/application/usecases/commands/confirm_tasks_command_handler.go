package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picking"
)

// ConfirmTasksCommandHandler executes item-mode task confirmation. For
// each selected task it consumes the reserved stock on the task's entry,
// advances the owning line's picked quantity, completes the task and drops
// the reservation, all inside one transaction.
//
// Already-completed tasks are skipped as benign no-ops and do not
// decrement anything a second time. Tasks blocked behind a shortage
// request fail the whole call.
type ConfirmTasksCommandHandler struct {
	uowFactory PickingUoWFactory
	sessions   SessionStore
}

// NewConfirmTasksCommandHandler creates a handler for task confirmation.
func NewConfirmTasksCommandHandler(
	uowFactory PickingUoWFactory,
	sessions SessionStore,
) ConfirmTasksCommandHandler {
	return ConfirmTasksCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the confirmation and returns how many tasks actually
// moved to Completed. Retried confirmations of finished tasks do not count.
func (h *ConfirmTasksCommandHandler) Handle(ctx context.Context, cmd ConfirmTasksCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	job, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return 0, err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, job.OrderID())
	if err != nil {
		return 0, err
	}
	if !aggregate.Mode().RequiresConsolidation() {
		return 0, ErrRequiresItemMode
	}

	session, err := h.sessions.GetOrCreate(job.ID(), cmd.Operator())
	if err != nil {
		return 0, err
	}

	consolidationID := cmd.ConsolidationID()
	processed := 0
	for _, taskID := range cmd.TaskIDs() {
		task, err := job.Task(taskID)
		if err != nil {
			return 0, err
		}
		if task.Status() == picking.TaskCompleted {
			continue
		}

		if err = session.EnsureCanConfirm(aggregate.Mode(), task.ContainerCode()); err != nil {
			return 0, err
		}

		if err = confirmOne(ctx, uow, aggregate, job, task, &consolidationID); err != nil {
			return 0, err
		}
		processed++
	}

	if processed > 0 {
		if err = uow.JobRepository().Update(ctx, job); err != nil {
			return 0, err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return processed, nil
}

// confirmOne performs the single-task unit of atomicity: one entry
// decrement, one line increment, one task status change, one reservation
// delete. The caller's transaction commits them together or not at all.
func confirmOne(
	ctx context.Context,
	uow PickingUoW,
	aggregate *order.Order,
	job *picking.Job,
	task *picking.Task,
	consolidationID *kernel.UUID,
) error {
	stockRepo := uow.StockRepository()

	entry, err := stockRepo.GetEntry(ctx, task.ContainerID(), task.SKU())
	if err != nil {
		return err
	}
	if err = entry.ConsumeReserved(task.Quantity()); err != nil {
		return err
	}
	if err = stockRepo.UpdateEntry(ctx, entry); err != nil {
		return err
	}

	reservation, err := stockRepo.GetReservation(ctx, task.LineID(), task.ContainerID())
	if err != nil {
		return err
	}
	if err = stockRepo.DeleteReservation(ctx, reservation.ID()); err != nil {
		return err
	}

	line, err := aggregate.Line(task.LineID())
	if err != nil {
		return err
	}
	if err = line.AddPicked(task.Quantity()); err != nil {
		return err
	}

	if err = task.Confirm(consolidationID); err != nil {
		return err
	}

	if err = job.Start(time.Now()); err != nil {
		return err
	}
	return aggregate.StartPicking()
}

// ErrRequiresItemMode rejects per-task confirmation on container-mode jobs;
// those confirm whole containers through ConfirmContainerCommand.
var ErrRequiresItemMode = errors.New("job is not item-mode")
