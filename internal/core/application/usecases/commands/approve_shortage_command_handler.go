package commands

import (
	"context"
	"time"
)

// ApproveShortageCommandHandler commits a shortage in the operator's
// favor. The approved actual quantity is consumed from the source entry,
// the remaining reserved units are released back to available, the line
// advances by the actual quantity and the task completes. The resolved
// request stays in storage carrying the delta as the audit record.
type ApproveShortageCommandHandler struct {
	uowFactory ExceptionUoWFactory
}

// NewApproveShortageCommandHandler creates a handler for shortage approval.
func NewApproveShortageCommandHandler(uowFactory ExceptionUoWFactory) ApproveShortageCommandHandler {
	return ApproveShortageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval.
func (h *ApproveShortageCommandHandler) Handle(ctx context.Context, cmd ApproveShortageCommand) error {
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

	request, err := uow.ApprovalRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}
	if err = request.Approve(); err != nil {
		return err
	}

	job, err := uow.JobRepository().GetByTask(ctx, request.TaskID())
	if err != nil {
		return err
	}
	task, err := job.Task(request.TaskID())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, job.OrderID())
	if err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	entry, err := stockRepo.GetEntry(ctx, task.ContainerID(), task.SKU())
	if err != nil {
		return err
	}

	if request.ActualQty() > 0 {
		if err = entry.ConsumeReserved(request.ActualQty()); err != nil {
			return err
		}
	}
	// The missing units stay on the ledger; correcting on-hand for lost
	// stock is an inventory adjustment, not part of this flow. Only the
	// reservation claim is released.
	if err = entry.Release(request.Delta()); err != nil {
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

	if request.ActualQty() > 0 {
		line, err := aggregate.Line(task.LineID())
		if err != nil {
			return err
		}
		if err = line.AddPicked(request.ActualQty()); err != nil {
			return err
		}
	}

	if err = task.CompleteWithShortage(request.ActualQty()); err != nil {
		return err
	}
	if err = job.Start(time.Now()); err != nil {
		return err
	}
	if err = aggregate.StartPicking(); err != nil {
		return err
	}

	if err = uow.ApprovalRepository().Update(ctx, request); err != nil {
		return err
	}
	if err = uow.JobRepository().Update(ctx, job); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
