package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/approval"
	"fulfillment/internal/core/domain/model/kernel"
)

// ErrShortageAlreadyReported rejects a second report against a task whose
// first one is still pending.
var ErrShortageAlreadyReported = errors.New("task already has a pending shortage request")

// ReportShortageCommandHandler opens the exception sub-workflow: the task
// moves to PendingApproval and a shortage request records the claim for a
// supervisor. No inventory moves until the request resolves.
type ReportShortageCommandHandler struct {
	uowFactory ExceptionUoWFactory
}

// NewReportShortageCommandHandler creates a handler for shortage reports.
func NewReportShortageCommandHandler(uowFactory ExceptionUoWFactory) ReportShortageCommandHandler {
	return ReportShortageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the report and returns the new request's identifier.
func (h *ReportShortageCommandHandler) Handle(ctx context.Context, cmd ReportShortageCommand) (kernel.UUID, error) {
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

	job, err := uow.JobRepository().GetByTask(ctx, cmd.TaskID())
	if err != nil {
		return kernel.UUID{}, err
	}
	task, err := job.Task(cmd.TaskID())
	if err != nil {
		return kernel.UUID{}, err
	}

	pending, err := uow.ApprovalRepository().GetPendingByTask(ctx, task.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if pending != nil {
		return kernel.UUID{}, ErrShortageAlreadyReported
	}

	request, err := approval.NewShortageRequest(
		kernel.NewUUID(), task.ID(), job.ID(),
		task.Quantity(), cmd.ActualQty(), cmd.Reason(), cmd.Operator())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = task.MarkAwaitingApproval(); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.ApprovalRepository().Add(ctx, request); err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.JobRepository().Update(ctx, job); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return request.ID(), nil
}
