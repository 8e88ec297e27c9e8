package commands

import (
	"context"
)

// RejectShortageCommandHandler resolves a shortage claim against the
// operator: the request is marked rejected for the audit trail and the
// task reopens for normal confirmation.
type RejectShortageCommandHandler struct {
	uowFactory ExceptionUoWFactory
}

// NewRejectShortageCommandHandler creates a handler for shortage rejection.
func NewRejectShortageCommandHandler(uowFactory ExceptionUoWFactory) RejectShortageCommandHandler {
	return RejectShortageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection.
func (h *RejectShortageCommandHandler) Handle(ctx context.Context, cmd RejectShortageCommand) error {
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
	if err = request.Reject(); err != nil {
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
	if err = task.Reopen(); err != nil {
		return err
	}

	if err = uow.ApprovalRepository().Update(ctx, request); err != nil {
		return err
	}
	if err = uow.JobRepository().Update(ctx, job); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
