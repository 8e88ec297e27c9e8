package commands

import (
	"context"
	"errors"
)

// ErrRequiresContainerMode rejects whole-container confirmation on
// item-mode jobs; those confirm selected tasks through ConfirmTasksCommand.
var ErrRequiresContainerMode = errors.New("job is not container-mode")

// ConfirmContainerCommandHandler executes container-mode confirmation:
// every pending task of the unlocked container completes in one call, with
// the same per-task atomicity as item-mode confirmation. No consolidation
// container is involved.
type ConfirmContainerCommandHandler struct {
	uowFactory PickingUoWFactory
	sessions   SessionStore
}

// NewConfirmContainerCommandHandler creates a handler for container
// confirmation.
func NewConfirmContainerCommandHandler(
	uowFactory PickingUoWFactory,
	sessions SessionStore,
) ConfirmContainerCommandHandler {
	return ConfirmContainerCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the confirmation and returns how many tasks completed.
// Confirming a container whose tasks all finished already is a no-op.
func (h *ConfirmContainerCommandHandler) Handle(ctx context.Context, cmd ConfirmContainerCommand) (int, error) {
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
	if !aggregate.Mode().ConfirmsWholeContainer() {
		return 0, ErrRequiresContainerMode
	}

	session, err := h.sessions.GetOrCreate(job.ID(), cmd.Operator())
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, task := range job.PendingTasksForContainer(cmd.ContainerID()) {
		if err = session.EnsureCanConfirm(aggregate.Mode(), task.ContainerCode()); err != nil {
			return 0, err
		}
		if err = confirmOne(ctx, uow, aggregate, job, task, nil); err != nil {
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
