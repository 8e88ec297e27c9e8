package commands

import (
	"context"
)

// UnlockContainerCommandHandler verifies the scanned code against the
// container assigned to the job's tasks and unlocks it in the session.
// A mismatch returns picking.ErrContainerMismatch and the container stays
// locked; the operator rescans.
type UnlockContainerCommandHandler struct {
	uowFactory PickingUoWFactory
	sessions   SessionStore
}

// NewUnlockContainerCommandHandler creates a handler for container unlocks.
func NewUnlockContainerCommandHandler(
	uowFactory PickingUoWFactory,
	sessions SessionStore,
) UnlockContainerCommandHandler {
	return UnlockContainerCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the unlock scan.
func (h *UnlockContainerCommandHandler) Handle(ctx context.Context, cmd UnlockContainerCommand) error {
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

	container, err := uow.StockRepository().GetContainer(ctx, cmd.ContainerID())
	if err != nil {
		return err
	}

	session, err := h.sessions.GetOrCreate(job.ID(), cmd.Operator())
	if err != nil {
		return err
	}

	if err = session.UnlockContainer(container.Code(), cmd.ScannedCode()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
