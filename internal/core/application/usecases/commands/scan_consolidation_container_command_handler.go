package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// ConsolidationContainerResult tells the operator's device what was bound:
// the resolved container and how many units this job already collected
// into it.
type ConsolidationContainerResult struct {
	ContainerID kernel.UUID
	Code        string
	ItemCount   int
}

// ScanConsolidationContainerCommandHandler resolves a scanned code against
// the container registry, verifies the container is usable, and binds it
// to the job's pick session. Rebinding mid-job is allowed; operators swap
// carts when one fills up.
type ScanConsolidationContainerCommandHandler struct {
	uowFactory PickingUoWFactory
	sessions   SessionStore
}

// NewScanConsolidationContainerCommandHandler creates a handler for
// consolidation container scans.
func NewScanConsolidationContainerCommandHandler(
	uowFactory PickingUoWFactory,
	sessions SessionStore,
) ScanConsolidationContainerCommandHandler {
	return ScanConsolidationContainerCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the scan.
func (h *ScanConsolidationContainerCommandHandler) Handle(
	ctx context.Context,
	cmd ScanConsolidationContainerCommand,
) (ConsolidationContainerResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConsolidationContainerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConsolidationContainerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	job, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return ConsolidationContainerResult{}, err
	}

	container, err := uow.StockRepository().GetContainerByCode(ctx, cmd.Code())
	if err != nil {
		return ConsolidationContainerResult{}, err
	}
	if err = container.EnsureUsable(); err != nil {
		return ConsolidationContainerResult{}, err
	}

	session, err := h.sessions.GetOrCreate(job.ID(), cmd.Operator())
	if err != nil {
		return ConsolidationContainerResult{}, err
	}
	if err = session.BindConsolidation(container.ID()); err != nil {
		return ConsolidationContainerResult{}, err
	}

	itemCount := 0
	for _, task := range job.Tasks() {
		if task.Consolidation() != nil && task.Consolidation().IsEqual(container.ID()) {
			itemCount += task.PickedQty()
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ConsolidationContainerResult{}, err
	}

	return ConsolidationContainerResult{
		ContainerID: container.ID(),
		Code:        container.Code(),
		ItemCount:   itemCount,
	}, nil
}
