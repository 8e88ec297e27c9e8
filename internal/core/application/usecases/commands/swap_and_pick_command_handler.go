package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/pkg/errs"
)

// AlternateInsufficientStockError is returned when the scanned alternate
// container cannot supply the task's full quantity. The task stays Pending
// for another remedy.
type AlternateInsufficientStockError struct {
	Code      string
	SKU       string
	Required  int
	Available int
}

func (e *AlternateInsufficientStockError) Error() string {
	return fmt.Sprintf("alternate container %s holds %d of %s, task requires %d",
		e.Code, e.Available, e.SKU, e.Required)
}

// SwapAndPickCommandHandler satisfies a task from a different physical
// container. The alternate's unreserved stock is consumed; the original
// container's on-hand quantity is untouched and only its reservation claim
// is released. The task completes at full quantity as if picked normally.
type SwapAndPickCommandHandler struct {
	uowFactory ExceptionUoWFactory
}

// NewSwapAndPickCommandHandler creates a handler for swap-and-pick.
func NewSwapAndPickCommandHandler(uowFactory ExceptionUoWFactory) SwapAndPickCommandHandler {
	return SwapAndPickCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the swap.
func (h *SwapAndPickCommandHandler) Handle(ctx context.Context, cmd SwapAndPickCommand) error {
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

	job, err := uow.JobRepository().GetByTask(ctx, cmd.TaskID())
	if err != nil {
		return err
	}
	task, err := job.Task(cmd.TaskID())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, job.OrderID())
	if err != nil {
		return err
	}
	if aggregate.Mode().RequiresConsolidation() && cmd.ConsolidationID() == nil {
		return picking.ErrConsolidationNotBound
	}

	stockRepo := uow.StockRepository()
	alternate, err := stockRepo.GetContainerByCode(ctx, cmd.AlternateCode())
	if err != nil {
		return err
	}
	if err = alternate.EnsureUsable(); err != nil {
		return err
	}
	if alternate.ID().IsEqual(task.ContainerID()) {
		return errs.NewValueIsInvalidErrorWithCause("alternateContainerCode",
			errors.New("alternate container is the task's assigned container"))
	}

	entry, err := stockRepo.GetEntry(ctx, alternate.ID(), task.SKU())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return &AlternateInsufficientStockError{
				Code: alternate.Code(), SKU: task.SKU(), Required: task.Quantity(),
			}
		}
		return err
	}
	if entry.Available() < task.Quantity() {
		return &AlternateInsufficientStockError{
			Code:      alternate.Code(),
			SKU:       task.SKU(),
			Required:  task.Quantity(),
			Available: entry.Available(),
		}
	}

	if err = entry.ConsumeAvailable(task.Quantity()); err != nil {
		return err
	}
	if err = stockRepo.UpdateEntry(ctx, entry); err != nil {
		return err
	}

	// Release the claim on the assigned container without moving its
	// stock; the units the task needed never left that shelf.
	original, err := stockRepo.GetEntry(ctx, task.ContainerID(), task.SKU())
	if err != nil {
		return err
	}
	if err = original.Release(task.Quantity()); err != nil {
		return err
	}
	if err = stockRepo.UpdateEntry(ctx, original); err != nil {
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

	if err = task.Confirm(cmd.ConsolidationID()); err != nil {
		return err
	}
	if err = job.Start(time.Now()); err != nil {
		return err
	}
	if err = aggregate.StartPicking(); err != nil {
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
