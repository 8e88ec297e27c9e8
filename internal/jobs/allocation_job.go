package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// AllocationJob sweeps approved orders still waiting for stock. Runs every
// second so an order becomes pickable moments after approval without the
// approver having to trigger allocation by hand.
type AllocationJob struct {
	handler commands.AllocateNextOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAllocationJob creates the allocation sweep job.
func NewAllocationJob(handler commands.AllocateNextOrderCommandHandler, logger *slog.Logger) *AllocationJob {
	return &AllocationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "allocation_job"),
	}
}

// Start begins the allocation sweep, running every second.
func (j *AllocationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAllocateNextOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue and a temporary stock shortfall are expected
			// outcomes of a tick, not failures.
			var infeasible *services.AllocationInfeasibleError
			switch {
			case errors.Is(err, commands.ErrNoPendingOrders):
			case errors.As(err, &infeasible):
				j.logger.DebugContext(ctx, "Allocation deferred, stock not available", "error", err)
			default:
				j.logger.ErrorContext(ctx, "Allocation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Allocation job started (running every second)")
	return nil
}

// Stop stops the allocation sweep.
func (j *AllocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Allocation job stopped")
}
