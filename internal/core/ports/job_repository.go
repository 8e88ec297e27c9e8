package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
)

// JobRepository defines the persistence contract for pick job aggregates.
// A job is always loaded and stored with its full task list.
type JobRepository interface {
	// Add persists a new job aggregate with all its tasks.
	Add(ctx context.Context, aggregate *picking.Job) error

	// Update persists changes to an existing job and its tasks.
	Update(ctx context.Context, aggregate *picking.Job) error

	// Get retrieves a job aggregate with its tasks in traversal order.
	Get(ctx context.Context, id kernel.UUID) (*picking.Job, error)

	// GetByTask retrieves the job owning the given task. Shortage and swap
	// requests arrive addressed by task, not by job.
	GetByTask(ctx context.Context, taskID kernel.UUID) (*picking.Job, error)
}
