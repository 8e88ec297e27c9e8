package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/approval"
	"fulfillment/internal/core/domain/model/kernel"
)

// ApprovalRepository defines the persistence contract for shortage
// requests. Resolved requests stay in storage as the audit trail.
type ApprovalRepository interface {
	// Add persists a new shortage request.
	Add(ctx context.Context, request *approval.ShortageRequest) error

	// Update persists the resolution of a request.
	Update(ctx context.Context, request *approval.ShortageRequest) error

	// Get retrieves a shortage request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*approval.ShortageRequest, error)

	// GetPendingByTask retrieves the unresolved request blocking a task.
	// Returns (nil, nil) when none exists; at most one pending request
	// exists per task.
	GetPendingByTask(ctx context.Context, taskID kernel.UUID) (*approval.ShortageRequest, error)
}
