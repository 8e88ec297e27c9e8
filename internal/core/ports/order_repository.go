// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// including picked-quantity progress on its lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with all its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstApprovedPending retrieves the oldest approved order still in
	// Pending status. The background allocation job drains this queue.
	GetFirstApprovedPending(ctx context.Context) (*order.Order, error)

	// GetAllOutstanding retrieves every order not yet shipped or cancelled,
	// oldest first.
	GetAllOutstanding(ctx context.Context) ([]*order.Order, error)
}
