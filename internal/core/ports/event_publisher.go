package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderEventPublisher notifies downstream systems of order status changes.
// Publishing happens after commit and is best effort: a broker outage must
// never fail the command that already persisted.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
