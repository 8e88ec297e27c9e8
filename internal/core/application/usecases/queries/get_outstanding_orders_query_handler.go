package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOutstandingOrdersQueryHandler reads the outstanding order queue with
// per-order picking progress aggregated from the line table in one pass.
type GetOutstandingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOutstandingOrdersQueryHandler creates a handler for outstanding
// order queries.
func NewGetOutstandingOrdersQueryHandler(db *gorm.DB) GetOutstandingOrdersQueryHandler {
	return GetOutstandingOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first.
func (h GetOutstandingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOutstandingOrdersQuery,
) ([]GetOutstandingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOutstandingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.kind,
			o.mode,
			o.status,
			o.approved,
			o.total_amount,
			COUNT(l.id),
			COALESCE(SUM(l.requested_qty), 0),
			COALESCE(SUM(l.picked_qty), 0)
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.status NOT IN (?, ?)
		GROUP BY o.id, o.kind, o.mode, o.status, o.approved, o.total_amount, o.created_at
		ORDER BY o.created_at
	`, int(order.StatusShipped), int(order.StatusCancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOutstandingOrdersQueryResponse
		var id uuid.UUID
		var kind, mode, status int

		err = rows.Scan(
			&id,
			&kind,
			&mode,
			&status,
			&resp.Approved,
			&resp.TotalAmount,
			&resp.LineCount,
			&resp.RequestedUnits,
			&resp.PickedUnits,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Kind = order.Kind(kind).String()
		resp.Mode = order.FulfillmentMode(mode).String()
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
