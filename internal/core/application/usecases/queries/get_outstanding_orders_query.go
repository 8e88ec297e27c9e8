package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOutstandingOrdersQueryIsNotConstructed = errors.New(
	"GetOutstandingOrdersQuery must be created via NewGetOutstandingOrdersQuery constructor",
)

// GetOutstandingOrdersQuery retrieves every order still moving through the
// pipeline, oldest first. Shipped and cancelled orders are excluded; the
// dispatch board polls this for its work queue.
type GetOutstandingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOutstandingOrdersQuery creates a query for outstanding orders.
// This is a parameterless query.
func NewGetOutstandingOrdersQuery() GetOutstandingOrdersQuery {
	return GetOutstandingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOutstandingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOutstandingOrdersQueryIsNotConstructed)
}

// GetOutstandingOrdersQueryResponse summarizes one outstanding order with
// its aggregate picking progress.
type GetOutstandingOrdersQueryResponse struct {
	ID             kernel.UUID
	Kind           string
	Mode           string
	Status         string
	Approved       bool
	TotalAmount    int64
	LineCount      int
	RequestedUnits int
	PickedUnits    int
}
