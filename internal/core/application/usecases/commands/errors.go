package commands

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
)

// ShortLine describes one order line the approval check found short.
type ShortLine struct {
	Product   string `json:"product"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
	Missing   int    `json:"missing"`
}

// InsufficientStockError is returned by order approval when at least one
// line requests more than is currently available. It carries the exact
// shortfall per line so the caller can adjust the order.
type InsufficientStockError struct {
	OrderID kernel.UUID
	Missing []ShortLine
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		parts = append(parts, fmt.Sprintf("%s missing %d", m.Product, m.Missing))
	}
	return fmt.Sprintf("insufficient stock for order %s: %s", e.OrderID, strings.Join(parts, "; "))
}
