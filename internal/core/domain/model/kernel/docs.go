// Package kernel contains shared value objects used across the domain model:
// validated identifiers and the constructor guard pattern. Types here carry
// no fulfillment semantics of their own; they exist so aggregates in the
// order, warehouse, picking and approval packages share one identity and
// validation foundation.
package kernel
