package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
)

// StockRepository defines the persistence contract for containers,
// inventory entries and reservations. Entries are the unit of transactional
// mutation; the guarded update in UpdateEntry is what serializes concurrent
// pickers on the same shelf.
type StockRepository interface {
	// GetContainer retrieves a container by its unique identifier.
	GetContainer(ctx context.Context, id kernel.UUID) (*warehouse.Container, error)

	// GetContainerByCode retrieves a container by its scannable code.
	// The lookup is case-insensitive.
	GetContainerByCode(ctx context.Context, code string) (*warehouse.Container, error)

	// AddContainer persists a new container.
	AddContainer(ctx context.Context, container *warehouse.Container) error

	// GetEntry retrieves the inventory entry for one product in one
	// container. Returns errs.ObjectNotFoundError when the container has
	// never held that product.
	GetEntry(ctx context.Context, containerID kernel.UUID, sku string) (*warehouse.InventoryEntry, error)

	// GetEntriesBySKUs retrieves every entry holding any of the given
	// products, across all usable containers. The allocation strategies
	// work over this set.
	GetEntriesBySKUs(ctx context.Context, skus []string) ([]*warehouse.InventoryEntry, error)

	// AddEntry persists a new inventory entry.
	AddEntry(ctx context.Context, entry *warehouse.InventoryEntry) error

	// UpdateEntry persists changed balances with a guard on on_hand: the
	// UPDATE carries "on_hand >= consumed" in its predicate and the call
	// fails with warehouse.ErrInsufficientStock when no row matches. Two
	// transactions decrementing the same entry serialize on the row lock,
	// and the loser re-reads a balance the winner already reduced.
	UpdateEntry(ctx context.Context, entry *warehouse.InventoryEntry) error

	// AddReservations persists the reservations produced by an allocation.
	AddReservations(ctx context.Context, reservations []*warehouse.Reservation) error

	// GetReservationsByOrder retrieves all live reservations for an order.
	GetReservationsByOrder(ctx context.Context, orderID kernel.UUID) ([]*warehouse.Reservation, error)

	// GetReservation retrieves the reservation binding one line to one
	// container.
	GetReservation(ctx context.Context, lineID, containerID kernel.UUID) (*warehouse.Reservation, error)

	// DeleteReservation removes a single consumed or released reservation.
	DeleteReservation(ctx context.Context, id kernel.UUID) error

	// DeleteReservationsByOrder removes every reservation of an order.
	// Deallocation uses this after restoring the reserved balances.
	DeleteReservationsByOrder(ctx context.Context, orderID kernel.UUID) error
}
