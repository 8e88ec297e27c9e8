package warehouse

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrInventoryEntryIsNotConstructed is returned when an InventoryEntry
	// bypassed its constructor.
	ErrInventoryEntryIsNotConstructed = errors.New(
		"InventoryEntry must be created via NewInventoryEntry constructor")

	// ErrInsufficientStock indicates that an entry cannot cover the
	// requested quantity from its unreserved balance.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrReservationUnderflow indicates an attempt to release or consume
	// more reserved units than the entry holds.
	ErrReservationUnderflow = errors.New("reserved quantity underflow")
)

// InventoryEntry is the per-(container, product) stock record and the only
// entity allocation and task confirmation may mutate transactionally.
//
// Two balances are tracked: onHand is the physical quantity in the
// container; reserved is the portion of onHand promised to allocated
// orders. Available (onHand - reserved) is what approval and allocation may
// still promise. Invariants: 0 <= reserved <= onHand.
type InventoryEntry struct {
	id          kernel.UUID
	containerID kernel.UUID
	sku         string
	onHand      int
	reserved    int

	guard kernel.ConstructorGuard
}

// NewInventoryEntry creates an entry with nothing reserved.
func NewInventoryEntry(id, containerID kernel.UUID, sku string, onHand int) (*InventoryEntry, error) {
	e := &InventoryEntry{guard: kernel.NewConstructorGuard()}

	if err := errors.Join(
		e.setID(id),
		e.setContainerID(containerID),
		e.setSKU(sku),
		e.setOnHand(onHand),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreInventoryEntry reconstructs an entry from persistence.
func RestoreInventoryEntry(
	id, containerID kernel.UUID,
	sku string,
	onHand, reserved int,
) (*InventoryEntry, error) {
	e, err := NewInventoryEntry(id, containerID, sku, onHand)
	if err != nil {
		return nil, err
	}

	if reserved < 0 || reserved > onHand {
		return nil, errs.NewValueIsOutOfRangeError("reserved", reserved, 0, onHand)
	}

	e.reserved = reserved
	return e, nil
}

// Validate ensures the entry came from a constructor.
func (e *InventoryEntry) Validate() error {
	if e == nil {
		return ErrInventoryEntryIsNotConstructed
	}
	return e.guard.Validate(ErrInventoryEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *InventoryEntry) ID() kernel.UUID {
	return e.id
}

// ContainerID returns the owning container.
func (e *InventoryEntry) ContainerID() kernel.UUID {
	return e.containerID
}

// SKU returns the product reference.
func (e *InventoryEntry) SKU() string {
	return e.sku
}

// OnHand returns the physical quantity in the container.
func (e *InventoryEntry) OnHand() int {
	return e.onHand
}

// Reserved returns the quantity promised to allocated orders.
func (e *InventoryEntry) Reserved() int {
	return e.reserved
}

// Available returns the unreserved quantity that approval and allocation
// may still promise to new orders.
func (e *InventoryEntry) Available() int {
	return e.onHand - e.reserved
}

// Reserve promises qty units to an allocation. Fails with
// ErrInsufficientStock when the unreserved balance is too small; a failed
// reserve leaves the entry untouched.
func (e *InventoryEntry) Reserve(qty int) error {
	if err := positiveQty(qty); err != nil {
		return err
	}

	if qty > e.Available() {
		return fmt.Errorf("%w: %d available of %s in container %s, %d requested",
			ErrInsufficientStock, e.Available(), e.sku, e.containerID, qty)
	}

	e.reserved += qty
	return nil
}

// Release returns qty previously reserved units to the unreserved balance.
// Used by deallocation and by shortage approvals for the unfulfilled delta.
func (e *InventoryEntry) Release(qty int) error {
	if err := positiveQty(qty); err != nil {
		return err
	}

	if qty > e.reserved {
		return fmt.Errorf("%w: %d reserved of %s in container %s, %d released",
			ErrReservationUnderflow, e.reserved, e.sku, e.containerID, qty)
	}

	e.reserved -= qty
	return nil
}

// ConsumeReserved physically removes qty reserved units: both onHand and
// reserved drop. This is the task-confirmation path, where the units being
// picked were promised by allocation.
func (e *InventoryEntry) ConsumeReserved(qty int) error {
	if err := positiveQty(qty); err != nil {
		return err
	}

	if qty > e.reserved {
		return fmt.Errorf("%w: %d reserved of %s in container %s, %d consumed",
			ErrReservationUnderflow, e.reserved, e.sku, e.containerID, qty)
	}

	e.onHand -= qty
	e.reserved -= qty
	return nil
}

// ConsumeAvailable physically removes qty unreserved units. This is the
// swap-and-pick path: an alternate container supplies a task without a
// prior reservation, and stock promised to other orders must not be taken.
func (e *InventoryEntry) ConsumeAvailable(qty int) error {
	if err := positiveQty(qty); err != nil {
		return err
	}

	if qty > e.Available() {
		return fmt.Errorf("%w: %d available of %s in container %s, %d requested",
			ErrInsufficientStock, e.Available(), e.sku, e.containerID, qty)
	}

	e.onHand -= qty
	return nil
}

func positiveQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	return nil
}

func (e *InventoryEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *InventoryEntry) setContainerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.containerID = id
	return nil
}

func (e *InventoryEntry) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	e.sku = sku
	return nil
}

func (e *InventoryEntry) setOnHand(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("onHand is invalid",
			fmt.Errorf("%d is negative", qty))
	}
	e.onHand = qty
	return nil
}
