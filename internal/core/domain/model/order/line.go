package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line bypassed its constructor.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

	// ErrPickExceedsRequested indicates an attempt to record more picked
	// units than the line requested.
	ErrPickExceedsRequested = errors.New("picked quantity cannot exceed requested quantity")
)

// Line is one product/quantity entry within an order. It tracks the picked
// quantity against the requested quantity; the invariant
// 0 <= pickedQty <= requestedQty holds at all times, and pickedQty only
// grows through AddPicked as tasks confirm.
type Line struct {
	id           kernel.UUID
	sku          string
	requestedQty int
	pickedQty    int

	// unitPrice is in minor currency units, pre-computed by the ordering
	// system; the engine never does pricing math.
	unitPrice int64

	// sourceContainerID binds the line to one container for
	// container-mode orders; nil in item mode.
	sourceContainerID *kernel.UUID

	guard kernel.ConstructorGuard
}

// NewLine creates a line with nothing picked yet.
func NewLine(id kernel.UUID, sku string, requestedQty int, unitPrice int64) (*Line, error) {
	line := &Line{guard: kernel.NewConstructorGuard()}

	if err := errors.Join(
		line.setID(id),
		line.setSKU(sku),
		line.setRequestedQty(requestedQty),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a line from persistence, including picking
// progress and an optional container binding.
func RestoreLine(
	id kernel.UUID,
	sku string,
	requestedQty, pickedQty int,
	unitPrice int64,
	sourceContainerID *kernel.UUID,
) (*Line, error) {
	line, err := NewLine(id, sku, requestedQty, unitPrice)
	if err != nil {
		return nil, err
	}

	if pickedQty < 0 || pickedQty > requestedQty {
		return nil, errs.NewValueIsOutOfRangeError("pickedQty", pickedQty, 0, requestedQty)
	}
	line.pickedQty = pickedQty

	if sourceContainerID != nil {
		if err = sourceContainerID.Validate(); err != nil {
			return nil, err
		}
		line.sourceContainerID = sourceContainerID
	}

	return line, nil
}

// Validate ensures the line came from a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// SKU returns the product reference.
func (l *Line) SKU() string {
	return l.sku
}

// RequestedQty returns the ordered quantity.
func (l *Line) RequestedQty() int {
	return l.requestedQty
}

// PickedQty returns the quantity confirmed so far.
func (l *Line) PickedQty() int {
	return l.pickedQty
}

// UnitPrice returns the pre-computed price in minor units.
func (l *Line) UnitPrice() int64 {
	return l.unitPrice
}

// SourceContainer returns the bound container for container-mode orders,
// nil otherwise.
func (l *Line) SourceContainer() *kernel.UUID {
	return l.sourceContainerID
}

// Remaining returns the quantity still to pick.
func (l *Line) Remaining() int {
	return l.requestedQty - l.pickedQty
}

// IsFullyPicked reports whether pickedQty reached requestedQty.
func (l *Line) IsFullyPicked() bool {
	return l.pickedQty == l.requestedQty
}

// AddPicked records qty newly picked units. The quantity must be positive
// and must not push pickedQty past requestedQty.
func (l *Line) AddPicked(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	if l.pickedQty+qty > l.requestedQty {
		return fmt.Errorf("%w: %d + %d exceeds %d for line %s",
			ErrPickExceedsRequested, l.pickedQty, qty, l.requestedQty, l.id)
	}

	l.pickedQty += qty
	return nil
}

// BindSourceContainer attaches the line to one physical container. Used by
// allocation for container-mode orders, where the whole container moves.
func (l *Line) BindSourceContainer(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	l.sourceContainerID = &containerID
	return nil
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	l.sku = sku
	return nil
}

func (l *Line) setRequestedQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requestedQty is invalid",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	l.requestedQty = qty
	return nil
}

func (l *Line) setUnitPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%d is negative", price))
	}
	l.unitPrice = price
	return nil
}
