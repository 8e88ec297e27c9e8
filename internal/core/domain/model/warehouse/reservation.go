package warehouse

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrReservationIsNotConstructed is returned when a Reservation bypassed
// its constructor.
var ErrReservationIsNotConstructed = errors.New(
	"Reservation must be created via NewReservation constructor")

// Reservation binds one order line to one source container for a fixed
// quantity. Reservations are disposable artifacts of allocation: they are
// deleted when the promise is consumed by a task confirmation or released
// by deallocation. At most one reservation exists per (line, container)
// pair, so a line split across containers yields one reservation each.
type Reservation struct {
	id          kernel.UUID
	orderID     kernel.UUID
	lineID      kernel.UUID
	containerID kernel.UUID
	sku         string
	quantity    int

	guard kernel.ConstructorGuard
}

// NewReservation creates a reservation for qty units.
func NewReservation(
	id, orderID, lineID, containerID kernel.UUID,
	sku string,
	quantity int,
) (*Reservation, error) {
	r := &Reservation{guard: kernel.NewConstructorGuard()}

	if err := errors.Join(
		r.setIDs(id, orderID, lineID, containerID),
		r.setSKU(sku),
		r.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the reservation came from a constructor.
func (r *Reservation) Validate() error {
	if r == nil {
		return ErrReservationIsNotConstructed
	}
	return r.guard.Validate(ErrReservationIsNotConstructed)
}

// ID returns the reservation's unique identifier.
func (r *Reservation) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order that owns the promise.
func (r *Reservation) OrderID() kernel.UUID {
	return r.orderID
}

// LineID returns the bound order line.
func (r *Reservation) LineID() kernel.UUID {
	return r.lineID
}

// ContainerID returns the source container.
func (r *Reservation) ContainerID() kernel.UUID {
	return r.containerID
}

// SKU returns the reserved product.
func (r *Reservation) SKU() string {
	return r.sku
}

// Quantity returns the reserved unit count.
func (r *Reservation) Quantity() int {
	return r.quantity
}

func (r *Reservation) setIDs(id, orderID, lineID, containerID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(), orderID.Validate(), lineID.Validate(), containerID.Validate(),
	); err != nil {
		return err
	}

	r.id = id
	r.orderID = orderID
	r.lineID = lineID
	r.containerID = containerID
	return nil
}

func (r *Reservation) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	r.sku = sku
	return nil
}

func (r *Reservation) setQuantity(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	r.quantity = qty
	return nil
}
