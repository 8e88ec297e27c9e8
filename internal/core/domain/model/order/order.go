package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotApproved indicates an operation that requires prior
	// approval, such as allocation, was attempted on an unapproved order.
	ErrOrderNotApproved = errors.New("order is not approved")

	// ErrOrderHasNoLines indicates an order without a single line, which
	// can never be fulfilled.
	ErrOrderHasNoLines = errors.New("order must have at least one line")
)

// Order is the aggregate root of the fulfillment lifecycle. It owns its
// lines and enforces every state transition of the
// approval -> allocation -> picking -> shipment workflow.
//
// Invariants:
//   - kind and fulfillment mode are valid variants, fixed at creation
//   - status transitions follow the Status state machine
//   - every line keeps 0 <= pickedQty <= requestedQty
//   - after Shipped no further mutation is permitted
type Order struct {
	id     kernel.UUID
	kind   Kind
	mode   FulfillmentMode
	status Status

	// approved gates allocation; approval and allocation are distinct
	// steps, so an approved order's status remains Pending.
	approved bool

	lines []*Line

	// totalAmount is pre-computed by the ordering system, minor units.
	totalAmount int64

	createdAt  time.Time
	approvedAt *time.Time
	shippedAt  *time.Time

	guard kernel.ConstructorGuard
}

// NewOrder creates an order in Pending status, unapproved, with nothing
// picked. Lines must be non-empty and individually valid.
func NewOrder(
	id kernel.UUID,
	kind Kind,
	mode FulfillmentMode,
	lines []*Line,
	totalAmount int64,
) (*Order, error) {
	o := &Order{
		status:    StatusPending,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setKind(kind),
		o.setMode(mode),
		o.setLines(lines),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence in an arbitrary
// lifecycle position.
func RestoreOrder(
	id kernel.UUID,
	kind Kind,
	mode FulfillmentMode,
	status Status,
	approved bool,
	lines []*Line,
	totalAmount int64,
	createdAt time.Time,
	approvedAt, shippedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, kind, mode, lines, totalAmount)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.approved = approved
	o.createdAt = createdAt
	o.approvedAt = approvedAt
	o.shippedAt = shippedAt
	return o, nil
}

// Validate ensures the order came from a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Kind returns the order's commercial kind.
func (o *Order) Kind() Kind {
	return o.kind
}

// Mode returns the fulfillment mode driving the pick protocol.
func (o *Order) Mode() FulfillmentMode {
	return o.mode
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// IsApproved reports whether the approval gate passed.
func (o *Order) IsApproved() bool {
	return o.approved
}

// Lines returns the order lines. Callers must not modify the slice.
func (o *Order) Lines() []*Line {
	return o.lines
}

// TotalAmount returns the pre-computed order total in minor units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ApprovedAt returns the approval timestamp, nil while unapproved.
func (o *Order) ApprovedAt() *time.Time {
	return o.approvedAt
}

// ShippedAt returns the shipment timestamp, nil until shipped.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// Line finds a line by id.
func (o *Order) Line(lineID kernel.UUID) (*Line, error) {
	for _, l := range o.lines {
		if l.ID().IsEqual(lineID) {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("line", lineID.String())
}

// SKUs returns the distinct products on the order, in line order.
func (o *Order) SKUs() []string {
	seen := make(map[string]struct{}, len(o.lines))
	skus := make([]string, 0, len(o.lines))
	for _, l := range o.lines {
		if _, ok := seen[l.SKU()]; ok {
			continue
		}
		seen[l.SKU()] = struct{}{}
		skus = append(skus, l.SKU())
	}
	return skus
}

// IsFullyPicked reports whether every line reached its requested quantity.
func (o *Order) IsFullyPicked() bool {
	for _, l := range o.lines {
		if !l.IsFullyPicked() {
			return false
		}
	}
	return true
}

// Approve passes the approval gate. The status stays Pending: approval and
// allocation are distinct steps. Approving an already approved order is a
// no-op so retried calls stay safe.
func (o *Order) Approve(at time.Time) error {
	if o.status != StatusPending {
		return o.status.transitionError("approve")
	}

	if o.approved {
		return nil
	}

	o.approved = true
	t := at.UTC()
	o.approvedAt = &t
	return nil
}

// Unapprove clears the approval. Only legal while the order is still
// Pending; once allocation exists the approval is load-bearing.
func (o *Order) Unapprove() error {
	if o.status != StatusPending {
		return o.status.transitionError("unapprove")
	}

	o.approved = false
	o.approvedAt = nil
	return nil
}

// MarkAllocated records that every line is bound to source containers.
// Requires prior approval.
func (o *Order) MarkAllocated() error {
	if !o.approved {
		return fmt.Errorf("%w: %s", ErrOrderNotApproved, o.id)
	}

	newStatus, err := o.status.Allocate()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReleaseAllocation reverses allocation, returning to Pending. The approved
// flag is left unchanged.
func (o *Order) ReleaseAllocation() error {
	newStatus, err := o.status.ReleaseAllocation()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady records that the picking job was built.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.BuildJob()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartPicking moves the order into Picking. Safe to call on every task
// confirmation; an order already in Picking stays there.
func (o *Order) StartPicking() error {
	newStatus, err := o.status.StartPicking()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Pack records job completion.
func (o *Order) Pack() error {
	newStatus, err := o.status.Pack()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship finalizes the order. Shipped is terminal; lines and tasks must not
// be mutated afterwards.
func (o *Order) Ship(at time.Time) error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	t := at.UTC()
	o.shippedAt = &t
	return nil
}

// Cancel abandons a Pending order. Allocated or later orders cannot be
// cancelled through this operation.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	o.kind = kind
	return nil
}

func (o *Order) setMode(mode FulfillmentMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.mode = mode
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	o.lines = lines
	return nil
}

func (o *Order) setTotalAmount(total int64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount is invalid",
			fmt.Errorf("%d is negative", total))
	}
	o.totalAmount = total
	return nil
}
