package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It implements a state machine
// with defined transitions so that orders follow the fulfillment workflow
// and illegal jumps are rejected at the domain boundary.
//
// State transitions:
//
//	Pending ──> Allocated ──> Ready ──> Picking ──> Packed ──> Shipped
//	   │  ▲        │
//	   │  └────────┘ (deallocate)
//	   └──> Cancelled
//
// Shipped and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial state; the order may be approved,
	// unapproved, allocated or cancelled from here.
	StatusPending

	// StatusAllocated means every line is bound to source containers
	// through reservations, but no picking job exists yet.
	StatusAllocated

	// StatusReady means a picking job with ordered tasks has been built.
	StatusReady

	// StatusPicking means at least one task of the job was confirmed.
	StatusPicking

	// StatusPacked means the job completed; all units are picked.
	StatusPacked

	// StatusShipped is terminal; no further mutation is permitted.
	StatusShipped

	// StatusCancelled is terminal; only reachable from Pending.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusAllocated: "Allocated",
		StatusReady:     "Ready",
		StatusPicking:   "Picking",
		StatusPacked:    "Packed",
		StatusShipped:   "Shipped",
		StatusCancelled: "Cancelled",
	}
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusAllocated, StatusReady, StatusPicking,
		StatusPacked, StatusShipped, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) transitionError(op string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s, op))
}

// Allocate transitions Pending -> Allocated.
func (s Status) Allocate() (Status, error) {
	if s != StatusPending {
		return 0, s.transitionError("allocate")
	}
	return StatusAllocated, nil
}

// ReleaseAllocation transitions Allocated -> Pending (deallocation).
func (s Status) ReleaseAllocation() (Status, error) {
	if s != StatusAllocated {
		return 0, s.transitionError("deallocate")
	}
	return StatusPending, nil
}

// BuildJob transitions Allocated -> Ready once the picking job is materialized.
func (s Status) BuildJob() (Status, error) {
	if s != StatusAllocated {
		return 0, s.transitionError("build a job for")
	}
	return StatusReady, nil
}

// StartPicking transitions Ready -> Picking. Picking -> Picking is allowed
// so that every task confirmation can assert the order is in picking state.
func (s Status) StartPicking() (Status, error) {
	if s != StatusReady && s != StatusPicking {
		return 0, s.transitionError("start picking")
	}
	return StatusPicking, nil
}

// Pack transitions Picking -> Packed when the job completes.
func (s Status) Pack() (Status, error) {
	if s != StatusPicking {
		return 0, s.transitionError("pack")
	}
	return StatusPacked, nil
}

// Ship transitions Packed -> Shipped, the terminal success state.
func (s Status) Ship() (Status, error) {
	if s != StatusPacked {
		return 0, s.transitionError("ship")
	}
	return StatusShipped, nil
}

// Cancel transitions Pending -> Cancelled. Once allocation exists the order
// must be deallocated first, so stock reservations are never orphaned.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending {
		return 0, s.transitionError("cancel")
	}
	return StatusCancelled, nil
}
