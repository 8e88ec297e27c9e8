package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// FulfillmentMode selects the pick-confirmation protocol for an order.
// It is an explicit variant so the task executor can match on it instead of
// consulting boolean flags.
type FulfillmentMode int

const (
	// ModeUnknown is the invalid zero value.
	ModeUnknown FulfillmentMode = iota

	// ModeByItem picks individual units into a consolidation container;
	// operators confirm caller-selected task subsets after scanning each
	// source container.
	ModeByItem

	// ModeByContainer moves whole containers; all pending tasks of a
	// container confirm at once and no per-SKU scan or consolidation
	// container is involved.
	ModeByContainer
)

func modeStrings() map[FulfillmentMode]string {
	return map[FulfillmentMode]string{
		ModeUnknown:     "Unknown",
		ModeByItem:      "ByItem",
		ModeByContainer: "ByContainer",
	}
}

// ModeFromString parses the wire representation of a fulfillment mode.
func ModeFromString(s string) (FulfillmentMode, error) {
	for m, str := range modeStrings() {
		if m != ModeUnknown && str == s {
			return m, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("fulfillmentMode is invalid",
		fmt.Errorf("%q is not a valid fulfillment mode", s))
}

// Validate rejects ModeUnknown and out-of-range values.
func (m FulfillmentMode) Validate() error {
	switch m {
	case ModeByItem, ModeByContainer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("fulfillmentMode is invalid",
			fmt.Errorf("%d is not a valid fulfillment mode", m))
	}
}

// RequiresConsolidation reports whether task confirmation needs a bound
// consolidation container first.
func (m FulfillmentMode) RequiresConsolidation() bool {
	return m == ModeByItem
}

// ConfirmsWholeContainer reports whether confirmation operates on every
// pending task of a container as a unit.
func (m FulfillmentMode) ConfirmsWholeContainer() bool {
	return m == ModeByContainer
}

// String implements fmt.Stringer.
func (m FulfillmentMode) String() string {
	if s, ok := modeStrings()[m]; ok {
		return s
	}
	return "Unknown"
}
