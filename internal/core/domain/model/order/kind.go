package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Kind is the commercial nature of an order. It is a tagged variant rather
// than a free-form string so that behavior differences between order kinds
// are expressed by matching on the variant, not by string comparison at
// call sites.
type Kind int

const (
	// KindUnknown is the invalid zero value.
	KindUnknown Kind = iota

	// KindSale is a customer sales order.
	KindSale

	// KindTransfer moves stock to another warehouse.
	KindTransfer

	// KindInternal covers internal consumption (samples, office use).
	KindInternal

	// KindGift is a zero-revenue giveaway order.
	KindGift
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:  "Unknown",
		KindSale:     "Sale",
		KindTransfer: "Transfer",
		KindInternal: "Internal",
		KindGift:     "Gift",
	}
}

// KindFromString parses the wire representation of a kind.
func KindFromString(s string) (Kind, error) {
	for k, str := range kindStrings() {
		if k != KindUnknown && str == s {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
		fmt.Errorf("%q is not a valid order kind", s))
}

// Validate rejects KindUnknown and out-of-range values.
func (k Kind) Validate() error {
	switch k {
	case KindSale, KindTransfer, KindInternal, KindGift:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid order kind", k))
	}
}

// CarriesRevenue reports whether monetary totals on this order are
// meaningful. Gift and internal orders ship with zero totals.
func (k Kind) CarriesRevenue() bool {
	switch k {
	case KindSale, KindTransfer:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}
