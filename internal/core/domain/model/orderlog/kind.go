package orderlog

import (
	"fmt"

	"pancakelab/internal/pkg/errs"
)

// Kind classifies an Event.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	UnknownKind Kind = iota
	ItemAdded
	ItemRemoved
	OrderCancelled
	OrderDelivered
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:    "unknown",
		ItemAdded:      "item-added",
		ItemRemoved:    "item-removed",
		OrderCancelled: "order-cancelled",
		OrderDelivered: "order-delivered",
	}
}

// Kinds lists every valid kind.
func Kinds() []Kind {
	return []Kind{ItemAdded, ItemRemoved, OrderCancelled, OrderDelivered}
}

// ParseKind maps the wire name ("item-added", ...) back to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known event kind", s))
}

func (k Kind) Validate() error {
	if k < ItemAdded || k > OrderDelivered {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid event kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}
