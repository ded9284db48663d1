package orderlog

import (
	"errors"
	"fmt"
	"time"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when a zero-value Event is used.
var ErrEventIsNotConstructed = errs.NewValueIsRequiredError("event must be created via its constructor")

// Event is one immutable audit record.
type Event struct {
	orderID    kernel.UUID
	occurredAt time.Time
	kind       Kind
	details    string
	guard      guard.ConstructorGuard
}

// NewEvent builds an event with an arbitrary detail line. The typed
// constructors below render the standard templates and should be preferred.
func NewEvent(orderID kernel.UUID, occurredAt time.Time, kind Kind, details string) (Event, error) {
	var errDetails error
	if details == "" {
		errDetails = errs.NewValueIsRequiredError("details")
	}
	var errTime error
	if occurredAt.IsZero() {
		errTime = errs.NewValueIsRequiredError("occurredAt")
	}

	if err := errors.Join(orderID.Validate(), kind.Validate(), errDetails, errTime); err != nil {
		return Event{}, err
	}

	return Event{
		orderID:    orderID,
		occurredAt: occurredAt,
		kind:       kind,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewItemAddedEvent records one pancake added to an order.
func NewItemAddedEvent(orderID kernel.UUID, at time.Time, description string) (Event, error) {
	return NewEvent(orderID, at, ItemAdded,
		fmt.Sprintf("Added pancake with description %s", description))
}

// NewItemRemovedEvent records a removal request, with the number actually
// removed and the order size afterwards.
func NewItemRemovedEvent(orderID kernel.UUID, at time.Time, description string, removed, remaining int) (Event, error) {
	return NewEvent(orderID, at, ItemRemoved,
		fmt.Sprintf("Removed %d pancake(s) with description '%s'. Order now contains %d pancake(s).",
			removed, description, remaining))
}

// NewOrderCancelledEvent records a cancellation with the final item count.
func NewOrderCancelledEvent(orderID kernel.UUID, at time.Time, itemCount int) (Event, error) {
	return NewEvent(orderID, at, OrderCancelled,
		fmt.Sprintf("Order canceled with %d pancakes with orderId %s.", itemCount, orderID.String()))
}

// NewOrderDeliveredEvent records a delivery to address.
func NewOrderDeliveredEvent(orderID kernel.UUID, at time.Time, itemCount int, address kernel.Address) (Event, error) {
	return NewEvent(orderID, at, OrderDelivered,
		fmt.Sprintf("Order %s with %d pancake(s) delivered to building %d, room %d.",
			orderID.String(), itemCount, address.Building(), address.Room()))
}

func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

func (e Event) OrderID() kernel.UUID {
	return e.orderID
}

func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}

func (e Event) Kind() Kind {
	return e.kind
}

// Details returns the rendered detail line.
func (e Event) Details() string {
	return e.details
}

func (e Event) String() string {
	return fmt.Sprintf("Event(%s, order %s, %q)", e.kind, e.orderID, e.details)
}
