package order

import (
	"errors"
	"sync"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when completing an order without pancakes.
	ErrOrderHasNoItems = errs.NewStateIsInvalidErrorWithCause(
		"items",
		errors.New("cannot complete an order with no pancakes"),
	)

	// ErrItemIsRequired is returned when a nil item is added.
	ErrItemIsRequired = errs.NewValueIsRequiredError("item")
)

// Order represents one customer purchase. It is the aggregate root that owns
// its pancakes and drives the lifecycle from New to Delivered or Cancelled.
//
// Order follows these invariants:
//   - Identifier and address never change after construction
//   - Items change only in New status
//   - Completed orders hold at least one item
//   - Status transitions follow the Status state machine
//
// All methods are safe for concurrent use. Every mutator performs its check and
// its change under one exclusive lock covering both status and items; readers
// take the same lock in shared mode and never observe a torn state.
type Order struct {
	// id and address are immutable and read without locking
	id      kernel.UUID
	address kernel.Address

	mu     sync.RWMutex
	status Status
	items  []pancake.Item

	isConstructed bool
}

// NewOrder creates an order in New status with no items and a fresh identifier.
//
// Example:
//
//	addr, _ := kernel.NewAddress(1, 101)
//	o, err := order.NewOrder(addr)
//	if err != nil {
//	    // address was not constructed
//	}
func NewOrder(address kernel.Address) (*Order, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            kernel.NewUUID(),
		address:       address,
		status:        New,
		items:         make([]pancake.Item, 0),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Address returns the delivery address.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Status returns the current status.
func (o *Order) Status() Status {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.status
}

// Items returns a point-in-time copy of the items in insertion order.
func (o *Order) Items() []pancake.Item {
	o.mu.RLock()
	defer o.mu.RUnlock()

	items := make([]pancake.Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemCount returns the number of items.
func (o *Order) ItemCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.items)
}

// PancakeDescriptions returns the item descriptions in insertion order.
func (o *Order) PancakeDescriptions() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	descriptions := make([]string, len(o.items))
	for i, item := range o.items {
		descriptions[i] = item.Description()
	}
	return descriptions
}

// AddItem appends item. Duplicates are allowed. Fails unless the order is New.
func (o *Order) AddItem(item pancake.Item) error {
	if item == nil {
		return ErrItemIsRequired
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.status.ValidateCanModifyItems("add"); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItems removes up to count items whose description equals description,
// scanning from the oldest. Removing fewer than count, including none, is not
// an error. It returns how many items were removed and how many remain, both
// observed under the same lock. Fails unless the order is New.
func (o *Order) RemoveItems(description string, count int) (removed int, remaining int, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err = o.status.ValidateCanModifyItems("remove"); err != nil {
		return 0, len(o.items), err
	}

	kept := o.items[:0]
	for _, item := range o.items {
		if removed < count && item.Description() == description {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	clear(o.items[len(kept):])
	o.items = kept

	return removed, len(o.items), nil
}

// Complete moves the order from New to Completed. The order must hold at least one item.
func (o *Order) Complete() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}

	o.status = newStatus
	return nil
}

// Prepare moves the order from Completed to Prepared.
func (o *Order) Prepare() error {
	return o.transition(Status.Prepare)
}

// Deliver moves the order from Prepared to Delivered.
func (o *Order) Deliver() error {
	return o.transition(Status.Deliver)
}

// Cancel moves the order from New to Cancelled.
func (o *Order) Cancel() error {
	return o.transition(Status.Cancel)
}

func (o *Order) transition(next func(Status) (Status, error)) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	newStatus, err := next(o.status)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
