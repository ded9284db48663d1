// Package orderrepo keeps active orders in process memory.
package orderrepo

import (
	"context"
	"sync"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/ports"
	"pancakelab/internal/pkg/errs"

	"github.com/google/uuid"
)

// MemoryOrderRepository implements ports.OrderRepository with a map guarded by
// a read-write lock. It stores the aggregates themselves, not copies.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*order.Order
}

var _ ports.OrderRepository = (*MemoryOrderRepository)(nil)

// NewMemoryOrderRepository creates an empty repository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[uuid.UUID]*order.Order),
	}
}

// Save stores the order under its identifier, replacing any previous entry.
func (r *MemoryOrderRepository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	r.orders[aggregate.ID().Bytes()] = aggregate
	r.mu.Unlock()

	return nil
}

// Find retrieves an order by ID.
func (r *MemoryOrderRepository) Find(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	o, ok := r.orders[id.Bytes()]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return o, nil
}

// Delete removes an order by ID.
func (r *MemoryOrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.orders, id.Bytes())
	r.mu.Unlock()

	return nil
}

// ListAll returns a snapshot of the tracked orders.
func (r *MemoryOrderRepository) ListAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

// Len returns the number of tracked orders.
func (r *MemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}
