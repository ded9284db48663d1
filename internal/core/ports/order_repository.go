// Package ports defines the contracts between the order core and the adapters
// that store orders, keep the audit trail and publish it outside the process.
package ports

import (
	"context"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
)

// OrderRepository holds the currently active orders. Every method is atomic
// for a single key; ListAll returns a consistent snapshot.
//
// Orders are live aggregates: Find returns the instance that was saved, and
// concurrent callers share it. The aggregate synchronises itself.
type OrderRepository interface {
	// Save inserts or replaces the order under its identifier.
	Save(ctx context.Context, aggregate *order.Order) error

	// Find returns the order with id, or an errs.ObjectNotFoundError.
	Find(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order with id. Deleting an absent order is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// ListAll returns every tracked order in no particular order.
	ListAll(ctx context.Context) ([]*order.Order, error)
}
