package queries

import (
	"errors"

	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

// ListOrdersByStatusQuery selects the identifiers of active orders in one status.
// The kitchen asks for Completed orders, delivery for Prepared ones.
type ListOrdersByStatusQuery struct {
	status order.Status
	guard  guard.ConstructorGuard
}

func NewListOrdersByStatusQuery(status order.Status) (ListOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}

	return ListOrdersByStatusQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// NewListCompletedOrdersQuery lists orders waiting for the kitchen.
func NewListCompletedOrdersQuery() ListOrdersByStatusQuery {
	return ListOrdersByStatusQuery{status: order.Completed, guard: guard.NewConstructorGuard()}
}

// NewListPreparedOrdersQuery lists orders waiting for delivery.
func NewListPreparedOrdersQuery() ListOrdersByStatusQuery {
	return ListOrdersByStatusQuery{status: order.Prepared, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

func (q ListOrdersByStatusQuery) Status() order.Status {
	return q.status
}
