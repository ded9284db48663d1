package queries

import (
	"errors"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/guard"
)

var ErrViewOrderQueryIsNotConstructed = errors.New(
	"ViewOrderQuery must be created via NewViewOrderQuery constructor",
)

// ViewOrderQuery lists the pancake descriptions of one active order.
//
// Example:
//
//	query, _ := NewViewOrderQuery(orderID)
//	descriptions, err := handler.Handle(ctx, query)
//	for _, d := range descriptions {
//	    fmt.Println(d)
//	}
type ViewOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewViewOrderQuery(orderID kernel.UUID) (ViewOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ViewOrderQuery{}, err
	}

	return ViewOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ViewOrderQuery) Validate() error {
	return q.guard.Validate(ErrViewOrderQueryIsNotConstructed)
}

func (q ViewOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
