package commands

import (
	"errors"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand hands a Prepared order to the customer.
//
// Example:
//
//	cmd, err := NewDeliverOrderCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	fmt.Println(result.Pancakes) // receipt captured before delivery
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeliverOrderCommand(orderID kernel.UUID) (DeliverOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeliverOrderCommand{}, err
	}

	return DeliverOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
