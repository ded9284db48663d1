package commands

import (
	"errors"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/guard"
)

var ErrPrepareOrderCommandIsNotConstructed = errors.New(
	"PrepareOrderCommand must be created via NewPrepareOrderCommand constructor",
)

// PrepareOrderCommand marks a Completed order as prepared by the kitchen.
type PrepareOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPrepareOrderCommand(orderID kernel.UUID) (PrepareOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PrepareOrderCommand{}, err
	}

	return PrepareOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PrepareOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareOrderCommandIsNotConstructed)
}

func (c PrepareOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
