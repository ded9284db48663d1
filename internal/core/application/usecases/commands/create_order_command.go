package commands

import (
	"errors"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new order for a delivery address.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(1, 101)
//	if err != nil {
//	    return fmt.Errorf("invalid address: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates building and room; both must be positive.
func NewCreateOrderCommand(building int, room int) (CreateOrderCommand, error) {
	address, err := kernel.NewAddress(building, room)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Address() kernel.Address {
	return c.address
}
