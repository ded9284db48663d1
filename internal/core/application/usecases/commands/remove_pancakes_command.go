package commands

import (
	"errors"
	"fmt"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

var ErrRemovePancakesCommandIsNotConstructed = errors.New(
	"RemovePancakesCommand must be created via NewRemovePancakesCommand constructor",
)

// RemovePancakesCommand asks for up to count pancakes with the given description
// to be removed from an order.
type RemovePancakesCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	description string
	count       int

	guard guard.ConstructorGuard
}

func NewRemovePancakesCommand(orderID kernel.UUID, description string, count int) (RemovePancakesCommand, error) {
	cmd := RemovePancakesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDescription(description),
		cmd.setCount(count),
	); err != nil {
		return RemovePancakesCommand{}, err
	}

	return cmd, nil
}

func (c RemovePancakesCommand) Validate() error {
	return c.guard.Validate(ErrRemovePancakesCommandIsNotConstructed)
}

func (c RemovePancakesCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RemovePancakesCommand) Description() string {
	return c.description
}

func (c RemovePancakesCommand) Count() int {
	return c.count
}

func (c *RemovePancakesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemovePancakesCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *RemovePancakesCommand) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%d is not greater than 0", count))
	}

	c.count = count
	return nil
}
