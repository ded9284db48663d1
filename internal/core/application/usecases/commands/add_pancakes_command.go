package commands

import (
	"errors"
	"fmt"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

var ErrAddPancakesCommandIsNotConstructed = errors.New(
	"AddPancakesCommand must be created via NewAddPancakesCommand constructor",
)

// AddPancakesCommand asks for count identical custom pancakes to be added to an order.
// The ingredient list is checked here with a throwaway builder, so duplicates and
// empty lists are rejected before the order is touched.
//
// Example:
//
//	cmd, err := NewAddPancakesCommand(orderID,
//	    []pancake.IngredientName{pancake.MilkChocolate, pancake.Hazelnuts}, 3)
type AddPancakesCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	ingredients []pancake.Ingredient
	count       int

	guard guard.ConstructorGuard
}

func NewAddPancakesCommand(
	orderID kernel.UUID,
	ingredients []pancake.IngredientName,
	count int,
) (AddPancakesCommand, error) {
	cmd := AddPancakesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setIngredients(ingredients),
		cmd.setCount(count),
	); err != nil {
		return AddPancakesCommand{}, err
	}

	return cmd, nil
}

func (c AddPancakesCommand) Validate() error {
	return c.guard.Validate(ErrAddPancakesCommandIsNotConstructed)
}

func (c AddPancakesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Ingredients returns a copy of the ingredients in the order they were given.
func (c AddPancakesCommand) Ingredients() []pancake.Ingredient {
	out := make([]pancake.Ingredient, len(c.ingredients))
	copy(out, c.ingredients)
	return out
}

func (c AddPancakesCommand) Count() int {
	return c.count
}

// BuildPancake builds one fresh pancake from the command's ingredients.
func (c AddPancakesCommand) BuildPancake() (pancake.Item, error) {
	b := pancake.NewBuilder()
	if err := b.AddIngredients(c.ingredients...); err != nil {
		return nil, err
	}
	return b.Build()
}

func (c *AddPancakesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddPancakesCommand) setIngredients(names []pancake.IngredientName) error {
	ingredients := make([]pancake.Ingredient, 0, len(names))
	for _, name := range names {
		ingredient, err := pancake.NewIngredient(name)
		if err != nil {
			return err
		}
		ingredients = append(ingredients, ingredient)
	}

	c.ingredients = ingredients
	if _, err := c.BuildPancake(); err != nil {
		c.ingredients = nil
		return err
	}

	return nil
}

func (c *AddPancakesCommand) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%d is not greater than 0", count))
	}

	c.count = count
	return nil
}
