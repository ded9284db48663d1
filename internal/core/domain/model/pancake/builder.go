package pancake

import (
	"fmt"

	"pancakelab/internal/pkg/errs"
)

// ErrDuplicateIngredient is returned when the same ingredient is added twice to one Builder.
var ErrDuplicateIngredient = errs.NewValueIsInvalidError("duplicate ingredient")

// Builder accumulates unique ingredients in first-added order. A Builder is
// meant to produce one pancake; it is not safe for concurrent use.
//
// Example:
//
//	b := pancake.NewBuilder()
//	if err := b.AddIngredients(dark, hazelnuts); err != nil {
//	    return err
//	}
//	item, err := b.Build() // "Delicious pancake with dark chocolate, hazelnuts!"
type Builder struct {
	ingredients []Ingredient
	seen        map[IngredientName]struct{}
}

func NewBuilder() *Builder {
	return &Builder{
		seen: make(map[IngredientName]struct{}),
	}
}

// AddIngredient appends an ingredient. A zero-value ingredient is rejected with
// ErrIngredientIsNotConstructed, a repeated one with ErrDuplicateIngredient.
// A rejected ingredient leaves the builder unchanged.
func (b *Builder) AddIngredient(ingredient Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}
	if _, ok := b.seen[ingredient.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateIngredient, ingredient.DisplayName())
	}

	b.seen[ingredient.Name()] = struct{}{}
	b.ingredients = append(b.ingredients, ingredient)
	return nil
}

// AddIngredients adds ingredients in order and stops at the first rejection.
func (b *Builder) AddIngredients(ingredients ...Ingredient) error {
	for _, ingredient := range ingredients {
		if err := b.AddIngredient(ingredient); err != nil {
			return err
		}
	}
	return nil
}

// Build snapshots the accumulated ingredients into an immutable Item.
func (b *Builder) Build() (Item, error) {
	if len(b.ingredients) == 0 {
		return nil, ErrEmptyComposition
	}

	p, err := NewPancake(b.ingredients)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("pancake", err)
	}
	return p, nil
}
