package pancake

import (
	"strings"

	"pancakelab/internal/pkg/errs"
)

// ErrEmptyComposition is returned when an item would have no ingredients.
var ErrEmptyComposition = errs.NewValueIsRequiredError("pancake must have at least one ingredient")

// Item is anything an order can contain. Orders only rely on this capability,
// so new kinds of items do not touch the order aggregate.
type Item interface {
	// Ingredients returns a copy of the item's ingredients in insertion order.
	Ingredients() []Ingredient
	// Description is the deterministic human-readable rendering of the item.
	// Orders match items for removal by this string.
	Description() string
}

// Pancake is the composed-ingredient Item. It is immutable once built.
type Pancake struct {
	ingredients []Ingredient
	description string
}

var _ Item = (*Pancake)(nil)

// NewPancake builds a pancake from a non-empty list of constructed ingredients.
// The list is copied. Duplicate detection is the Builder's job.
func NewPancake(ingredients []Ingredient) (*Pancake, error) {
	if len(ingredients) == 0 {
		return nil, ErrEmptyComposition
	}

	owned := make([]Ingredient, len(ingredients))
	labels := make([]string, len(ingredients))
	for i, ingredient := range ingredients {
		if err := ingredient.Validate(); err != nil {
			return nil, err
		}
		owned[i] = ingredient
		labels[i] = ingredient.DisplayName()
	}

	return &Pancake{
		ingredients: owned,
		description: "Delicious pancake with " + strings.Join(labels, ", ") + "!",
	}, nil
}

// Ingredients returns a copy, so callers cannot mutate the pancake.
func (p *Pancake) Ingredients() []Ingredient {
	out := make([]Ingredient, len(p.ingredients))
	copy(out, p.ingredients)
	return out
}

// Description returns "Delicious pancake with {ing1}, {ing2}, ...!".
func (p *Pancake) Description() string {
	return p.description
}

func (p *Pancake) String() string {
	return p.description
}
