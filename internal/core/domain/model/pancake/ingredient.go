package pancake

import (
	"fmt"

	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

// ErrIngredientIsNotConstructed is returned for a zero-value Ingredient, which
// stands for an absent ingredient.
var ErrIngredientIsNotConstructed = errs.NewValueIsRequiredError("ingredient must be created via NewIngredient constructor")

// IngredientName enumerates the ingredients on the menu.
type IngredientName int

const (
	// UnknownIngredient is the zero value and never a valid ingredient.
	UnknownIngredient IngredientName = iota
	DarkChocolate
	MilkChocolate
	WhippedCream
	Hazelnuts
)

type ingredientNames struct {
	key     string
	display string
}

func getIngredientNames() map[IngredientName]ingredientNames {
	//nolint:exhaustive // UnknownIngredient is intentionally excluded as it's invalid
	return map[IngredientName]ingredientNames{
		DarkChocolate: {key: "dark-chocolate", display: "dark chocolate"},
		MilkChocolate: {key: "milk-chocolate", display: "milk chocolate"},
		WhippedCream:  {key: "whipped-cream", display: "whipped cream"},
		Hazelnuts:     {key: "hazelnuts", display: "hazelnuts"},
	}
}

// IngredientNames lists every valid name in menu order.
func IngredientNames() []IngredientName {
	return []IngredientName{DarkChocolate, MilkChocolate, WhippedCream, Hazelnuts}
}

// ParseIngredientName maps a key such as "dark-chocolate" to its name.
func ParseIngredientName(key string) (IngredientName, error) {
	for name, n := range getIngredientNames() {
		if n.key == key {
			return name, nil
		}
	}
	return UnknownIngredient, errs.NewValueIsInvalidErrorWithCause(
		"ingredient",
		fmt.Errorf("%q is not on the menu", key),
	)
}

// Validate rejects UnknownIngredient and values outside the menu.
func (n IngredientName) Validate() error {
	if _, ok := getIngredientNames()[n]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("ingredient name", fmt.Errorf("%d is not a valid ingredient", n))
	}
	return nil
}

// Key returns the identifier used at the API boundary, e.g. "whipped-cream".
func (n IngredientName) Key() string {
	if names, ok := getIngredientNames()[n]; ok {
		return names.key
	}
	return "unknown"
}

// DisplayName returns the label used in pancake descriptions, e.g. "whipped cream".
func (n IngredientName) DisplayName() string {
	if names, ok := getIngredientNames()[n]; ok {
		return names.display
	}
	return "unknown"
}

func (n IngredientName) String() string {
	return n.Key()
}

// Ingredient is a single constituent of a pancake. Two ingredients are equal
// when their names are equal.
type Ingredient struct {
	name  IngredientName
	guard guard.ConstructorGuard
}

// NewIngredient returns the ingredient for a menu name.
func NewIngredient(name IngredientName) (Ingredient, error) {
	if err := name.Validate(); err != nil {
		return Ingredient{}, err
	}
	return Ingredient{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrIngredientIsNotConstructed for a zero-value Ingredient.
func (i Ingredient) Validate() error {
	return i.guard.Validate(ErrIngredientIsNotConstructed)
}

// Name returns the ingredient's identity.
func (i Ingredient) Name() IngredientName {
	return i.name
}

// DisplayName returns the human-readable label.
func (i Ingredient) DisplayName() string {
	return i.name.DisplayName()
}

// IsEqual compares ingredients by name.
func (i Ingredient) IsEqual(other Ingredient) bool {
	return i.name == other.name
}

func (i Ingredient) String() string {
	return i.name.DisplayName()
}
