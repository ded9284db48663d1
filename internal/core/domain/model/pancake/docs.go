// Package pancake models the items an order is made of.
//
// The package includes:
//   - IngredientName: the closed menu of ingredients
//   - Ingredient: an immutable ingredient value, equal by name
//   - Item: the capability every orderable item exposes (ingredients and description)
//   - Pancake: the composed-ingredient Item
//   - Builder: accumulates unique ingredients and builds a Pancake
//
// Key business rules:
//   - A pancake has at least one ingredient
//   - An ingredient appears at most once in a pancake
//   - Ingredient order is preserved and drives the description:
//     "Delicious pancake with dark chocolate, hazelnuts!"
package pancake
