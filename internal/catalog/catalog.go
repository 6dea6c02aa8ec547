// Package catalog holds the fixed recipe and ingredient tables.
package catalog

import (
	"errors"

	"pixel_bistro/internal/models"
)

// ErrUnknownRecipe is returned when a recipe id does not resolve.
var ErrUnknownRecipe = errors.New("unknown recipe")

// Ingredient keys.
const (
	Bread   models.IngredientKey = "P"
	Meat    models.IngredientKey = "C"
	Cheese  models.IngredientKey = "Q"
	Lettuce models.IngredientKey = "A"
	Tomato  models.IngredientKey = "T"
	Pasta   models.IngredientKey = "M"
	Egg     models.IngredientKey = "O"
)

var ingredients = []models.Ingredient{
	{Key: Bread, Name: "Pão"},
	{Key: Meat, Name: "Carne"},
	{Key: Cheese, Name: "Queijo"},
	{Key: Lettuce, Name: "Alface"},
	{Key: Tomato, Name: "Tomate"},
	{Key: Pasta, Name: "Massa"},
	{Key: Egg, Name: "Ovo"},
}

var recipes = []models.Recipe{
	{ID: "hamburguer", Name: "X-Burguer Clássico", Ingredients: []models.IngredientKey{Bread, Meat, Cheese, Bread}, PrepTimeMs: 3000, Price: 25},
	{ID: "salada", Name: "Salada Fresca", Ingredients: []models.IngredientKey{Lettuce, Tomato, Cheese}, PrepTimeMs: 1000, Price: 15},
	{ID: "carbonara", Name: "Carbonara", Ingredients: []models.IngredientKey{Pasta, Egg, Meat, Cheese}, PrepTimeMs: 5000, Price: 40},
	{ID: "bauru", Name: "Bauru", Ingredients: []models.IngredientKey{Bread, Cheese, Tomato, Bread}, PrepTimeMs: 2500, Price: 20},
}

// Catalog is a read-only lookup over recipes and ingredients.
type Catalog struct {
	recipes []models.Recipe
	byID    map[string]int
}

// Default returns the built-in menu.
func Default() *Catalog {
	return New(recipes)
}

// New builds a catalog over the given recipes. The slice is copied.
func New(rs []models.Recipe) *Catalog {
	c := &Catalog{
		recipes: make([]models.Recipe, len(rs)),
		byID:    make(map[string]int, len(rs)),
	}
	for i, r := range rs {
		r.Ingredients = append([]models.IngredientKey(nil), r.Ingredients...)
		c.recipes[i] = r
		c.byID[r.ID] = i
	}
	return c
}

// Recipe looks a recipe up by id.
func (c *Catalog) Recipe(id string) (models.Recipe, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Recipe{}, ErrUnknownRecipe
	}
	return c.recipes[i], nil
}

// Recipes returns the menu in catalog order.
func (c *Catalog) Recipes() []models.Recipe {
	out := make([]models.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Len is the number of recipes on the menu.
func (c *Catalog) Len() int { return len(c.recipes) }

// At returns the i-th recipe in catalog order.
func (c *Catalog) At(i int) models.Recipe { return c.recipes[i] }

// Ingredients returns the fixed ingredient alphabet.
func Ingredients() []models.Ingredient {
	out := make([]models.Ingredient, len(ingredients))
	copy(out, ingredients)
	return out
}

// IsIngredient reports whether k belongs to the alphabet.
func IsIngredient(k models.IngredientKey) bool {
	for _, in := range ingredients {
		if in.Key == k {
			return true
		}
	}
	return false
}
