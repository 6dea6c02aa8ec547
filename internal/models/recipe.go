package models

// IngredientKey is a single-character key from the fixed ingredient alphabet.
type IngredientKey string

// Ingredient carries display metadata for a key.
type Ingredient struct {
	Key  IngredientKey `json:"key"`
	Name string        `json:"name"`
}

// Recipe is an immutable catalog entry.
type Recipe struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Ingredients []IngredientKey `json:"ingredients"` // sequence required, in order
	PrepTimeMs  int             `json:"prepTime"`    // ms of cooking after prep
	Price       int             `json:"price"`
}
