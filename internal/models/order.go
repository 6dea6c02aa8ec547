package models

// OrderStatus is the lifecycle tag of a customer order.
type OrderStatus string

const (
	OrderWaiting OrderStatus = "waiting"
	OrderServed  OrderStatus = "served"
	OrderExpired OrderStatus = "expired"
)

// Order is a customer ticket referencing a catalog recipe.
type Order struct {
	ID        string      `json:"id"`
	RecipeID  string      `json:"recipeId"`
	CreatedAt int64       `json:"createdAt"` // unix ms
	Patience  float64     `json:"patience"`  // 0-100
	Status    OrderStatus `json:"status"`
}
