package engine

import "pixel_bistro/internal/models"

// GenerateOrder creates a waiting order for a uniformly random recipe.
func (e *Engine) GenerateOrder() models.Order {
	r := e.menu.At(e.rng.Intn(e.menu.Len()))
	return models.Order{
		ID:        e.newID(),
		RecipeID:  r.ID,
		CreatedAt: e.clock.Now().UnixMilli(),
		Patience:  fullPatience,
		Status:    models.OrderWaiting,
	}
}

// maybeSpawnOrder rolls the per-tick spawn chance unless the queue is full.
func (e *Engine) maybeSpawnOrder() {
	if len(e.orders) >= e.cfg.MaxActiveOrders {
		return
	}
	if e.rng.Float64() >= e.cfg.OrderSpawnRate {
		return
	}
	e.orders = append(e.orders, e.GenerateOrder())
	e.cues.Play(models.CuePop)
}
