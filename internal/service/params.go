package service

import (
	"context"
	"time"
)

// LogFilter selects journal entries by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "DAY_STARTED", "ORDER_SERVED", "GAME_OVER", ...
}

// SessionStatus is what the lobby and HUD need besides the snapshot.
type SessionStatus struct {
	Mode       string `json:"mode"`
	Phase      string `json:"phase"`
	Room       string `json:"room,omitempty"`
	Connection string `json:"connection"`
	Muted      bool   `json:"muted"`
}

type chefKey struct{}

// WithChef tags ctx with the signed-in chef's name. Runs started under it are
// ranked under that name.
func WithChef(ctx context.Context, chef string) context.Context {
	return context.WithValue(ctx, chefKey{}, chef)
}

// ChefFromContext returns the name set by WithChef, or "".
func ChefFromContext(ctx context.Context) string {
	chef, _ := ctx.Value(chefKey{}).(string)
	return chef
}
