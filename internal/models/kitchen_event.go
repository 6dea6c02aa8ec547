package models

import "time"

// Journal event types.
const (
	EventDayStarted     = "DAY_STARTED"
	EventDayCompleted   = "DAY_COMPLETED"
	EventDayAdvanced    = "DAY_ADVANCED"
	EventOrderServed    = "ORDER_SERVED"
	EventOrderExpired   = "ORDER_EXPIRED"
	EventMisserve       = "MISSERVE"
	EventStationCleared = "STATION_CLEARED"
	EventGameOver       = "GAME_OVER"
)

// Game over reasons carried in GAME_OVER metadata.
const (
	ReasonBankruptcy = "bankruptcy"
	ReasonHygiene    = "hygiene"
)

// KitchenEvent is a single journal entry.
type KitchenEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
