package models

import "time"

// SaveData is the persisted subset of GameState.
type SaveData struct {
	Money       int       `json:"money"`
	Hygiene     float64   `json:"hygiene"`
	Score       int       `json:"score"`
	Day         int       `json:"day"`
	DailyTarget int       `json:"dailyTarget"`
	GameMode    GameMode  `json:"gameMode"` // always SOLO
	SavedAt     time.Time `json:"savedAt"`
}
