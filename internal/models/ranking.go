package models

import "time"

// RankEntry is one finished run on the leaderboard.
type RankEntry struct {
	ID         int       `json:"id"`
	Chef       string    `json:"chef"`
	Score      int       `json:"score"`
	Day        int       `json:"day"`
	Mode       GameMode  `json:"mode"`
	RecordedAt time.Time `json:"recorded_at"`
}
