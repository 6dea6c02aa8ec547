package models

// Phase is the day-level stage of the game.
type Phase string

const (
	PhaseMenu      Phase = "MENU"
	PhasePreDay    Phase = "PRE_DAY"
	PhaseService   Phase = "SERVICE"
	PhaseEODReport Phase = "EOD_REPORT"
	PhaseGameOver  Phase = "GAME_OVER"
)

// GameMode is the role of the local process in a session.
type GameMode string

const (
	ModeSolo   GameMode = "SOLO"
	ModeHost   GameMode = "HOST"
	ModeClient GameMode = "CLIENT"
)

// Seat identifies which of the two cooperating players issued an action.
type Seat int

const (
	SeatHost Seat = iota
	SeatGuest

	SeatCount = 2
)

// GameState holds the economy, clock and phase of the restaurant.
type GameState struct {
	Money         int      `json:"money"`
	Hygiene       float64  `json:"hygiene"` // 0-100
	Score         int      `json:"score"`
	Day           int      `json:"day"`
	DailyTarget   int      `json:"dailyTarget"`
	TimeRemaining int      `json:"timeRemaining"` // seconds
	Phase         Phase    `json:"phase"`
	GameMode      GameMode `json:"gameMode"`
}

// Snapshot is a full copy of the replicated kitchen.
type Snapshot struct {
	GameState        GameState       `json:"gameState"`
	Stations         []Station       `json:"stations"`
	Orders           []Order         `json:"orders"`
	ActiveStationIDs [SeatCount]*int `json:"activeStationIds"`
}
