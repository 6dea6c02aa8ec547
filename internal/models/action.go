package models

// ActionType names a discrete player action.
type ActionType string

const (
	ActionClickStation   ActionType = "CLICK_STATION"
	ActionSelectRecipe   ActionType = "SELECT_RECIPE"
	ActionKeyPress       ActionType = "KEY_PRESS"
	ActionServe          ActionType = "SERVE"
	ActionClean          ActionType = "CLEAN"
	ActionStartDay       ActionType = "START_DAY"
	ActionNextDayConfirm ActionType = "NEXT_DAY_CONFIRM"
)

// Action is a single player input. Seat is assigned by the receiving side.
type Action struct {
	Type      ActionType    `json:"type"`
	StationID int           `json:"stationId,omitempty"`
	RecipeID  string        `json:"recipeId,omitempty"`
	Key       IngredientKey `json:"key,omitempty"`
	Seat      Seat          `json:"-"`
}

// Valid reports whether t is a known action type.
func (t ActionType) Valid() bool {
	switch t {
	case ActionClickStation, ActionSelectRecipe, ActionKeyPress, ActionServe,
		ActionClean, ActionStartDay, ActionNextDayConfirm:
		return true
	}
	return false
}
