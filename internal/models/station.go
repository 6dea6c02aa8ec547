package models

// StationState is the lifecycle tag of a cooking station.
type StationState string

const (
	StationEmpty    StationState = "empty"
	StationPrepping StationState = "prepping"
	StationCooking  StationState = "cooking"
	StationReady    StationState = "ready"
	StationBurned   StationState = "burned"
)

// Station is one cooking slot.
type Station struct {
	ID              int             `json:"id"`
	State           StationState    `json:"state"`
	CurrentRecipeID *string         `json:"currentRecipeId"`
	PrepSequence    []IngredientKey `json:"prepSequence"`
	CookProgress    float64         `json:"cookProgress"` // 0-100
	ReadyForMs      int             `json:"readyForMs,omitempty"`
}

// RecipeID returns the assigned recipe id or "" when none.
func (s Station) RecipeID() string {
	if s.CurrentRecipeID == nil {
		return ""
	}
	return *s.CurrentRecipeID
}

// Clear resets the station to empty.
func (s *Station) Clear() {
	s.State = StationEmpty
	s.CurrentRecipeID = nil
	s.PrepSequence = []IngredientKey{}
	s.CookProgress = 0
	s.ReadyForMs = 0
}
