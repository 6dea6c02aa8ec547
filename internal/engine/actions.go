package engine

import (
	"fmt"

	"pixel_bistro/internal/models"
)

// Apply validates a player action against the current state and applies it.
// Actions that do not fit the phase or station state are silent no-ops.
func (e *Engine) Apply(a models.Action) []models.KitchenEvent {
	switch a.Type {
	case models.ActionStartDay:
		return e.startDay()
	case models.ActionNextDayConfirm:
		return e.nextDay()
	}

	if e.state.Phase != models.PhaseService || !validSeat(a.Seat) {
		return nil
	}

	switch a.Type {
	case models.ActionClickStation:
		return e.clickStation(a.Seat, a.StationID)
	case models.ActionSelectRecipe:
		e.selectRecipe(a.Seat, a.RecipeID)
	case models.ActionKeyPress:
		e.keyPress(a.Seat, a.Key)
	case models.ActionServe:
		return e.serve(a.StationID)
	case models.ActionClean:
		e.state.Hygiene = clampHygiene(e.state.Hygiene+cleanBonus, e.cfg.MaxHygiene)
		e.cues.Play(models.CuePop)
	}
	return nil
}

func (e *Engine) startDay() []models.KitchenEvent {
	if e.state.Phase != models.PhasePreDay {
		return nil
	}
	e.state.Phase = models.PhaseService
	e.state.TimeRemaining = e.cfg.DayDuration
	e.clearKitchen()

	e.cues.Play(models.CuePop)
	e.cues.Play(models.CueServiceStart)
	return []models.KitchenEvent{newEvent(models.EventDayStarted,
		fmt.Sprintf("Day %d service started", e.state.Day),
		map[string]any{"day": e.state.Day, "target": e.state.DailyTarget})}
}

func (e *Engine) nextDay() []models.KitchenEvent {
	if e.state.Phase != models.PhaseEODReport {
		return nil
	}
	prev := e.state.Day
	e.state.DailyTarget = NextTarget(e.cfg, e.state.DailyTarget, prev)
	e.state.Day = prev + 1
	e.state.TimeRemaining = e.cfg.DayDuration
	e.state.Phase = models.PhasePreDay
	e.state.Hygiene = clampHygiene(e.state.Hygiene+nextDayHygiene, e.cfg.MaxHygiene)

	e.cues.Play(models.CuePop)
	return []models.KitchenEvent{newEvent(models.EventDayAdvanced,
		fmt.Sprintf("Advanced to day %d", e.state.Day),
		map[string]any{"day": e.state.Day, "target": e.state.DailyTarget})}
}

func (e *Engine) clickStation(seat models.Seat, id int) []models.KitchenEvent {
	if id < 0 || id >= len(e.stations) {
		return nil
	}
	st := &e.stations[id]
	switch st.State {
	case models.StationBurned:
		st.Clear()
		e.state.Hygiene = clampHygiene(e.state.Hygiene-burnedClearPenalty, e.cfg.MaxHygiene)
		e.cues.Play(models.CueTrash)
		return []models.KitchenEvent{newEvent(models.EventStationCleared,
			fmt.Sprintf("Station %d cleared of burned food", id),
			map[string]any{"station": id, "hygiene": e.state.Hygiene})}
	case models.StationEmpty, models.StationPrepping, models.StationCooking, models.StationReady:
		e.ToggleSelection(seat, id)
		e.cues.Play(models.CuePop)
	}
	return nil
}

func (e *Engine) selectRecipe(seat models.Seat, recipeID string) {
	id, ok := e.Selected(seat)
	if !ok {
		return
	}
	st := &e.stations[id]
	if st.State != models.StationEmpty {
		return
	}
	if _, err := e.menu.Recipe(recipeID); err != nil {
		return
	}
	st.State = models.StationPrepping
	st.CurrentRecipeID = &recipeID
	st.PrepSequence = []models.IngredientKey{}
	e.cues.Play(models.CueKeyType)
}

func (e *Engine) keyPress(seat models.Seat, key models.IngredientKey) {
	id, ok := e.Selected(seat)
	if !ok {
		return
	}
	st := &e.stations[id]
	if st.State != models.StationPrepping || st.CurrentRecipeID == nil {
		return
	}
	r, err := e.menu.Recipe(*st.CurrentRecipeID)
	if err != nil {
		return
	}

	next := len(st.PrepSequence)
	if next >= len(r.Ingredients) || r.Ingredients[next] != key {
		e.cues.Play(models.CueKeyReject)
		return
	}

	e.cues.Play(models.CueKeyType)
	st.PrepSequence = append(st.PrepSequence, key)
	if len(st.PrepSequence) == len(r.Ingredients) {
		st.State = models.StationCooking
		st.CookProgress = 0
		e.cues.Play(models.CueCookStart)
	}
}

func (e *Engine) serve(stationID int) []models.KitchenEvent {
	if stationID < 0 || stationID >= len(e.stations) {
		return nil
	}
	st := &e.stations[stationID]
	if st.State != models.StationReady || st.CurrentRecipeID == nil {
		return nil
	}
	recipeID := *st.CurrentRecipeID

	idx := -1
	for i, o := range e.orders {
		if o.RecipeID == recipeID {
			idx = i
			break
		}
	}

	if idx < 0 {
		e.state.Money = floorInt(e.state.Money - misservePenalty)
		e.state.Hygiene = clampHygiene(e.state.Hygiene-misservePenalty, e.cfg.MaxHygiene)
		st.Clear()
		e.cues.Play(models.CueKeyReject)
		return []models.KitchenEvent{newEvent(models.EventMisserve,
			fmt.Sprintf("Served %s with no matching order", recipeID),
			map[string]any{"station": stationID, "recipe": recipeID})}
	}

	r, err := e.menu.Recipe(recipeID)
	if err != nil {
		return nil
	}
	order := e.orders[idx]
	tip := CalculateTip(order.Patience, r.Price)
	e.state.Money += r.Price + tip
	e.state.Score += serveScore + tip
	e.orders = append(e.orders[:idx], e.orders[idx+1:]...)
	st.Clear()
	e.cues.Play(models.CueCash)

	order.Status = models.OrderServed
	return []models.KitchenEvent{newEvent(models.EventOrderServed,
		fmt.Sprintf("Served %s", recipeID),
		map[string]any{"order": order.ID, "recipe": recipeID, "price": r.Price, "tip": tip, "patience": order.Patience})}
}

func newEvent(typ, desc string, meta map[string]any) models.KitchenEvent {
	return models.KitchenEvent{Type: typ, Description: desc, Metadata: meta}
}
