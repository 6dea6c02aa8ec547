package engine

import (
	"fmt"
	"time"

	"pixel_bistro/internal/models"
)

// StepResult reports what a call to Advance did.
type StepResult struct {
	Ticks  int
	Events []models.KitchenEvent
}

// Advance moves simulated time forward by delta. Ticks and whole-second
// countdown steps fire in time order from independent accumulators. Nothing
// happens outside SERVICE or on a client, and the loop stops the moment the
// phase leaves SERVICE.
func (e *Engine) Advance(delta time.Duration) StepResult {
	var res StepResult
	if !e.running() {
		return res
	}

	for delta > 0 && e.running() {
		step := min(delta, e.cfg.TickRate-e.sinceTick, time.Second-e.sinceSecond)
		delta -= step
		e.sinceTick += step
		e.sinceSecond += step

		if e.sinceTick >= e.cfg.TickRate {
			e.sinceTick = 0
			res.Ticks++
			res.Events = append(res.Events, e.tick()...)
		}
		if e.sinceSecond >= time.Second && e.running() {
			e.sinceSecond = 0
			res.Events = append(res.Events, e.countdown()...)
		}
	}
	return res
}

func (e *Engine) running() bool {
	return e.state.Phase == models.PhaseService && e.state.GameMode != models.ModeClient
}

// tick runs one fixed simulation step.
func (e *Engine) tick() []models.KitchenEvent {
	e.maybeSpawnOrder()
	events := e.advanceStations()
	events = append(events, e.decayOrders()...)
	return append(events, e.decayHygiene()...)
}

func (e *Engine) advanceStations() []models.KitchenEvent {
	var events []models.KitchenEvent
	tickMs := float64(e.cfg.TickRate.Milliseconds())

	for i := range e.stations {
		st := &e.stations[i]
		switch st.State {
		case models.StationCooking:
			r, err := e.menu.Recipe(st.RecipeID())
			if err != nil {
				continue
			}
			next := st.CookProgress + fullCook/(float64(r.PrepTimeMs)/tickMs)
			if next >= fullCook {
				st.State = models.StationReady
				st.CookProgress = fullCook
				st.ReadyForMs = 0
				e.cues.Play(models.CueOrderUp)
				continue
			}
			st.CookProgress = next
		case models.StationReady:
			if e.cfg.BurnAfter <= 0 {
				continue
			}
			st.ReadyForMs += int(tickMs)
			if time.Duration(st.ReadyForMs)*time.Millisecond >= e.cfg.BurnAfter {
				recipe := st.RecipeID()
				st.Clear()
				st.State = models.StationBurned
				e.cues.Play(models.CueKeyReject)
				events = append(events, newEvent(models.EventStationCleared,
					fmt.Sprintf("Station %d burned %s", st.ID, recipe),
					map[string]any{"station": st.ID, "recipe": recipe, "burned": true}))
			}
		case models.StationEmpty, models.StationPrepping, models.StationBurned:
		}
	}
	return events
}

// decayOrders drains patience and drops orders that ran out, charging a
// penalty per expired order.
func (e *Engine) decayOrders() []models.KitchenEvent {
	var events []models.KitchenEvent
	kept := e.orders[:0]
	for _, o := range e.orders {
		o.Patience -= e.cfg.PatienceDecayRate
		if o.Patience > 0 {
			kept = append(kept, o)
			continue
		}
		o.Status = models.OrderExpired
		events = append(events, newEvent(models.EventOrderExpired,
			fmt.Sprintf("Order %s for %s walked out", o.ID, o.RecipeID),
			map[string]any{"order": o.ID, "recipe": o.RecipeID}))
	}
	e.orders = kept

	if expired := len(events); expired > 0 {
		e.state.Money = floorInt(e.state.Money - expiryPenalty*expired)
		e.state.Hygiene = clampHygiene(e.state.Hygiene-float64(expiryPenalty*expired), e.cfg.MaxHygiene)
		e.cues.Play(models.CueKeyReject)
	}
	return events
}

func (e *Engine) decayHygiene() []models.KitchenEvent {
	next := e.state.Hygiene - e.cfg.HygieneDecayRate*hygieneDecayScale
	if next > 0 {
		e.state.Hygiene = next
		return nil
	}
	e.state.Hygiene = 0
	return e.gameOver(models.ReasonHygiene)
}

// countdown takes one second off the clock and evaluates the day at zero.
func (e *Engine) countdown() []models.KitchenEvent {
	e.state.TimeRemaining--
	if e.state.TimeRemaining > 0 {
		return nil
	}
	e.state.TimeRemaining = 0
	return e.endOfDay()
}

// endOfDay leaves SERVICE, so it runs once per day.
func (e *Engine) endOfDay() []models.KitchenEvent {
	e.cues.Play(models.CueServiceStop)
	e.cues.Play(models.CueCash)

	if e.state.Money < e.state.DailyTarget {
		return e.gameOver(models.ReasonBankruptcy)
	}
	e.state.Phase = models.PhaseEODReport
	return []models.KitchenEvent{newEvent(models.EventDayCompleted,
		fmt.Sprintf("Day %d closed at %d of %d", e.state.Day, e.state.Money, e.state.DailyTarget),
		map[string]any{"day": e.state.Day, "money": e.state.Money, "target": e.state.DailyTarget})}
}

func (e *Engine) gameOver(reason string) []models.KitchenEvent {
	e.state.Phase = models.PhaseGameOver
	if reason == models.ReasonHygiene {
		e.cues.Play(models.CueServiceStop)
	}
	return []models.KitchenEvent{newEvent(models.EventGameOver,
		fmt.Sprintf("Game over on day %d: %s", e.state.Day, reason),
		map[string]any{"reason": reason, "day": e.state.Day, "money": e.state.Money, "score": e.state.Score})}
}
