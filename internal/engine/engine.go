// Package engine is the authoritative kitchen simulation.
//
// All mutation flows through Apply (player actions) and Advance (time).
// The Engine is not safe for concurrent use; callers serialize access.
package engine

import (
	"math/rand"
	"time"

	"pixel_bistro/internal/catalog"
	"pixel_bistro/internal/models"

	"github.com/google/uuid"
)

// Clock abstracts wall time for order timestamps.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for order spawning.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock sets the clock used to stamp orders.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithCueSink routes feedback cues to s.
func WithCueSink(s CueSink) Option {
	return func(e *Engine) {
		if s != nil {
			e.cues = s
		}
	}
}

// WithIDs overrides the order id generator.
func WithIDs(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// Engine owns game state, stations and orders.
type Engine struct {
	cfg   Config
	menu  *catalog.Catalog
	cues  CueSink
	rng   *rand.Rand
	clock Clock
	newID func() string

	state    models.GameState
	stations []models.Station
	orders   []models.Order
	active   [models.SeatCount]*int

	sinceTick   time.Duration
	sinceSecond time.Duration
}

// New builds an engine sitting in the MENU phase.
func New(cfg Config, menu *catalog.Catalog, opts ...Option) *Engine {
	if menu == nil {
		menu = catalog.Default()
	}
	e := &Engine{
		cfg:   cfg.sanitize(),
		menu:  menu,
		cues:  nopSink{},
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		clock: realClock{},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Lobby(models.ModeSolo)
	return e
}

// Config returns the effective tuning.
func (e *Engine) Config() Config { return e.cfg }

// Menu returns the recipe catalog.
func (e *Engine) Menu() *catalog.Catalog { return e.menu }

// State returns a copy of the game state.
func (e *Engine) State() models.GameState { return e.state }

// NewGame starts a fresh run at day 1 in PRE_DAY for the given role.
func (e *Engine) NewGame(mode models.GameMode) {
	e.reset(mode)
}

// Lobby resets to day 1 defaults but parks the game in MENU, where no action
// or tick has any effect. Co-op sessions wait here for the other player.
func (e *Engine) Lobby(mode models.GameMode) {
	e.reset(mode)
	e.state.Phase = models.PhaseMenu
}

// Resume restores a saved solo run into PRE_DAY with a full clock.
func (e *Engine) Resume(sd models.SaveData) {
	e.reset(models.ModeSolo)
	e.state.Money = floorInt(sd.Money)
	e.state.Hygiene = clampHygiene(sd.Hygiene, e.cfg.MaxHygiene)
	e.state.Score = floorInt(sd.Score)
	if sd.Day >= 1 {
		e.state.Day = sd.Day
	}
	if sd.DailyTarget > 0 {
		e.state.DailyTarget = sd.DailyTarget
	}
}

// SaveData extracts the persisted subset.
func (e *Engine) SaveData() models.SaveData {
	return models.SaveData{
		Money:       e.state.Money,
		Hygiene:     e.state.Hygiene,
		Score:       e.state.Score,
		Day:         e.state.Day,
		DailyTarget: e.state.DailyTarget,
		GameMode:    models.ModeSolo,
	}
}

// Snapshot returns a deep copy of the replicated state.
func (e *Engine) Snapshot() models.Snapshot {
	snap := models.Snapshot{
		GameState: e.state,
		Stations:  make([]models.Station, len(e.stations)),
		Orders:    make([]models.Order, len(e.orders)),
	}
	for i, st := range e.stations {
		snap.Stations[i] = copyStation(st)
	}
	copy(snap.Orders, e.orders)
	for seat, id := range e.active {
		if id != nil {
			v := *id
			snap.ActiveStationIDs[seat] = &v
		}
	}
	return snap
}

// Adopt overwrites local state with a snapshot received from the host.
// Nothing is merged; only the local role survives.
func (e *Engine) Adopt(snap models.Snapshot) {
	mode := e.state.GameMode
	e.state = snap.GameState
	e.state.GameMode = mode

	e.stations = make([]models.Station, len(snap.Stations))
	for i, st := range snap.Stations {
		e.stations[i] = copyStation(st)
	}
	e.orders = append(make([]models.Order, 0, len(snap.Orders)), snap.Orders...)
	for seat := range e.active {
		e.active[seat] = nil
		if id := snap.ActiveStationIDs[seat]; id != nil {
			v := *id
			e.active[seat] = &v
		}
	}
}

// Selected returns the station the seat has selected.
func (e *Engine) Selected(seat models.Seat) (int, bool) {
	if !validSeat(seat) || e.active[seat] == nil {
		return 0, false
	}
	return *e.active[seat], true
}

// ToggleSelection selects id for the seat, or deselects it if already selected.
func (e *Engine) ToggleSelection(seat models.Seat, id int) {
	if !validSeat(seat) || id < 0 || id >= len(e.stations) {
		return
	}
	if cur := e.active[seat]; cur != nil && *cur == id {
		e.active[seat] = nil
		return
	}
	e.active[seat] = &id
}

// MirrorClick applies only the selection half of CLICK_STATION, under the same
// rules the authority uses: SERVICE only, and burned stations are never
// selected. A client uses it to answer clicks before the next snapshot.
func (e *Engine) MirrorClick(seat models.Seat, id int) {
	if e.state.Phase != models.PhaseService || id < 0 || id >= len(e.stations) {
		return
	}
	if e.stations[id].State == models.StationBurned {
		return
	}
	e.ToggleSelection(seat, id)
}

func (e *Engine) reset(mode models.GameMode) {
	e.state = models.GameState{
		Money:         e.cfg.InitialMoney,
		Hygiene:       e.cfg.MaxHygiene,
		Score:         0,
		Day:           1,
		DailyTarget:   e.cfg.InitialTarget,
		TimeRemaining: e.cfg.DayDuration,
		Phase:         models.PhasePreDay,
		GameMode:      mode,
	}
	e.clearKitchen()
}

// clearKitchen empties orders, stations and selections.
func (e *Engine) clearKitchen() {
	e.orders = []models.Order{}
	e.stations = make([]models.Station, e.cfg.StationCount)
	for i := range e.stations {
		e.stations[i].ID = i
		e.stations[i].Clear()
	}
	e.active = [models.SeatCount]*int{}
	e.sinceTick = 0
	e.sinceSecond = 0
}

func copyStation(st models.Station) models.Station {
	out := st
	out.PrepSequence = append([]models.IngredientKey{}, st.PrepSequence...)
	if st.CurrentRecipeID != nil {
		id := *st.CurrentRecipeID
		out.CurrentRecipeID = &id
	}
	return out
}

func validSeat(seat models.Seat) bool {
	return seat >= 0 && int(seat) < models.SeatCount
}
