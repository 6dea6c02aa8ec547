package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pixel_bistro/internal/engine"
	"pixel_bistro/internal/logger"
	"pixel_bistro/internal/models"
	"pixel_bistro/internal/network"
	"pixel_bistro/internal/repository"
)

// A stalled loop never fast-forwards the kitchen by more than this.
const maxCatchUp = time.Second

// Transport is the two-party link used for co-op play.
type Transport interface {
	Initialize() (string, error)
	ConnectToHost(ctx context.Context, room string) error
	Send(data []byte) bool
	OnData(fn func([]byte))
	OnConnect(fn func())
	Cleanup()
	Status() string
	Room() string
}

// Muter toggles cue playback.
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// SessionDeps are the collaborators a Session reports to.
type SessionDeps struct {
	Saves   repository.SaveRepo
	Journal repository.EventRepo
	Ranks   repository.RankingRepo
	Link    Transport
	Audio   Muter
	Log     *logger.Logger
	Chef    string
	Now     func() time.Time
}

// Session owns the engine and serializes every entry point into it: lobby
// calls, local actions, peer frames and clock steps.
type Session struct {
	mu  sync.Mutex
	eng *engine.Engine

	saves   repository.SaveRepo
	journal repository.EventRepo
	ranks   repository.RankingRepo
	link    Transport
	audio   Muter
	log     *logger.Logger
	chef    string // fallback when a run is started anonymously
	now     func() time.Time

	player string // ranked name of the current run
}

func NewSession(eng *engine.Engine, deps SessionDeps) *Session {
	if eng == nil {
		eng = engine.New(engine.DefaultConfig(), nil)
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	chef := deps.Chef
	if chef == "" {
		chef = "Chef"
	}
	return &Session{
		eng:     eng,
		saves:   deps.Saves,
		journal: deps.Journal,
		ranks:   deps.Ranks,
		link:    deps.Link,
		audio:   deps.Audio,
		log:     log,
		chef:    chef,
		now:     now,
		player:  chef,
	}
}

// NewSolo discards any save and starts day 1, saving the fresh run.
func (s *Session) NewSolo(ctx context.Context) models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leaveLink()
	s.clearSave(ctx)
	s.eng.NewGame(models.ModeSolo)
	s.player = s.playerFrom(ctx)
	s.save(ctx)
	s.log.Infow("solo_started", "chef", s.player)
	return s.eng.Snapshot()
}

// Continue resumes the saved solo run. It reports false, leaving the game
// untouched, when there is no usable save.
func (s *Session) Continue(ctx context.Context) (models.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sd, ok := s.load(ctx)
	if !ok {
		return s.eng.Snapshot(), false
	}
	s.leaveLink()
	s.eng.Resume(sd)
	s.player = s.playerFrom(ctx)
	s.log.Infow("solo_resumed", "day", sd.Day, "money", sd.Money)
	return s.eng.Snapshot(), true
}

// HasSave reports whether a solo save exists. Storage failures count as no save.
func (s *Session) HasSave(ctx context.Context) bool {
	_, ok := s.load(ctx)
	return ok
}

// Host opens a room and waits in the lobby for a guest.
func (s *Session) Host(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.link == nil {
		return "", fmt.Errorf("host: no peer link configured")
	}
	s.link.OnData(s.onHostFrame)
	s.link.OnConnect(s.onGuestJoined)
	room, err := s.link.Initialize()
	if err != nil {
		return "", fmt.Errorf("host: %w", err)
	}
	s.eng.Lobby(models.ModeHost)
	s.player = s.playerFrom(ctx)
	s.log.Infow("hosting", "room", room)
	return room, nil
}

// Join dials the host's room. The game stays in the lobby until the host
// sends GAME_START.
func (s *Session) Join(ctx context.Context, room string) error {
	s.mu.Lock()
	if s.link == nil {
		s.mu.Unlock()
		return fmt.Errorf("join: no peer link configured")
	}
	s.link.Cleanup()
	s.link.OnConnect(nil)
	s.link.OnData(s.onClientFrame)
	s.eng.Lobby(models.ModeClient)
	s.player = s.playerFrom(ctx)
	link := s.link
	s.mu.Unlock()

	if err := link.ConnectToHost(ctx, room); err != nil {
		s.log.Warnw("join_failed", "room", room, "err", err)
		return err
	}
	s.log.Infow("joined", "room", room)
	return nil
}

// Emit routes one local action. A client forwards it to the host and only
// mirrors its own station selection; everyone else applies it for the host seat.
func (s *Session) Emit(ctx context.Context, a models.Action) models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.eng.State().GameMode == models.ModeClient {
		s.forward(a)
		return s.eng.Snapshot()
	}

	a.Seat = models.SeatHost
	s.record(ctx, s.eng.Apply(a))
	s.broadcast()
	return s.eng.Snapshot()
}

// Step advances the kitchen clock by delta and handles what happened.
func (s *Session) Step(ctx context.Context, delta time.Duration) engine.StepResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.eng.Advance(delta)
	s.record(ctx, res.Events)
	if res.Ticks > 0 {
		s.broadcast()
	}
	return res
}

// Run steps the session on every tick until ctx is cancelled.
func (s *Session) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = s.eng.Config().TickRate
	}
	t := time.NewTicker(tick)
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			delta := min(now.Sub(last), maxCatchUp)
			last = now
			s.Step(ctx, delta)
		}
	}
}

func (s *Session) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Snapshot()
}

func (s *Session) Menu() []models.Recipe {
	return s.eng.Menu().Recipes()
}

// Review is the critic's take on the current day.
func (s *Session) Review() models.DailyReview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Review()
}

func (s *Session) Status() SessionStatus {
	s.mu.Lock()
	st := s.eng.State()
	s.mu.Unlock()

	out := SessionStatus{
		Mode:       string(st.GameMode),
		Phase:      string(st.Phase),
		Connection: network.StatusIdle,
	}
	if s.link != nil {
		out.Connection = s.link.Status()
		out.Room = s.link.Room()
	}
	if s.audio != nil {
		out.Muted = s.audio.Muted()
	}
	return out
}

func (s *Session) ToggleMute() bool {
	if s.audio == nil {
		return false
	}
	return s.audio.ToggleMute()
}

// ---- peer frames ----

func (s *Session) onGuestJoined() {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.eng.State()
	if st.GameMode != models.ModeHost {
		return
	}
	// A guest rejoining a room mid-run gets the current state, not a fresh game.
	if st.Phase == models.PhaseMenu {
		s.eng.NewGame(models.ModeHost)
	}
	frame, err := network.GameStart()
	if err != nil {
		s.log.Errorw("encode_game_start_failed", "err", err)
		return
	}
	s.link.Send(frame)
	s.broadcast()
	s.log.Infow("guest_joined", "room", s.link.Room(), "day", s.eng.State().Day, "phase", s.eng.State().Phase)
}

func (s *Session) onHostFrame(data []byte) {
	msg, err := network.Decode(data)
	if err != nil {
		s.log.Warnw("peer_frame_rejected", "err", err)
		return
	}
	if msg.Type != models.MsgClientAction {
		s.log.Debugw("peer_frame_ignored", "type", msg.Type)
		return
	}
	a, err := network.ActionOf(msg)
	if err != nil {
		s.log.Warnw("peer_action_rejected", "err", err)
		return
	}
	a.Seat = models.SeatGuest

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.eng.State().GameMode != models.ModeHost {
		return
	}
	s.record(context.Background(), s.eng.Apply(a))
	s.broadcast()
}

func (s *Session) onClientFrame(data []byte) {
	msg, err := network.Decode(data)
	if err != nil {
		s.log.Warnw("peer_frame_rejected", "err", err)
		return
	}

	switch msg.Type {
	case models.MsgGameStart:
		s.mu.Lock()
		if s.eng.State().GameMode == models.ModeClient {
			s.eng.NewGame(models.ModeClient)
		}
		s.mu.Unlock()
	case models.MsgSyncState:
		snap, err := network.SnapshotOf(msg)
		if err != nil {
			s.log.Warnw("sync_state_rejected", "err", err)
			return
		}
		s.mu.Lock()
		if s.eng.State().GameMode == models.ModeClient {
			s.eng.Adopt(snap)
		}
		s.mu.Unlock()
	default:
		s.log.Debugw("peer_frame_ignored", "type", msg.Type)
	}
}

// ---- helpers, called with s.mu held ----

func (s *Session) forward(a models.Action) {
	if a.Type == models.ActionClickStation {
		s.eng.MirrorClick(models.SeatGuest, a.StationID)
	}
	frame, err := network.ClientAction(a)
	if err != nil {
		s.log.Errorw("encode_action_failed", "err", err)
		return
	}
	if s.link == nil || !s.link.Send(frame) {
		s.log.Debugw("action_not_forwarded", "type", a.Type)
	}
}

func (s *Session) broadcast() {
	if s.link == nil || s.eng.State().GameMode != models.ModeHost {
		return
	}
	frame, err := network.SyncState(s.eng.Snapshot())
	if err != nil {
		s.log.Errorw("encode_sync_failed", "err", err)
		return
	}
	s.link.Send(frame)
}

func (s *Session) leaveLink() {
	if s.link != nil {
		s.link.Cleanup()
	}
}

// record journals events and applies their persistence side effects.
func (s *Session) record(ctx context.Context, events []models.KitchenEvent) {
	mode := s.eng.State().GameMode
	for _, ev := range events {
		ev.OccurredAt = s.now().UTC()
		if s.journal != nil {
			if err := s.journal.Append(ctx, ev); err != nil {
				s.log.Errorw("journal_append_failed", "type", ev.Type, "err", err)
			}
		}

		switch ev.Type {
		case models.EventDayAdvanced:
			if mode == models.ModeSolo {
				s.save(ctx)
			}
		case models.EventGameOver:
			if mode == models.ModeSolo {
				s.clearSave(ctx)
			}
			s.rank(ctx, mode)
			s.log.Infow("game_over", "meta", ev.Metadata)
		default:
			s.log.Debugw("kitchen_event", "type", ev.Type, "desc", ev.Description)
		}
	}
}

func (s *Session) rank(ctx context.Context, mode models.GameMode) {
	if s.ranks == nil {
		return
	}
	st := s.eng.State()
	chef := s.player
	if mode == models.ModeHost {
		chef = s.player + " & guest"
	}
	_, err := s.ranks.Record(ctx, models.RankEntry{
		Chef:       chef,
		Score:      st.Score,
		Day:        st.Day,
		Mode:       mode,
		RecordedAt: s.now().UTC(),
	})
	if err != nil {
		s.log.Errorw("ranking_record_failed", "err", err)
	}
}

func (s *Session) playerFrom(ctx context.Context) string {
	if chef := ChefFromContext(ctx); chef != "" {
		return chef
	}
	return s.chef
}

func (s *Session) save(ctx context.Context) {
	if s.saves == nil {
		return
	}
	sd := s.eng.SaveData()
	sd.SavedAt = s.now().UTC()
	if err := s.saves.Save(ctx, sd); err != nil {
		s.log.Errorw("save_failed", "day", sd.Day, "err", err)
	}
}

func (s *Session) clearSave(ctx context.Context) {
	if s.saves == nil {
		return
	}
	if err := s.saves.Clear(ctx); err != nil {
		s.log.Errorw("clear_save_failed", "err", err)
	}
}

func (s *Session) load(ctx context.Context) (models.SaveData, bool) {
	if s.saves == nil {
		return models.SaveData{}, false
	}
	sd, ok, err := s.saves.Load(ctx)
	if err != nil {
		s.log.Warnw("load_save_failed", "err", err)
		return models.SaveData{}, false
	}
	return sd, ok
}
