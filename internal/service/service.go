package service

import (
	"context"
	"net/http"
	"time"

	"pixel_bistro/internal/engine"
	"pixel_bistro/internal/logger"
	"pixel_bistro/internal/models"
	"pixel_bistro/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	Identify(accessToken string) (Identity, error)
}

// Game is the player-facing session: lobby calls, actions and reads.
type Game interface {
	NewSolo(ctx context.Context) models.Snapshot
	Continue(ctx context.Context) (models.Snapshot, bool)
	HasSave(ctx context.Context) bool
	Host(ctx context.Context) (string, error)
	Join(ctx context.Context, room string) error
	Emit(ctx context.Context, a models.Action) models.Snapshot
	Snapshot() models.Snapshot
	Menu() []models.Recipe
	Review() models.DailyReview
	Status() SessionStatus
	ToggleMute() bool
}

// Simulator drives the game clock. Stop it by cancelling ctx.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// EventLog exposes the kitchen journal with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.KitchenEvent, error)
}

// Ranking exposes the leaderboard.
type Ranking interface {
	Top(ctx context.Context, limit int) ([]models.RankEntry, error)
}

// PeerAcceptor upgrades an inbound guest connection for a hosted room.
type PeerAcceptor interface {
	Accept(w http.ResponseWriter, r *http.Request, room string) error
}

// PeerLink is the transport a session hosts or joins through.
type PeerLink interface {
	Transport
	PeerAcceptor
}

type Service struct {
	Game
	Simulator
	EventLog
	Ranking
	Authorization
	Peer PeerAcceptor
}

// Deps carries the runtime collaborators that are not repositories.
type Deps struct {
	Engine     *engine.Engine
	Link       PeerLink
	Audio      Muter
	Log        *logger.Logger
	Chef       string
	SigningKey string
	TokenTTL   time.Duration
}

func NewService(repos *repository.Repository, deps Deps) *Service {
	session := NewSession(deps.Engine, SessionDeps{
		Saves:   repos.SaveRepo,
		Journal: repos.EventRepo,
		Ranks:   repos.RankingRepo,
		Link:    deps.Link,
		Audio:   deps.Audio,
		Log:     deps.Log,
		Chef:    deps.Chef,
	})
	return &Service{
		Game:          session,
		Simulator:     session,
		EventLog:      NewEventLogService(repos.EventRepo),
		Ranking:       NewRankingService(repos.RankingRepo),
		Authorization: NewAuthService(repos.Auth, deps.SigningKey, deps.TokenTTL),
		Peer:          deps.Link,
	}
}
