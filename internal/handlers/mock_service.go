package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pixel_bistro/internal/models"
	"pixel_bistro/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseChef     string
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) Identify(token string) (service.Identity, error) {
	m.lastParseToken = token
	if m.parseErr != nil {
		return service.Identity{}, m.parseErr
	}
	return service.Identity{ID: m.parseID, Chef: m.parseChef}, nil
}

type mockGame struct {
	mu sync.Mutex

	snap     models.Snapshot
	saved    bool
	room     string
	hostErr  error
	joinErr  error
	review   models.DailyReview
	status   service.SessionStatus
	menu     []models.Recipe
	muted    bool
	emitted  []models.Action
	lastRoom string
	solo     int
	soloChef string
}

func (m *mockGame) NewSolo(ctx context.Context) models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.solo++
	m.soloChef = service.ChefFromContext(ctx)
	return m.snap
}
func (m *mockGame) Continue(ctx context.Context) (models.Snapshot, bool) {
	return m.snap, m.saved
}
func (m *mockGame) HasSave(ctx context.Context) bool { return m.saved }
func (m *mockGame) Host(ctx context.Context) (string, error) {
	return m.room, m.hostErr
}
func (m *mockGame) Join(ctx context.Context, room string) error {
	m.lastRoom = room
	return m.joinErr
}
func (m *mockGame) Emit(ctx context.Context, a models.Action) models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emitted = append(m.emitted, a)
	return m.snap
}
func (m *mockGame) Snapshot() models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}
func (m *mockGame) Menu() []models.Recipe { return m.menu }
func (m *mockGame) Review() models.DailyReview { return m.review }
func (m *mockGame) Status() service.SessionStatus { return m.status }
func (m *mockGame) ToggleMute() bool { m.muted = !m.muted; return m.muted }

func (m *mockGame) actions() []models.Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Action(nil), m.emitted...)
}

type mockEventLog struct {
	resp     []models.KitchenEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.KitchenEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockRanking struct {
	resp      []models.RankEntry
	err       error
	lastLimit int
}

func (m *mockRanking) Top(ctx context.Context, limit int) ([]models.RankEntry, error) {
	m.lastLimit = limit
	return m.resp, m.err
}

type mockPeer struct {
	err      error
	lastRoom string
}

func (m *mockPeer) Accept(w http.ResponseWriter, r *http.Request, room string) error {
	m.lastRoom = room
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
