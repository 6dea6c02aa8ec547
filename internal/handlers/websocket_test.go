package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"pixel_bistro/internal/models"
	"pixel_bistro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 100 * time.Millisecond},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 100 * time.Millisecond},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 100 * time.Millisecond},
		{"interval_invalid_string", "/ws?interval=bogus", 100 * time.Millisecond},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 100 * time.Millisecond},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// streamURL builds a /ws address against a router wired with the full route set.
func streamURL(t *testing.T, game *mockGame, auth *mockAuth, token string) string {
	t.Helper()
	r := newTestRouter(&service.Service{Authorization: auth, Game: game})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	q := u.Query()
	q.Set("interval_ms", "20") // fast ticks for the test
	if token != "" {
		q.Set("token", token)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func dialStream(t *testing.T, game *mockGame) *websocket.Conn {
	t.Helper()
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(streamURL(t, game, &mockAuth{parseID: 1}, "valid"), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readUntil skips frames until one of the wanted type arrives.
func readUntil(t *testing.T, conn *websocket.Conn, typ string) envelope {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		_ = conn.SetReadDeadline(deadline)
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("waiting for %q: %v", typ, err)
		}
		if env.Type == typ {
			return env
		}
	}
}

func TestWebSocket_StateStream_InitialAndPeriodic(t *testing.T) {
	game := &mockGame{snap: models.Snapshot{GameState: models.GameState{
		Money:         62,
		Hygiene:       88,
		Day:           2,
		TimeRemaining: 40,
		Phase:         models.PhaseService,
		GameMode:      models.ModeSolo,
	}}}
	conn := dialStream(t, game)

	env := readUntil(t, conn, wsTypeState)
	var snap models.Snapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if snap.GameState.Money != 62 || snap.GameState.Phase != models.PhaseService {
		t.Fatalf("unexpected state: %+v", snap.GameState)
	}

	// a subsequent tick
	readUntil(t, conn, wsTypeState)
}

func TestWebSocket_ActionsAreEmitted(t *testing.T) {
	game := &mockGame{}
	conn := dialStream(t, game)
	readUntil(t, conn, wsTypeState)

	msg := `{"type":"action","data":{"type":"key_press","key":"p"}}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(game.actions()) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	got := game.actions()
	if len(got) != 1 || got[0].Type != models.ActionKeyPress || got[0].Key != "P" {
		t.Fatalf("unexpected emitted actions: %+v", got)
	}
}

func TestWebSocket_BadFrameIsRejectedNotFatal(t *testing.T) {
	game := &mockGame{}
	conn := dialStream(t, game)
	readUntil(t, conn, wsTypeState)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"action","data":{"type":"FLAMBE"}}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	env := readUntil(t, conn, wsTypeError)
	if env.Error != errUnknownAction {
		t.Fatalf("unexpected error frame: %+v", env)
	}

	// still streaming
	readUntil(t, conn, wsTypeState)
	if n := len(game.actions()); n != 0 {
		t.Fatalf("bad frame reached the game: %d actions", n)
	}
}

func TestWebSocket_RequiresToken(t *testing.T) {
	cases := []struct {
		name   string
		auth   *mockAuth
		token  string
		header http.Header
	}{
		{name: "no token", auth: &mockAuth{parseID: 1}},
		{name: "rejected query token", auth: &mockAuth{parseErr: errors.New("expired")}, token: "stale"},
		{name: "rejected header token", auth: &mockAuth{parseErr: errors.New("expired")}, header: authHeader("stale")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			game := &mockGame{}
			dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
			conn, resp, err := dialer.Dial(streamURL(t, game, tc.auth, tc.token), tc.header)
			if err == nil {
				_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"action","data":{"type":"key_press","key":"p"}}`))
				_ = conn.Close()
				t.Fatal("dial succeeded without a valid token")
			}
			if resp == nil || resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("expected 401 on handshake, got %+v", resp)
			}
			if n := len(game.actions()); n != 0 {
				t.Fatalf("unauthenticated stream reached the game: %d actions", n)
			}
		})
	}
}

func TestWebSocket_HeaderTokenWinsOverQuery(t *testing.T) {
	auth := &mockAuth{parseID: 4}
	game := &mockGame{}
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(streamURL(t, game, auth, "from-query"), authHeader("from-header"))
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	readUntil(t, conn, wsTypeState)

	if auth.lastParseToken != "from-header" {
		t.Fatalf("token checked = %q, want the header one", auth.lastParseToken)
	}
}
