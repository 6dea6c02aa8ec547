package network

import (
	"encoding/json"
	"errors"
	"testing"

	"pixel_bistro/internal/models"
)

func TestEncode_GameStartHasEmptyPayload(t *testing.T) {
	b, err := GameStart()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"type":"GAME_START","payload":{}}` {
		t.Fatalf("unexpected frame %s", b)
	}
}

func TestSyncState_WireShape(t *testing.T) {
	id := "salada"
	sel := 1
	snap := models.Snapshot{
		GameState: models.GameState{Money: 62, Hygiene: 80, Day: 1, DailyTarget: 100, Phase: models.PhaseService, GameMode: models.ModeHost},
		Stations:  []models.Station{{ID: 0, State: models.StationCooking, CurrentRecipeID: &id, PrepSequence: []models.IngredientKey{"A", "T", "Q"}, CookProgress: 40}},
		Orders:    []models.Order{{ID: "o1", RecipeID: "salada", Patience: 70, Status: models.OrderWaiting}},
	}
	snap.ActiveStationIDs[models.SeatGuest] = &sel

	b, err := SyncState(snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("frame is not json: %v", err)
	}
	payload := raw["payload"].(map[string]any)
	gs := payload["gameState"].(map[string]any)
	if gs["money"].(float64) != 62 || gs["phase"] != "SERVICE" {
		t.Fatalf("unexpected gameState %v", gs)
	}
	st := payload["stations"].([]any)[0].(map[string]any)
	if st["currentRecipeId"] != "salada" || st["state"] != "cooking" {
		t.Fatalf("unexpected station %v", st)
	}

	m, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := SnapshotOf(m)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if got.GameState.Money != 62 || len(got.Orders) != 1 || *got.ActiveStationIDs[models.SeatGuest] != 1 {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestClientAction_SeatNotOnWire(t *testing.T) {
	b, err := ClientAction(models.Action{Type: models.ActionKeyPress, Key: "Q", Seat: models.SeatGuest})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"type":"CLIENT_ACTION","payload":{"action":{"type":"KEY_PRESS","key":"Q"}}}` {
		t.Fatalf("unexpected frame %s", b)
	}

	m, _ := Decode(b)
	a, err := ActionOf(m)
	if err != nil {
		t.Fatalf("action: %v", err)
	}
	if a.Type != models.ActionKeyPress || a.Key != "Q" || a.Seat != models.SeatHost {
		t.Fatalf("unexpected action %+v", a)
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"not json":     `nope`,
		"missing type": `{"payload":{}}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode([]byte(in)); !errors.Is(err, ErrMalformedFrame) {
				t.Fatalf("expected ErrMalformedFrame, got %v", err)
			}
		})
	}

	m, err := Decode([]byte(`{"type":"CHAT","payload":{"text":"hi"}}`))
	if err != nil || m.Type != "CHAT" {
		t.Fatalf("unknown types must decode, got %v %v", m, err)
	}
	if _, err := ActionOf(m); !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("expected type mismatch error")
	}
	if _, err := ActionOf(models.Message{Type: models.MsgClientAction, Payload: []byte(`{"action":{}}`)}); !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("empty action should be rejected")
	}
}
