// Package network carries host/client replication frames over websockets.
package network

import (
	"encoding/json"
	"errors"
	"fmt"

	"pixel_bistro/internal/models"
)

// ErrMalformedFrame is returned for frames that are not a {type, payload} envelope.
var ErrMalformedFrame = errors.New("malformed frame")

// Encode wraps payload in an envelope of the given type.
func Encode(t models.MessageType, payload any) ([]byte, error) {
	if payload == nil {
		payload = struct{}{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", t, err)
	}
	return json.Marshal(models.Message{Type: t, Payload: raw})
}

// Decode parses an envelope. Unknown types decode without error.
func Decode(data []byte) (models.Message, error) {
	var m models.Message
	if err := json.Unmarshal(data, &m); err != nil {
		return models.Message{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	if m.Type == "" {
		return models.Message{}, ErrMalformedFrame
	}
	return m, nil
}

// GameStart tells the client to enter PRE_DAY.
func GameStart() ([]byte, error) {
	return Encode(models.MsgGameStart, nil)
}

// SyncState carries the host's authoritative snapshot.
func SyncState(snap models.Snapshot) ([]byte, error) {
	return Encode(models.MsgSyncState, snap)
}

// ClientAction forwards one client action to the host.
func ClientAction(a models.Action) ([]byte, error) {
	return Encode(models.MsgClientAction, models.ClientActionPayload{Action: a})
}

// SnapshotOf extracts a SYNC_STATE payload.
func SnapshotOf(m models.Message) (models.Snapshot, error) {
	var snap models.Snapshot
	if m.Type != models.MsgSyncState {
		return snap, fmt.Errorf("%w: want %s, got %s", ErrMalformedFrame, models.MsgSyncState, m.Type)
	}
	if err := json.Unmarshal(m.Payload, &snap); err != nil {
		return snap, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return snap, nil
}

// ActionOf extracts a CLIENT_ACTION payload. The seat is left for the
// receiver to assign.
func ActionOf(m models.Message) (models.Action, error) {
	var p models.ClientActionPayload
	if m.Type != models.MsgClientAction {
		return p.Action, fmt.Errorf("%w: want %s, got %s", ErrMalformedFrame, models.MsgClientAction, m.Type)
	}
	if err := json.Unmarshal(m.Payload, &p); err != nil {
		return p.Action, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	if p.Action.Type == "" {
		return p.Action, ErrMalformedFrame
	}
	return p.Action, nil
}
