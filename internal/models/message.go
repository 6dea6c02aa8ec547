package models

import "encoding/json"

// MessageType names a peer-link envelope.
type MessageType string

const (
	MsgGameStart    MessageType = "GAME_START"
	MsgSyncState    MessageType = "SYNC_STATE"
	MsgClientAction MessageType = "CLIENT_ACTION"
)

// Message is the envelope exchanged between host and client.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ClientActionPayload wraps an action forwarded by the client.
type ClientActionPayload struct {
	Action Action `json:"action"`
}
