// Package server defines the inbound frame envelope and utility helpers that
// are reused across client and hub logic.
package server

import (
	"encoding/json"
	"strings"
)

// Frame is the envelope every inbound client message arrives in. Data stays
// raw so each event handler decodes its own payload shape.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// JoinRoomRequest is the payload of a joinRoom frame.
type JoinRoomRequest struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// ChatMessageRequest is the payload of a chatMessage frame.
type ChatMessageRequest struct {
	Text string `json:"text"`
}

// isExpectedCloseError checks if an error is expected during connection closure.
func isExpectedCloseError(err error) bool {
	if err == nil {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "use of closed network connection") ||
		strings.Contains(errStr, "websocket: close sent") ||
		strings.Contains(errStr, "broken pipe")
}
