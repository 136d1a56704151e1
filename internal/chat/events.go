// Package chat defines the wire-level event contract exchanged with clients.
package chat

import "time"

// Inbound event names accepted from clients.
const (
	EventJoinRoom    = "joinRoom"
	EventChatMessage = "chatMessage"
	EventTyping      = "typing"
	EventStopTyping  = "stopTyping"
)

// Outbound event names emitted to clients.
const (
	EventConnected  = "connected"
	EventMessage    = "message"
	EventRoomUsers  = "roomUsers"
	EventRoomJoined = "roomJoined"
	EventUserTyping = "userTyping"
	EventError      = "error"
	// stopTyping is emitted outbound under the same name it arrives with.
)

// Event is the envelope for every outbound frame.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// MessagePayload carries a chat or system message.
type MessagePayload struct {
	Username  string `json:"username"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// RoomUser is a single roster entry.
type RoomUser struct {
	Username string `json:"username"`
}

// RoomUsersPayload carries the full roster of a room, ordered by join time.
type RoomUsersPayload struct {
	Room  string     `json:"room"`
	Users []RoomUser `json:"users"`
}

// TypingPayload identifies the user whose typing state changed.
type TypingPayload struct {
	Username string `json:"username"`
}

// ErrorPayload carries a recoverable error back to the originating connection.
type ErrorPayload struct {
	Message string `json:"message"`
}

// ConnectedPayload confirms a new connection and reports its assigned ID.
type ConnectedPayload struct {
	ID string `json:"id"`
}

// NewMessage builds a message payload stamped with the current UTC time.
func NewMessage(username, text string) MessagePayload {
	return MessagePayload{
		Username:  username,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
