// Package chat defines the error taxonomy shared by the registry, the
// lifecycle coordinator, and the transport layer.
package chat

import "errors"

// Sentinel errors surfaced to the originating connection as error events.
// None of them is fatal to the process; a failure affects only the
// connection that caused it.
var (
	// ErrInvalidInput indicates an empty or malformed username, room name,
	// or message after trimming.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDuplicateUsername indicates the requested username is already in
	// use (case-insensitively) by a live session in the same room.
	ErrDuplicateUsername = errors.New("username already taken in this room")

	// ErrUnknownSession indicates a chat or typing event arrived from a
	// connection that never joined a room.
	ErrUnknownSession = errors.New("user not found")
)
