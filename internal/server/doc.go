// Package server implements the HTTP and WebSocket transport for the Talkeu
// chat service.
//
// The implementation is organized into specialized files for configuration,
// hub management, clients, routing, and HTTP handlers to keep the codebase
// maintainable and testable as the project grows. Room, session, and
// broadcast semantics live in the chat package; this package only moves
// frames between connections and the chat coordinator.
package server
