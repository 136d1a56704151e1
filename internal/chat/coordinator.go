// Package chat implements the session lifecycle: join, chat, typing, and
// disconnect transitions, with every broadcast routed to the right audience.
package chat

import (
	"log"
	"time"
)

// BotName is the display name attached to system messages.
const BotName = "Talkeu Chatbot"

const (
	welcomeText = "Welcome to Talkeu! 🎉"
	joinedText  = " has joined the chat 👋"
	leftText    = " has left the chat 👋"
)

// Coordinator drives the session lifecycle. Each inbound event has one entry
// point; every entry point validates, consults the registry, and routes the
// resulting broadcasts. It owns the registry, the presence coordinator, and
// the router so their state can never disagree.
type Coordinator struct {
	registry *Registry
	presence *Presence
	router   *Router
}

// NewCoordinator wires a registry, router, and presence coordinator together.
// typingDelay and stopDelay configure the typing debounce windows; zero
// values select the defaults.
func NewCoordinator(typingDelay, stopDelay time.Duration) *Coordinator {
	registry := NewRegistry()
	c := &Coordinator{
		registry: registry,
		router:   NewRouter(registry),
	}
	c.presence = NewPresence(typingDelay, stopDelay, c.relayTypingSignal)
	return c
}

// Registry exposes the session registry for diagnostics.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// Connect attaches the delivery sink for a new connection and confirms the
// connection to the client. The connection stays unjoined until JoinRoom.
func (c *Coordinator) Connect(connID string, sink Sink) {
	c.router.Attach(connID, sink)
	c.router.SendTo(connID, Event{Name: EventConnected, Data: ConnectedPayload{ID: connID}})
	log.Printf("User connected: %s", connID)
}

// JoinRoom moves a connection from unjoined to active. The joiner gets a
// welcome message and the roster; the rest of the room learns who arrived.
// A repeated join for the same connection is a no-op. Validation and
// duplicate-username failures are reported only to the joiner.
func (c *Coordinator) JoinRoom(connID, username, room string) error {
	session, created, err := c.registry.Join(connID, username, room)
	if err != nil {
		c.sendError(connID, err)
		return err
	}
	if !created {
		log.Printf("Ignoring repeated join from %s (already %q in room %q)", connID, session.Username, session.Room)
		return nil
	}

	roster := c.rosterOf(session.Room)

	c.router.SendTo(connID, Event{Name: EventMessage, Data: NewMessage(BotName, welcomeText)})
	c.router.Broadcast(session.Room, Event{
		Name: EventMessage,
		Data: NewMessage(BotName, session.Username+joinedText),
	}, connID)
	c.router.Broadcast(session.Room, Event{Name: EventRoomUsers, Data: roster}, "")
	c.router.SendTo(connID, Event{Name: EventRoomJoined, Data: roster})

	log.Printf("User %s joined room %q (%d users)", session.Username, session.Room, len(roster.Users))
	return nil
}

// ChatMessage validates and broadcasts a chat message to the whole room,
// sender included. Any pending typing indicator for the sender is retired
// first so recipients never see "is typing" next to the delivered message.
func (c *Coordinator) ChatMessage(connID, text string) error {
	session, ok := c.registry.Lookup(connID)
	if !ok {
		c.sendError(connID, ErrUnknownSession)
		return ErrUnknownSession
	}

	cleaned, err := SanitizeMessage(text)
	if err != nil {
		c.sendError(connID, err)
		return err
	}

	c.presence.OnExplicitStop(connID)
	c.router.Broadcast(session.Room, Event{
		Name: EventMessage,
		Data: NewMessage(session.Username, cleaned),
	}, "")
	return nil
}

// Typing records an input signal; the presence coordinator decides when the
// room actually hears about it.
func (c *Coordinator) Typing(connID string) error {
	if _, ok := c.registry.Lookup(connID); !ok {
		c.sendError(connID, ErrUnknownSession)
		return ErrUnknownSession
	}
	c.presence.OnInput(connID)
	return nil
}

// StopTyping cancels any pending typing signal and notifies the rest of the
// room immediately.
func (c *Coordinator) StopTyping(connID string) error {
	if _, ok := c.registry.Lookup(connID); !ok {
		c.sendError(connID, ErrUnknownSession)
		return ErrUnknownSession
	}
	c.presence.OnExplicitStop(connID)
	return nil
}

// Disconnect tears down a connection. If it had an active session the
// remaining room members get a leave message and a fresh roster; an unjoined
// or already-removed connection disconnects silently.
func (c *Coordinator) Disconnect(connID string) {
	c.presence.Remove(connID)
	c.router.Detach(connID)

	session := c.registry.Remove(connID)
	if session == nil {
		return
	}

	c.router.Broadcast(session.Room, Event{
		Name: EventMessage,
		Data: NewMessage(BotName, session.Username+leftText),
	}, "")
	c.router.Broadcast(session.Room, Event{Name: EventRoomUsers, Data: c.rosterOf(session.Room)}, "")

	log.Printf("User %s left room %q", session.Username, session.Room)
}

// relayTypingSignal is the presence coordinator's outlet. The sender never
// hears its own typing state back.
func (c *Coordinator) relayTypingSignal(connID string, typing bool) {
	session, ok := c.registry.Lookup(connID)
	if !ok {
		return
	}

	name := EventStopTyping
	if typing {
		name = EventUserTyping
	}
	c.router.Broadcast(session.Room, Event{
		Name: name,
		Data: TypingPayload{Username: session.Username},
	}, connID)
}

func (c *Coordinator) rosterOf(room string) RoomUsersPayload {
	members := c.registry.MembersOf(room)
	users := make([]RoomUser, 0, len(members))
	for _, member := range members {
		users = append(users, RoomUser{Username: member.Username})
	}
	return RoomUsersPayload{Room: room, Users: users}
}

func (c *Coordinator) sendError(connID string, err error) {
	c.router.SendTo(connID, Event{Name: EventError, Data: ErrorPayload{Message: err.Error()}})
}
