// Package chat tracks live sessions and room membership. The registry and the
// room index share one lock so readers always observe them in agreement.
package chat

import (
	"strings"
	"sync"
	"time"
)

// Session is the live binding of a connection to a username and room.
// It is created on a successful join and destroyed on disconnect.
type Session struct {
	ID       string
	Username string
	Room     string
	JoinedAt time.Time
}

// Registry owns every live Session and the per-room membership index derived
// from them. All mutations happen under a single mutex so a join or removal
// and its index update are observed atomically.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	rooms    map[string][]string // connection IDs in join order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		rooms:    make(map[string][]string),
	}
}

// Join validates and registers a session for connID. If the connection
// already has a session it is returned unchanged with created=false, so a
// repeated join is harmless. A case-insensitive username collision within the
// room fails with ErrDuplicateUsername.
func (r *Registry) Join(connID, username, room string) (*Session, bool, error) {
	username = SanitizeUsername(username)
	room = SanitizeRoom(room)
	if err := ValidateUsername(username); err != nil {
		return nil, false, err
	}
	if err := ValidateRoom(room); err != nil {
		return nil, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sessions[connID]; ok {
		return existing, false, nil
	}

	for _, id := range r.rooms[room] {
		if member, ok := r.sessions[id]; ok && strings.EqualFold(member.Username, username) {
			return nil, false, ErrDuplicateUsername
		}
	}

	session := &Session{
		ID:       connID,
		Username: username,
		Room:     room,
		JoinedAt: time.Now(),
	}
	r.sessions[connID] = session
	r.rooms[room] = append(r.rooms[room], connID)
	return session, true, nil
}

// Lookup returns the live session for connID, if any.
func (r *Registry) Lookup(connID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[connID]
	return session, ok
}

// Remove deletes the session for connID and returns it. Removing an unknown
// connection returns nil; disconnecting before joining is not an error.
func (r *Registry) Remove(connID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[connID]
	if !ok {
		return nil
	}
	delete(r.sessions, connID)

	members := r.rooms[session.Room]
	for i, id := range members {
		if id == connID {
			r.rooms[session.Room] = append(members[:i], members[i+1:]...)
			break
		}
	}
	// An empty room ceases to exist.
	if len(r.rooms[session.Room]) == 0 {
		delete(r.rooms, session.Room)
	}
	return session
}

// MembersOf returns the sessions in a room ordered by join time. The slice is
// a snapshot; callers may retain it across further mutations.
func (r *Registry) MembersOf(room string) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.rooms[room]
	members := make([]*Session, 0, len(ids))
	for _, id := range ids {
		if session, ok := r.sessions[id]; ok {
			members = append(members, session)
		}
	}
	return members
}

// RoomCount returns the number of rooms with at least one member.
func (r *Registry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// UserCount returns the number of live sessions across all rooms.
func (r *Registry) UserCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// AllSessions returns a snapshot of every live session, for diagnostics.
func (r *Registry) AllSessions() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, session)
	}
	return sessions
}
