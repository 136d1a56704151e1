// Package chat routes outbound events to the connections that should hear
// them. The router is the single source of truth for "who hears what".
package chat

import (
	"log"
	"sync"
)

// Sink is the delivery end of one live connection. Implementations must not
// block: a slow or dead recipient returns an error instead of stalling the
// broadcast loop.
type Sink interface {
	Send(event Event) error
}

// Router delivers events to room members through their attached sinks.
// Delivery is fire-and-forget per recipient; a failed send is logged and the
// remaining recipients still receive the event.
type Router struct {
	mu       sync.RWMutex
	sinks    map[string]Sink
	registry *Registry
}

// NewRouter creates a router that resolves room membership through registry.
func NewRouter(registry *Registry) *Router {
	return &Router{
		sinks:    make(map[string]Sink),
		registry: registry,
	}
}

// Attach registers the delivery sink for a connection.
func (rt *Router) Attach(connID string, sink Sink) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.sinks[connID] = sink
}

// Detach forgets the sink for a connection. Subsequent broadcasts simply
// skip it.
func (rt *Router) Detach(connID string) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	delete(rt.sinks, connID)
}

// SendTo delivers an event to a single connection, best effort.
func (rt *Router) SendTo(connID string, event Event) {
	rt.mu.RLock()
	sink, ok := rt.sinks[connID]
	rt.mu.RUnlock()

	if !ok {
		return
	}
	if err := sink.Send(event); err != nil {
		log.Printf("Delivery of %q to %s failed: %v", event.Name, connID, err)
	}
}

// Broadcast delivers an event to every current member of room, except
// excludeID when non-empty. Events emitted in sequence by one caller reach
// each recipient in that same order.
func (rt *Router) Broadcast(room string, event Event, excludeID string) {
	members := rt.registry.MembersOf(room)

	rt.mu.RLock()
	defer rt.mu.RUnlock()

	for _, member := range members {
		if member.ID == excludeID {
			continue
		}
		sink, ok := rt.sinks[member.ID]
		if !ok {
			continue
		}
		if err := sink.Send(event); err != nil {
			log.Printf("Delivery of %q to %s in room %q failed: %v", event.Name, member.ID, room, err)
		}
	}
}
