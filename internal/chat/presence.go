// Package chat debounces typing signals so a burst of keystrokes produces a
// single indicator instead of one broadcast per key.
package chat

import (
	"sync"
	"time"
)

// Default debounce windows. An input burst emits one typing signal after
// DefaultTypingDelay of quiet, and one stopTyping signal after
// DefaultStopTypingDelay with no further input.
const (
	DefaultTypingDelay     = 300 * time.Millisecond
	DefaultStopTypingDelay = 1000 * time.Millisecond
)

// typingState holds the per-connection timer pair. Both timers reset on every
// input; they are cancelled, never leaked, when the connection goes away.
type typingState struct {
	typingTimer *time.Timer
	stopTimer   *time.Timer
	isTyping    bool
	lastSignal  time.Time
}

// Presence coordinates ephemeral typing state per connection. It has no
// network awareness; emitted signals reach clients through the notify
// callback supplied at construction.
type Presence struct {
	mu          sync.Mutex
	states      map[string]*typingState
	typingDelay time.Duration
	stopDelay   time.Duration
	notify      func(connID string, typing bool)
}

// NewPresence creates a coordinator that reports typing transitions through
// notify. Non-positive delays fall back to the defaults.
func NewPresence(typingDelay, stopDelay time.Duration, notify func(connID string, typing bool)) *Presence {
	if typingDelay <= 0 {
		typingDelay = DefaultTypingDelay
	}
	if stopDelay <= 0 {
		stopDelay = DefaultStopTypingDelay
	}
	return &Presence{
		states:      make(map[string]*typingState),
		typingDelay: typingDelay,
		stopDelay:   stopDelay,
		notify:      notify,
	}
}

// OnInput records an input signal for connID. The typing timer and the
// stop-typing timer are independent and both restart on every call, so rapid
// repeated input coalesces into one typing emission per quiet period and one
// stopTyping emission after the input stops.
func (p *Presence) OnInput(connID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, ok := p.states[connID]
	if !ok {
		state = &typingState{}
		p.states[connID] = state
	}
	state.lastSignal = time.Now()

	if state.typingTimer != nil {
		state.typingTimer.Stop()
	}
	var typingTimer *time.Timer
	typingTimer = time.AfterFunc(p.typingDelay, func() {
		p.fireTyping(connID, typingTimer)
	})
	state.typingTimer = typingTimer

	if state.stopTimer != nil {
		state.stopTimer.Stop()
	}
	var stopTimer *time.Timer
	stopTimer = time.AfterFunc(p.stopDelay, func() {
		p.fireStop(connID, stopTimer)
	})
	state.stopTimer = stopTimer
}

// OnExplicitStop cancels any pending timers for connID and emits a single
// stopTyping signal immediately.
func (p *Presence) OnExplicitStop(connID string) {
	p.mu.Lock()
	if state, ok := p.states[connID]; ok {
		state.cancel()
		state.isTyping = false
	}
	p.mu.Unlock()

	p.notify(connID, false)
}

// Remove cancels all pending timers for connID without emitting anything.
// Called on session teardown so dead connections never signal.
func (p *Presence) Remove(connID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if state, ok := p.states[connID]; ok {
		state.cancel()
		delete(p.states, connID)
	}
}

// fireTyping runs when the typing timer elapses. The identity check rejects
// timers that fired in the window between cancellation and rescheduling.
func (p *Presence) fireTyping(connID string, timer *time.Timer) {
	p.mu.Lock()
	state, ok := p.states[connID]
	if !ok || state.typingTimer != timer || state.isTyping {
		p.mu.Unlock()
		return
	}
	state.isTyping = true
	p.mu.Unlock()

	p.notify(connID, true)
}

func (p *Presence) fireStop(connID string, timer *time.Timer) {
	p.mu.Lock()
	state, ok := p.states[connID]
	if !ok || state.stopTimer != timer {
		p.mu.Unlock()
		return
	}
	state.isTyping = false
	p.mu.Unlock()

	p.notify(connID, false)
}

func (s *typingState) cancel() {
	if s.typingTimer != nil {
		s.typingTimer.Stop()
		s.typingTimer = nil
	}
	if s.stopTimer != nil {
		s.stopTimer.Stop()
		s.stopTimer = nil
	}
}
