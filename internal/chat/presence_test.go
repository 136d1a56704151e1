package chat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkeu/chat-server/internal/chat"
)

const (
	testTypingDelay = 25 * time.Millisecond
	testStopDelay   = 80 * time.Millisecond
)

type typingSignal struct {
	connID string
	typing bool
}

func newTestPresence() (*chat.Presence, chan typingSignal) {
	signals := make(chan typingSignal, 16)
	p := chat.NewPresence(testTypingDelay, testStopDelay, func(connID string, typing bool) {
		signals <- typingSignal{connID: connID, typing: typing}
	})
	return p, signals
}

func waitSignal(t *testing.T, signals chan typingSignal, timeout time.Duration) (typingSignal, bool) {
	t.Helper()
	select {
	case s := <-signals:
		return s, true
	case <-time.After(timeout):
		return typingSignal{}, false
	}
}

func TestRapidInputCoalescesToOneTypingSignal(t *testing.T) {
	p, signals := newTestPresence()

	// A burst of inputs inside the debounce window.
	for i := 0; i < 5; i++ {
		p.OnInput("conn-1")
		time.Sleep(4 * time.Millisecond)
	}

	first, ok := waitSignal(t, signals, 10*testTypingDelay)
	require.True(t, ok, "expected a typing signal")
	assert.Equal(t, typingSignal{"conn-1", true}, first)

	second, ok := waitSignal(t, signals, 10*testStopDelay)
	require.True(t, ok, "expected a stopTyping signal")
	assert.Equal(t, typingSignal{"conn-1", false}, second)

	// Exactly one of each; nothing else may arrive.
	_, ok = waitSignal(t, signals, 2*testStopDelay)
	assert.False(t, ok, "no further signals expected after the quiet period")
}

func TestNewInputAfterStopStartsNewEpisode(t *testing.T) {
	p, signals := newTestPresence()

	p.OnInput("conn-1")

	s, ok := waitSignal(t, signals, 10*testTypingDelay)
	require.True(t, ok)
	assert.True(t, s.typing)

	s, ok = waitSignal(t, signals, 10*testStopDelay)
	require.True(t, ok)
	assert.False(t, s.typing)

	// Typing again after the stop emits a fresh typing signal.
	p.OnInput("conn-1")
	s, ok = waitSignal(t, signals, 10*testTypingDelay)
	require.True(t, ok)
	assert.True(t, s.typing)
}

func TestExplicitStopEmitsOnceAndCancelsTimers(t *testing.T) {
	p, signals := newTestPresence()

	p.OnInput("conn-1")
	p.OnExplicitStop("conn-1")

	s, ok := waitSignal(t, signals, testTypingDelay)
	require.True(t, ok, "explicit stop should emit immediately")
	assert.Equal(t, typingSignal{"conn-1", false}, s)

	// The pending typing and stop timers were cancelled.
	_, ok = waitSignal(t, signals, 2*testStopDelay)
	assert.False(t, ok, "cancelled timers must not fire")
}

func TestRemoveCancelsWithoutEmitting(t *testing.T) {
	p, signals := newTestPresence()

	p.OnInput("conn-1")
	p.Remove("conn-1")

	_, ok := waitSignal(t, signals, 2*testStopDelay)
	assert.False(t, ok, "teardown must not emit any signal")
}

func TestConnectionsAreIndependent(t *testing.T) {
	p, signals := newTestPresence()

	p.OnInput("conn-1")
	p.OnInput("conn-2")

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		s, ok := waitSignal(t, signals, 10*testTypingDelay)
		require.True(t, ok)
		assert.True(t, s.typing)
		seen[s.connID] = true
	}
	assert.Len(t, seen, 2)
}
