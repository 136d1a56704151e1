package chat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkeu/chat-server/internal/chat"
)

func TestSanitizeUsername(t *testing.T) {
	assert.Equal(t, "alice", chat.SanitizeUsername("  alice  "))
	assert.Equal(t, strings.Repeat("a", 20), chat.SanitizeUsername(strings.Repeat("a", 25)))
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"alice", "Alice Smith", "user_42", "first-last"}
	for _, name := range valid {
		assert.NoError(t, chat.ValidateUsername(name), "username %q", name)
	}

	invalid := []string{"", "alice!", "<script>", "a@b.com"}
	for _, name := range invalid {
		assert.ErrorIs(t, chat.ValidateUsername(name), chat.ErrInvalidInput, "username %q", name)
	}
}

func TestValidateRoom(t *testing.T) {
	assert.NoError(t, chat.ValidateRoom("lobby"))
	assert.ErrorIs(t, chat.ValidateRoom(""), chat.ErrInvalidInput)
	assert.ErrorIs(t, chat.ValidateRoom(strings.Repeat("r", 51)), chat.ErrInvalidInput)
}

func TestSanitizeMessage(t *testing.T) {
	cleaned, err := chat.SanitizeMessage("  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", cleaned)

	_, err = chat.SanitizeMessage("   ")
	assert.ErrorIs(t, err, chat.ErrInvalidInput)

	// Oversized content is clamped, not rejected.
	cleaned, err = chat.SanitizeMessage(strings.Repeat("hello ", 300))
	require.NoError(t, err)
	assert.Len(t, []rune(cleaned), chat.MaxMessageLength)
}

func TestSanitizeMessageRejectsSpam(t *testing.T) {
	// Eleven identical characters in a row crosses the spam threshold.
	_, err := chat.SanitizeMessage("spam " + strings.Repeat("a", 11))
	assert.ErrorIs(t, err, chat.ErrInvalidInput)

	cleaned, err := chat.SanitizeMessage("ok " + strings.Repeat("a", 10))
	require.NoError(t, err)
	assert.Contains(t, cleaned, "aaaa")

	// Long shouting runs are rejected, mixed case is fine.
	_, err = chat.SanitizeMessage(strings.Repeat("A", 20))
	assert.ErrorIs(t, err, chat.ErrInvalidInput)

	_, err = chat.SanitizeMessage("WELL this is FINE")
	assert.NoError(t, err)
}
