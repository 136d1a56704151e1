// Package chat re-validates client input inside the core. The transport layer
// performs its own boundary checks, but the core never trusts that they ran.
package chat

import (
	"regexp"
	"strings"
	"unicode"
)

// Input limits enforced on join and chat events.
const (
	MaxUsernameLength = 20
	MaxRoomLength     = 50
	MaxMessageLength  = 1000
)

// maxRepeatedRun is the longest run of a single repeated character tolerated
// in a message before it is rejected as spam.
const maxRepeatedRun = 10

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-\s]+$`)

var allCapsPattern = regexp.MustCompile(`[A-Z]{20,}`)

// SanitizeUsername trims whitespace and clamps the result to MaxUsernameLength.
func SanitizeUsername(username string) string {
	return clampRunes(strings.TrimSpace(username), MaxUsernameLength)
}

// SanitizeRoom trims whitespace and clamps the result to MaxRoomLength.
func SanitizeRoom(room string) string {
	return clampRunes(strings.TrimSpace(room), MaxRoomLength)
}

// ValidateUsername checks an already-sanitized username. It must be non-empty
// and contain only letters, digits, spaces, hyphens, and underscores.
func ValidateUsername(username string) error {
	if username == "" || len([]rune(username)) > MaxUsernameLength {
		return ErrInvalidInput
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidInput
	}
	return nil
}

// ValidateRoom checks an already-sanitized room name for emptiness and length.
func ValidateRoom(room string) error {
	if room == "" || len([]rune(room)) > MaxRoomLength {
		return ErrInvalidInput
	}
	return nil
}

// SanitizeMessage trims and clamps a chat message, then rejects empty or
// spam-looking content. It returns the cleaned text on success.
func SanitizeMessage(text string) (string, error) {
	cleaned := clampRunes(strings.TrimSpace(text), MaxMessageLength)
	if cleaned == "" {
		return "", ErrInvalidInput
	}
	if isSpam(cleaned) {
		return "", ErrInvalidInput
	}
	return cleaned, nil
}

// isSpam flags messages dominated by a single repeated character or by long
// runs of capital letters.
func isSpam(text string) bool {
	if hasRepeatedRun(text, maxRepeatedRun) {
		return true
	}
	return allCapsPattern.MatchString(text)
}

// hasRepeatedRun reports whether text contains a run of one rune longer than
// limit. Whitespace runs are ignored so indented or spaced text is not
// penalized.
func hasRepeatedRun(text string, limit int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev && !unicode.IsSpace(r) {
			run++
			if run >= limit {
				return true
			}
		} else {
			prev = r
			run = 0
		}
	}
	return false
}

func clampRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
