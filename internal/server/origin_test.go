package server

import (
	"net/http/httptest"
	"testing"
)

// TestNormalizeOrigin verifies scheme/host lowercasing and rejection of
// malformed origins.
func TestNormalizeOrigin(t *testing.T) {
	cases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"http://Example.COM", "http://example.com", true},
		{"HTTPS://chat.example.com:8443", "https://chat.example.com:8443", true},
		{"http://example.com/some/path", "http://example.com", true},
		{"example.com", "", false},
		{"://missing-scheme", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		normalized, ok := normalizeOrigin(tc.input)
		if ok != tc.ok {
			t.Errorf("normalizeOrigin(%q) ok = %v, expected %v", tc.input, ok, tc.ok)
			continue
		}
		if ok && normalized != tc.expected {
			t.Errorf("normalizeOrigin(%q) = %q, expected %q", tc.input, normalized, tc.expected)
		}
	}
}

// TestIsOriginAllowed verifies the allow-list check against configured origins.
func TestIsOriginAllowed(t *testing.T) {
	t.Cleanup(func() { SetConfig(nil) })
	SetConfig(&Config{AllowedOrigins: []string{"http://chat.example.com"}})

	allowed := httptest.NewRequest("GET", "/ws", nil)
	allowed.Header.Set("Origin", "http://Chat.Example.com")
	if !isOriginAllowed(allowed) {
		t.Error("Expected configured origin to be allowed regardless of case")
	}

	denied := httptest.NewRequest("GET", "/ws", nil)
	denied.Header.Set("Origin", "http://evil.example.com")
	if isOriginAllowed(denied) {
		t.Error("Expected unknown origin to be denied")
	}

	missing := httptest.NewRequest("GET", "/ws", nil)
	if isOriginAllowed(missing) {
		t.Error("Expected request without an Origin header to be denied")
	}
}

// TestWildcardOriginAllowsAll verifies that "*" disables the allow-list.
func TestWildcardOriginAllowsAll(t *testing.T) {
	t.Cleanup(func() { SetConfig(nil) })
	SetConfig(&Config{AllowedOrigins: []string{"*"}})

	req := httptest.NewRequest("GET", "/ws", nil)
	req.Header.Set("Origin", "http://anywhere.example.com")
	if !isOriginAllowed(req) {
		t.Error("Expected wildcard configuration to allow any origin")
	}
}
