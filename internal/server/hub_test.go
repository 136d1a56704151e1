package server

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/talkeu/chat-server/internal/chat"
)

// TestNewHub verifies that NewHub returns a hub with its channels and chat
// coordinator initialized.
func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub == nil {
		t.Fatal("NewHub() returned nil")
	}
	if hub.Coordinator() == nil {
		t.Fatal("Hub has no chat coordinator")
	}
	if hub.GetRegisterChan() == nil {
		t.Error("Register channel is nil")
	}
	if hub.GetUnregisterChan() == nil {
		t.Error("Unregister channel is nil")
	}
}

// TestNilClientRegistration verifies that a nil registration is skipped
// without panicking the run loop.
func TestNilClientRegistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer func() { _ = hub.Shutdown(time.Second) }()

	select {
	case hub.GetRegisterChan() <- nil:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Failed to send nil registration")
	}
	time.Sleep(10 * time.Millisecond)
}

// TestUnregisterUnknownClient verifies that unregistering a client that was
// never registered is a harmless no-op.
func TestUnregisterUnknownClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer func() { _ = hub.Shutdown(time.Second) }()

	client := NewClient(nil, hub, "127.0.0.1:12345")
	select {
	case hub.GetUnregisterChan() <- client:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Failed to send unregister")
	}
	time.Sleep(10 * time.Millisecond)

	// The send channel must still be open.
	if err := client.Send(chat.Event{Name: chat.EventMessage}); err != nil {
		t.Errorf("Send after spurious unregister failed: %v", err)
	}
}

// TestClientIDsAreUnique verifies that every client receives its own opaque
// connection identifier.
func TestClientIDsAreUnique(t *testing.T) {
	hub := NewHub()

	a := NewClient(nil, hub, "127.0.0.1:1")
	b := NewClient(nil, hub, "127.0.0.1:2")

	if a.ID() == "" || b.ID() == "" {
		t.Fatal("Client ID must not be empty")
	}
	if a.ID() == b.ID() {
		t.Errorf("Expected distinct client IDs, both were %s", a.ID())
	}
}

// TestClientSendQueuesEvent verifies that Send marshals the event and queues
// it on the client's send channel.
func TestClientSendQueuesEvent(t *testing.T) {
	hub := NewHub()
	client := NewClient(nil, hub, "127.0.0.1:12345")

	event := chat.Event{
		Name: chat.EventMessage,
		Data: chat.NewMessage("alice", "hello"),
	}
	if err := client.Send(event); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	select {
	case payload := <-client.GetSendChan():
		var decoded struct {
			Event string `json:"event"`
			Data  struct {
				Username string `json:"username"`
				Text     string `json:"text"`
			} `json:"data"`
		}
		if err := json.Unmarshal(payload, &decoded); err != nil {
			t.Fatalf("Queued payload is not valid JSON: %v", err)
		}
		if decoded.Event != chat.EventMessage {
			t.Errorf("Expected event %q, got %q", chat.EventMessage, decoded.Event)
		}
		if decoded.Data.Username != "alice" || decoded.Data.Text != "hello" {
			t.Errorf("Unexpected payload: %+v", decoded.Data)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("No payload queued on send channel")
	}
}

// TestClientSendReportsFullBuffer verifies that a full send buffer surfaces
// as a delivery error instead of blocking.
func TestClientSendReportsFullBuffer(t *testing.T) {
	hub := NewHub()
	client := NewClient(nil, hub, "127.0.0.1:12345")

	event := chat.Event{Name: chat.EventMessage, Data: chat.NewMessage("alice", "x")}
	for i := 0; i < 256; i++ {
		if err := client.Send(event); err != nil {
			t.Fatalf("Send %d failed before the buffer was full: %v", i, err)
		}
	}

	if err := client.Send(event); err == nil {
		t.Error("Expected an error once the send buffer is full")
	}
}
