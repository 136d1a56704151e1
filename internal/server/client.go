// Package server manages individual WebSocket clients, handling read/write
// pumps, rate limiting, and event dispatch for each connection.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/talkeu/chat-server/internal/chat"
)

// Client represents a WebSocket client connection in the chat system. Each
// client carries an opaque connection ID that the chat core uses to track its
// session, and acts as the delivery sink for events addressed to it.
type Client struct {
	id             string
	conn           *websocket.Conn
	send           chan []byte
	hub            *Hub
	addr           string
	closed         bool
	maxMessageSize int64
	rateLimiter    *rateLimiter
	rateLimit      RateLimitConfig
}

// NewClient creates a new Client with a freshly assigned connection ID. The
// send channel is buffered so a burst of broadcasts does not block the hub.
func NewClient(conn *websocket.Conn, hub *Hub, addr string) *Client {
	cfg := currentConfig()
	if conn != nil {
		conn.SetReadLimit(cfg.MaxMessageSize)
	}
	limiter := newRateLimiter(cfg.RateLimit.Burst, cfg.RateLimit.RefillInterval)

	return &Client{
		id:             uuid.NewString(),
		conn:           conn,
		send:           make(chan []byte, 256),
		hub:            hub,
		addr:           addr,
		closed:         false,
		maxMessageSize: cfg.MaxMessageSize,
		rateLimiter:    limiter,
		rateLimit:      cfg.RateLimit,
	}
}

// ID returns the client's opaque connection identifier.
func (c *Client) ID() string {
	return c.id
}

// GetSendChan returns the client's send channel for reading outgoing messages.
// This channel is read-only from the caller's perspective.
func (c *Client) GetSendChan() <-chan []byte {
	return c.send
}

// Send queues an outbound event for the write pump, satisfying chat.Sink.
// It never blocks: a full buffer or an already-closed channel is reported as
// an error and the event is dropped for this recipient only.
func (c *Client) Send(event chat.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("send channel closed for %s", c.id)
		}
	}()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %q event: %w", event.Name, err)
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return fmt.Errorf("send buffer full for %s", c.id)
	}
}

// setupReadConnection configures read deadlines and pong handler for the WebSocket connection
func (c *Client) setupReadConnection() {
	if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
		log.Printf("Error setting initial read deadline for %s: %v", c.addr, err)
	}
	c.conn.SetPongHandler(func(string) error {
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			log.Printf("Error setting read deadline in pong handler for %s: %v", c.addr, err)
		}
		return nil
	})
}

// handleReadError logs appropriate error messages based on the error type
// and returns true if the read loop should break
func (c *Client) handleReadError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, websocket.ErrReadLimit) {
		log.Printf("Message from %s exceeded maximum size of %d bytes", c.addr, c.maxMessageSize)
		return true
	}

	if websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseAbnormalClosure) {
		log.Printf("Client %s disconnected: %v", c.addr, err)
		return true
	}

	if errors.Is(err, io.EOF) || isExpectedCloseError(err) {
		log.Printf("Client %s connection closed: %v", c.addr, err)
		return true
	}

	if websocket.IsUnexpectedCloseError(err,
		websocket.CloseGoingAway,
		websocket.CloseAbnormalClosure,
		websocket.CloseMessageTooBig) {
		log.Printf("Unexpected WebSocket error from %s: %v", c.addr, err)
		return true
	}

	log.Printf("WebSocket read error from %s: %v", c.addr, err)
	return true
}

// checkRateLimit verifies if the client has exceeded rate limits
// and returns true if the message should be processed
func (c *Client) checkRateLimit() bool {
	if c.rateLimiter != nil && !c.rateLimiter.allow() {
		log.Printf("Rate limit exceeded for %s (%d messages per %s); discarding message", c.addr, c.rateLimit.Burst, c.rateLimit.RefillInterval)
		return false
	}
	return true
}

// dispatchFrame decodes an inbound frame and routes it to the matching chat
// coordinator entry point. Unknown events and undecodable payloads are logged
// and dropped; the coordinator reports its own validation errors back to the
// client, so dispatch ignores them here.
func (c *Client) dispatchFrame(raw []byte) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		log.Printf("Invalid frame from %s: %v", c.addr, err)
		return
	}

	coordinator := c.hub.Coordinator()

	switch frame.Event {
	case chat.EventJoinRoom:
		var req JoinRoomRequest
		if err := json.Unmarshal(frame.Data, &req); err != nil {
			log.Printf("Invalid joinRoom payload from %s: %v", c.addr, err)
			return
		}
		_ = coordinator.JoinRoom(c.id, req.Username, req.Room)

	case chat.EventChatMessage:
		var req ChatMessageRequest
		if err := json.Unmarshal(frame.Data, &req); err != nil {
			log.Printf("Invalid chatMessage payload from %s: %v", c.addr, err)
			return
		}
		_ = coordinator.ChatMessage(c.id, req.Text)

	case chat.EventTyping:
		_ = coordinator.Typing(c.id)

	case chat.EventStopTyping:
		_ = coordinator.StopTyping(c.id)

	default:
		log.Printf("Unknown event %q from %s", frame.Event, c.addr)
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		if err := c.conn.Close(); err != nil {
			if !isExpectedCloseError(err) {
				log.Printf("Error closing connection in readPump: %v", err)
			}
		}
	}()

	c.setupReadConnection()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if c.handleReadError(err) {
				break
			}
		}

		if !c.checkRateLimit() {
			continue
		}

		c.dispatchFrame(raw)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.closeConnection()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !c.handleMessage(message, ok) {
				return
			}
		case <-ticker.C:
			if !c.handlePing() {
				return
			}
		}
	}
}

// closeConnection safely closes the WebSocket connection with proper error handling
func (c *Client) closeConnection() {
	if err := c.conn.Close(); err != nil {
		if !isExpectedCloseError(err) {
			log.Printf("Error closing connection in writePump: %v", err)
		}
	}
}

// handleMessage writes one outgoing message, draining any queued frames into
// the same write. Returns false when the connection should be closed.
func (c *Client) handleMessage(message []byte, ok bool) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		log.Printf("Error setting write deadline for %s: %v", c.addr, err)
		return false
	}

	if !ok {
		if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
			if !isExpectedCloseError(err) {
				log.Printf("Error writing close message to %s: %v", c.addr, err)
			}
		}
		return false
	}

	w, err := c.conn.NextWriter(websocket.TextMessage)
	if err != nil {
		log.Printf("Error creating writer for %s: %v", c.addr, err)
		return false
	}

	if _, err := w.Write(message); err != nil {
		log.Printf("Error writing message to %s: %v", c.addr, err)
		return false
	}

	// Flush whatever queued up behind this frame, one frame per line.
	n := len(c.send)
	for i := 0; i < n; i++ {
		if _, err := w.Write([]byte{'\n'}); err != nil {
			log.Printf("Error writing newline to %s: %v", c.addr, err)
			return false
		}
		if _, err := w.Write(<-c.send); err != nil {
			log.Printf("Error writing queued message to %s: %v", c.addr, err)
			return false
		}
	}

	if err := w.Close(); err != nil {
		log.Printf("Error closing writer for %s: %v", c.addr, err)
		return false
	}
	return true
}

// handlePing sends a ping message to keep the connection alive
func (c *Client) handlePing() bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		log.Printf("Error setting write deadline for ping to %s: %v", c.addr, err)
		return false
	}
	if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		log.Printf("Error writing ping message to %s: %v", c.addr, err)
		return false
	}
	return true
}
