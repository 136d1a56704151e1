// Package server coordinates client registration, session teardown, and
// graceful shutdown for the Talkeu WebSocket service via the Hub type.
package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/talkeu/chat-server/internal/chat"
)

// Hub manages all WebSocket client connections and hands lifecycle events to
// the chat coordinator. Registration and unregistration flow through channels
// into a single Run loop; the client map itself is mutex-protected so the
// shutdown path can snapshot it.
type Hub struct {
	coordinator *chat.Coordinator
	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	mutex       sync.RWMutex
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	done        chan struct{}
}

// NewHub creates a Hub wired to a fresh chat coordinator using the currently
// active configuration. The returned Hub is ready once Run is started.
func NewHub() *Hub {
	cfg := currentConfig()
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		coordinator: chat.NewCoordinator(cfg.TypingDebounce, cfg.StopTypingDelay),
		clients:     make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
}

// Coordinator returns the chat coordinator owned by this hub.
func (h *Hub) Coordinator() *chat.Coordinator {
	return h.coordinator
}

// GetRegisterChan returns the channel used for registering new clients to the hub.
// This channel is write-only from the caller's perspective.
func (h *Hub) GetRegisterChan() chan<- *Client {
	return h.register
}

// GetUnregisterChan returns the channel used for unregistering clients from the hub.
// This channel is write-only from the caller's perspective.
func (h *Hub) GetUnregisterChan() chan<- *Client {
	return h.unregister
}

// Run starts the hub's main event loop, handling client registration and
// unregistration. This method should be called in a separate goroutine as it
// runs until Shutdown.
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.shutdownClients()
			return

		case client := <-h.register:
			if client == nil {
				log.Printf("Received nil client registration; skipping")
				continue
			}
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)
		}
	}
}

// registerClient admits a client, attaches its delivery sink to the chat
// coordinator, and launches the pump goroutines.
func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	client.closed = false
	h.clients[client] = true
	clientCount := len(h.clients)
	h.mutex.Unlock()

	h.coordinator.Connect(client.id, client)
	log.Printf("Client %s registered from %s. Total clients: %d", client.id, client.addr, clientCount)

	h.wg.Add(2)
	go func() {
		defer h.wg.Done()
		client.writePump()
	}()
	go func() {
		defer h.wg.Done()
		client.readPump()
	}()
}

// unregisterClient runs session teardown for a departing client. The chat
// coordinator detaches the sink and broadcasts the leave before the send
// channel closes, so no delivery can race the close.
func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mutex.Unlock()
		return
	}
	delete(h.clients, client)
	client.closed = true
	clientCount := len(h.clients)
	h.mutex.Unlock()

	h.coordinator.Disconnect(client.id)
	close(client.send)
	log.Printf("Client %s unregistered from %s. Total clients: %d", client.id, client.addr, clientCount)
}

// shutdownClients gracefully closes all active client connections.
func (h *Hub) shutdownClients() {
	log.Println("Shutting down all client connections...")

	h.mutex.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mutex.Unlock()

	for _, client := range clients {
		if client.conn != nil {
			if err := client.conn.Close(); err != nil {
				if !isExpectedCloseError(err) {
					log.Printf("Error closing client connection from %s: %v", client.addr, err)
				}
			}
		}
	}

	log.Printf("Closed %d client connections", len(clients))
}

// Shutdown initiates graceful shutdown of the hub and waits for all goroutines to complete.
// It returns after all client connections are closed and goroutines have finished,
// or when the timeout is reached.
func (h *Hub) Shutdown(timeout time.Duration) error {
	log.Println("Initiating hub shutdown...")

	h.cancel()

	// Wait for Run() to complete
	<-h.done

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("Hub shutdown completed successfully")
		return nil
	case <-time.After(timeout):
		log.Println("Hub shutdown timeout reached, some goroutines may still be running")
		return context.DeadlineExceeded
	}
}
