package hub

import (
	"context"
	"sync"

	"github.com/focusframe/focusframe/internal/log"
	"github.com/focusframe/focusframe/pkg/focus"
)

// broadcastDepth bounds the queue between the broadcast loop and the
// hub goroutine. Overflow drops the payload, never blocks the caller.
const broadcastDepth = 64

// Hub tracks the connected subscribers for one websocket endpoint and
// delivers broadcast payloads to each of them. Subscribers that fall
// behind are disconnected: the same lossy-delivery contract the frame
// pipeline uses.
type Hub struct {
	name string // For logging

	broadcast  chan Message
	register   chan *Client
	unregister chan *Client

	// mu guards clients. The hub goroutine mutates the set; other
	// goroutines only read it through ClientCount.
	mu      sync.RWMutex
	clients map[*Client]bool
}

// New creates a hub. Call Run in a goroutine before registering
// clients.
func New(name string) *Hub {
	return &Hub{
		name:       name,
		broadcast:  make(chan Message, broadcastDepth),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run owns the client set until ctx is canceled, at which point all
// remaining subscribers are disconnected and Run returns.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.dropAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			log.Debug("client connected", "hub", h.name, "client", client.ID, "total", count)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			log.Debug("client disconnected", "hub", h.name, "client", client.ID, "remaining", count)

		case msg := <-h.broadcast:
			// Fan-out may evict slow clients, mutating the set, so it
			// takes the write lock
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					close(client.send)
					delete(h.clients, client)
					log.Warn("dropped slow client", "hub", h.name, "client", client.ID)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) dropAll() {
	h.mu.Lock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.mu.Unlock()
	log.Debug("hub stopped", "hub", h.name)
}

// BroadcastStatus queues a snapshot for all subscribers. A full queue
// drops the update; the next tick supersedes it anyway.
func (h *Hub) BroadcastStatus(snap focus.Snapshot) error {
	msg, err := StatusMessage(snap)
	if err != nil {
		return err
	}
	h.send(msg)
	return nil
}

// BroadcastFrame queues an annotated JPEG frame for all subscribers
func (h *Hub) BroadcastFrame(jpeg []byte) {
	h.send(FrameMessage(jpeg))
}

func (h *Hub) send(msg Message) {
	select {
	case h.broadcast <- msg:
	default:
		log.Debug("broadcast queue full, dropping payload", "hub", h.name)
	}
}

// ClientCount returns the number of connected subscribers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
