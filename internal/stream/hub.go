package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/osse101/GrowPot_Go/internal/event"
	"github.com/osse101/GrowPot_Go/internal/garden"
	"github.com/osse101/GrowPot_Go/internal/logger"
)

// SnapshotSource provides the snapshot pushed to clients
type SnapshotSource interface {
	Snapshot() garden.Snapshot
}

// Message is one frame sent to stream clients
type Message struct {
	Reason   string          `json:"reason"`
	Snapshot garden.Snapshot `json:"snapshot"`
}

// Hub maintains the set of connected clients and fans snapshots out to them.
type Hub struct {
	source SnapshotSource

	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu  sync.Mutex
	log *slog.Logger
}

// NewHub creates a hub streaming snapshots from source
func NewHub(source SnapshotSource) *Hub {
	return &Hub{
		source:     source,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, sendBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        logger.Component("stream"),
	}
}

// Run is the hub's main loop. It returns when ctx is cancelled, closing
// every client's send channel.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.log.Info(LogMsgHubStopping)
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Debug(LogMsgClientConnected)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Debug(LogMsgClientDropped)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.log.Warn(LogMsgClientTooSlow)
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Subscribe hooks the hub to garden.updated events
func (h *Hub) Subscribe(bus event.Bus) {
	bus.Subscribe(event.GardenUpdated, h.handleGardenUpdated)
}

func (h *Hub) handleGardenUpdated(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.GardenUpdatedPayloadV1](e.Payload)
	if err != nil {
		return err
	}
	h.Broadcast(payload.Reason)
	return nil
}

// Broadcast encodes the current snapshot and queues it for every client.
// When the queue is full the frame is dropped; the next update carries
// the full state anyway.
func (h *Hub) Broadcast(reason string) {
	data, err := h.encode(reason)
	if err != nil {
		h.log.Error(LogMsgSnapshotEncodeErr, "error", err)
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	default:
	}
}

func (h *Hub) encode(reason string) ([]byte, error) {
	return json.Marshal(Message{Reason: reason, Snapshot: h.source.Snapshot()})
}
