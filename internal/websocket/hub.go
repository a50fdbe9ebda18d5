package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cx-tal-miterani/flight-admin-generator/internal/logger"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeSeatsGenerated     MessageType = "seats_generated"
	MessageTypeSchedulesGenerated MessageType = "schedules_generated"
)

// Message represents a WebSocket message
type Message struct {
	Type      MessageType `json:"type"`
	FlightID  string      `json:"flightId"`
	Count     int         `json:"count"`
	Message   string      `json:"message,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// Client represents a WebSocket client connection
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	flightID uuid.UUID
}

// Hub manages WebSocket connections per flight
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	done       chan struct{}
	mu         sync.RWMutex
	log        logger.Logger
}

// NewHub creates a new Hub
func NewHub(log logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run starts the hub's main loop and returns when ctx is done
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.flightID] == nil {
				h.clients[client.flightID] = make(map[*Client]bool)
			}
			h.clients[client.flightID][client] = true
			total := len(h.clients[client.flightID])
			h.mu.Unlock()
			h.log.Debug("WebSocket client registered", "flightId", client.flightID, "total", total)

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.broadcast:
			h.deliver(message)
		}
	}
}

func (h *Hub) deliver(message *Message) {
	flightID, err := uuid.Parse(message.FlightID)
	if err != nil {
		h.log.Warn("Invalid flight ID in broadcast", "flightId", message.FlightID)
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		h.log.Error("Failed to marshal message", "error", err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients[flightID]))
	for c := range h.clients[flightID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	h.log.Debug("Broadcasting message", "type", message.Type, "clients", len(clients), "flightId", message.FlightID)

	for _, client := range clients {
		select {
		case client.send <- data:
		default:
			// Slow consumer
			h.remove(client)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.flightID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.flightID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for flightID, clients := range h.clients {
		for c := range clients {
			close(c.send)
		}
		delete(h.clients, flightID)
	}
}

// BroadcastSeatsGenerated tells clients watching a flight that a seat batch was created
func (h *Hub) BroadcastSeatsGenerated(flightID string, count int) {
	h.publish(&Message{
		Type:      MessageTypeSeatsGenerated,
		FlightID:  flightID,
		Count:     count,
		Message:   "Seat map updated",
		Timestamp: time.Now().UnixMilli(),
	})
}

// BroadcastSchedulesGenerated tells clients watching a flight that schedules were created
func (h *Hub) BroadcastSchedulesGenerated(flightID string, count int) {
	h.publish(&Message{
		Type:      MessageTypeSchedulesGenerated,
		FlightID:  flightID,
		Count:     count,
		Message:   "Flight schedules updated",
		Timestamp: time.Now().UnixMilli(),
	})
}

// publish never blocks the caller; notifications are best effort
func (h *Hub) publish(msg *Message) {
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn("Broadcast queue full, dropping message", "type", msg.Type, "flightId", msg.FlightID)
	}
}

// GetClientCount returns the number of clients watching a flight
func (h *Hub) GetClientCount(flightID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[flightID])
}
