// internal/websocket/hub.go
package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"crmdemo-service/internal/domain/demo"
	"crmdemo-service/internal/simulation"

	"go.uber.org/zap"
)

// WSMessage is the wire format pushed to browser subscribers.
type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewMessage(eventType string, data interface{}) *WSMessage {
	return &WSMessage{Type: eventType, Data: data, Timestamp: time.Now()}
}

// forwardedEvents are the bus channels relayed to websocket clients.
var forwardedEvents = []demo.Event{
	demo.EventNewMessage,
	demo.EventNewLead,
	demo.EventDealMoved,
	demo.EventHotLead,
	demo.EventMeetingScheduled,
	demo.EventNewActivity,
	demo.EventKPIsUpdated,
	demo.EventDemoReset,
}

// Hub fans simulation events out to connected browsers. Connections
// are unauthenticated: everything pushed here is fabricated demo data.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	Register   chan *Client
	unregister chan *Client
	broadcast  chan *WSMessage

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *WSMessage, 256),
		logger:     logger,
	}
}

// BindEngine subscribes the hub to every simulation event channel and
// relays each publication. The bus delivers synchronously, so the
// handler only enqueues; a full queue drops the message rather than
// stalling the scheduler tick.
func (h *Hub) BindEngine(engine *simulation.Engine) {
	for _, event := range forwardedEvents {
		event := event
		engine.On(event, func(payload interface{}) {
			select {
			case h.broadcast <- NewMessage(string(event), payload):
			default:
				h.logger.Warn("websocket broadcast queue full, dropping event",
					zap.String("event", string(event)))
			}
		})
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	h.logger.Info("websocket client connected", zap.Int("total", len(h.clients)))

	client.SendMessage(NewMessage("connected", map[string]interface{}{
		"events": forwardedEvents,
	}))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.Close()
		h.logger.Info("websocket client disconnected", zap.Int("total", len(h.clients)))
	}
}

func (h *Hub) broadcastMessage(msg *WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal websocket message", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		client.Send(data)
	}
}

// TotalClients reports the number of live connections.
func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.Close()
	}
	h.clients = make(map[*Client]bool)
}
