package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rakibul/unibus/internal/app/models"
)

// Hub maintains the set of subscribed clients and fans out notice events
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Channel for outbound notice events
	broadcast chan *NoticeEvent

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to the clients map
	mu sync.RWMutex

	logger zerolog.Logger
}

// NoticeEvent is the payload pushed to subscribers when a notice changes
type NoticeEvent struct {
	// Event type: "published", "updated", "deleted"
	Type string `json:"type"`

	NoticeID int64 `json:"noticeId"`

	Title string `json:"title,omitempty"`

	Content string `json:"content,omitempty"`

	PublishedAt time.Time `json:"publishedAt,omitempty"`

	// Timestamp when the event was emitted
	Timestamp time.Time `json:"timestamp"`
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *NoticeEvent, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and broadcasts
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// PublishNotice queues a "published" event for the given notice.
func (h *Hub) PublishNotice(notice *models.Notice) {
	h.broadcast <- &NoticeEvent{
		Type:        "published",
		NoticeID:    notice.ID,
		Title:       notice.Title,
		Content:     notice.Content,
		PublishedAt: notice.PublishedAt,
		Timestamp:   time.Now(),
	}
}

// UpdateNotice queues an "updated" event for the given notice.
func (h *Hub) UpdateNotice(notice *models.Notice) {
	h.broadcast <- &NoticeEvent{
		Type:        "updated",
		NoticeID:    notice.ID,
		Title:       notice.Title,
		Content:     notice.Content,
		PublishedAt: notice.PublishedAt,
		Timestamp:   time.Now(),
	}
}

// DeleteNotice queues a "deleted" event for the given notice ID.
func (h *Hub) DeleteNotice(noticeID int64) {
	h.broadcast <- &NoticeEvent{
		Type:      "deleted",
		NoticeID:  noticeID,
		Timestamp: time.Now(),
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Int64("userID", client.userID).
		Str("addr", client.conn.RemoteAddr().String()).
		Int("subscribers", len(h.clients)).
		Msg("Notice feed client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		h.logger.Info().
			Int64("userID", client.userID).
			Int("subscribers", len(h.clients)).
			Msg("Notice feed client unregistered")
	}
}

func (h *Hub) broadcastEvent(event *NoticeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Int64("noticeID", event.NoticeID).Msg("Failed to marshal notice event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// Slow consumer, drop it rather than block the hub
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}
