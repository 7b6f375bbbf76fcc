package ws_notify

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kinolog/core/internal/model"
)

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID model.UserID
}

func NewClient(hub *Hub, conn *websocket.Conn, userID model.UserID) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 16),
		userID: userID,
	}
}

// pushPayload mirrors the notification list shape so clients render
// pushed and fetched notifications the same way.
type pushPayload struct {
	ID           int64  `json:"id"`
	Message      string `json:"message"`
	Type         string `json:"type"`
	IsRead       bool   `json:"isRead"`
	CreatedAt    string `json:"createdAt"`
	SenderID     int64  `json:"senderId"`
	SenderName   string `json:"senderName"`
	SenderAvatar string `json:"senderPicture"`
}

// Hub tracks live connections per recipient identity, not per connection:
// a recipient may hold zero or more sockets at once.
type Hub struct {
	mu sync.RWMutex

	recipients map[model.UserID]map[*Client]bool

	logger *slog.Logger
}

func NewHub() *Hub {
	return &Hub{
		recipients: make(map[model.UserID]map[*Client]bool),
		logger:     slog.Default(),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.recipients[client.userID]; !ok {
		h.recipients[client.userID] = make(map[*Client]bool)
	}
	h.recipients[client.userID][client] = true

	h.logger.Info("notification client registered", slog.Int64("user_id", client.userID))
}

func (h *Hub) Remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.recipients[client.userID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)
		}
		if len(clients) == 0 {
			delete(h.recipients, client.userID)
		}
	}

	h.logger.Info("notification client unregistered", slog.Int64("user_id", client.userID))
}

// Dispatch pushes a committed notification to the recipient's live
// connections. Best effort only: no connection means no-op, a slow client
// is dropped rather than blocking the write path. The ledger row is
// already durable, so nothing is lost here, only immediacy.
func (h *Hub) Dispatch(n model.Notification) {
	payload, err := json.Marshal(pushPayload{
		ID:           n.ID,
		Message:      n.Message,
		Type:         n.Type,
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt.Format(time.RFC3339),
		SenderID:     n.SenderID,
		SenderName:   n.SenderName,
		SenderAvatar: n.SenderAvatar,
	})
	if err != nil {
		h.logger.Error("failed to marshal push payload", slog.String("error", err.Error()))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.recipients[n.RecipientID]
	if !ok {
		return
	}

	for client := range clients {
		select {
		case client.send <- payload:
		default:
			close(client.send)
			delete(clients, client)
		}
	}
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.Remove(client)
		client.conn.Close()
	}()

	for {
		_, _, err := client.conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.conn.Close()

	for message := range client.send {
		err := client.conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
}
