package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Dosada05/cricket-tournament/models"
)

// RoomAll receives every change event regardless of entity kind.
const RoomAll = "all"

type WebSocketMessage struct {
	Type    string `json:"type"`              // Тип сообщения, например "team.updated"
	ID      int64  `json:"id"`                // ID изменённой записи
	Payload any    `json:"payload,omitempty"` // Запись после изменения; пусто для удаления
	RoomID  string `json:"room_id,omitempty"`
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run processes registrations until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.Room]; !ok {
				h.rooms[client.Room] = make(map[*Client]bool)
			}
			h.rooms[client.Room][client] = true
			size := len(h.rooms[client.Room])
			h.mu.Unlock()
			h.logger.Debug("client registered", slog.String("room", client.Room), slog.Int("clients", size))

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()
		}
	}
}

// Subscribe hands client to the running hub. It returns false once the hub
// has stopped.
func (h *Hub) Subscribe(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unsubscribe(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) removeLocked(client *Client) {
	room, ok := h.rooms[client.Room]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}
	client.close()
	delete(room, client)
	if len(room) == 0 {
		delete(h.rooms, client.Room)
		h.logger.Debug("room closed as it's empty", slog.String("room", client.Room))
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range h.rooms {
		for client := range room {
			client.close()
		}
	}
	h.rooms = make(map[string]map[*Client]bool)
}

// ClientCount returns the number of clients subscribed to room.
func (h *Hub) ClientCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Publish implements services.Notifier.
func (h *Hub) Publish(ctx context.Context, event models.ChangeEvent) {
	msg := WebSocketMessage{
		Type:    event.Type(),
		ID:      event.ID,
		Payload: event.Payload,
	}
	msg.RoomID = RoomAll
	h.BroadcastToRoom(RoomAll, msg)
	msg.RoomID = string(event.Kind)
	h.BroadcastToRoom(string(event.Kind), msg)
}

// BroadcastToRoom отправляет сообщение всем клиентам в указанной комнате.
// Clients whose send buffer is full are skipped.
func (h *Hub) BroadcastToRoom(roomID string, message any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	roomClients, ok := h.rooms[roomID]
	if !ok {
		return
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal message", slog.String("room", roomID), slog.Any("error", err))
		return
	}

	for client := range roomClients {
		if !client.trySend(messageBytes) {
			h.logger.Warn("client send channel full or closed, skipping", slog.String("room", roomID))
		}
	}
}
