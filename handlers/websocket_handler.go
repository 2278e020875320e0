package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/cricket-tournament/events"
	"github.com/Dosada05/cricket-tournament/models"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var knownRooms = map[string]bool{
	events.RoomAll:                true,
	string(models.KindTournament): true,
	string(models.KindTeam):       true,
	string(models.KindPlayer):     true,
	string(models.KindMatch):      true,
}

type WebSocketHandler struct {
	hub      *events.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWebSocketHandler accepts the same origin list as the CORS middleware;
// "*" allows any origin.
func NewWebSocketHandler(hub *events.Hub, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}

// ServeWs подписывает клиента на ленту изменений.
// Клиент подключается к /ws/events или /ws/events/{kind}.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	room := chi.URLParam(r, "kind")
	if room == "" {
		room = events.RoomAll
	}
	if !knownRooms[room] {
		http.NotFound(w, r)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отправляет HTTP ошибку клиенту.
		h.logger.Warn("failed to upgrade connection", slog.String("room", room), slog.Any("error", err))
		return
	}

	client := events.NewClient(h.hub, conn, room)
	if !h.hub.Subscribe(client) {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()

	h.logger.Debug("websocket client subscribed", slog.String("room", room))
}
