package handlers

import (
	"net/http"
	"sync"
	"time"

	"election-board/internal/api/interfaces"
	"election-board/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Results feed is public; origin filtering happens at the CORS layer
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WebSocketMessage represents a message sent over WebSocket
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// Hub fans tick updates out to every connected WebSocket client. A client
// that cannot keep up with the broadcast rate is dropped.
type Hub struct {
	clients map[chan WebSocketMessage]struct{}
	mutex   sync.RWMutex
	log     *logger.Logger
}

// NewHub creates an empty broadcast hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[chan WebSocketMessage]struct{}),
		log:     log.WithComponent("websocket"),
	}
}

// Broadcast sends a message to every connected client.
func (h *Hub) Broadcast(messageType string, data interface{}) {
	msg := WebSocketMessage{
		Type:      messageType,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	for clientChan := range h.clients {
		select {
		case clientChan <- msg:
		default:
			// Slow client, skip this message rather than block the tick
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) register() chan WebSocketMessage {
	clientChan := make(chan WebSocketMessage, 100)
	h.mutex.Lock()
	h.clients[clientChan] = struct{}{}
	h.mutex.Unlock()
	return clientChan
}

func (h *Hub) unregister(clientChan chan WebSocketMessage) {
	h.mutex.Lock()
	delete(h.clients, clientChan)
	h.mutex.Unlock()
}

// UpdatesWebSocket streams live tick updates to a client
func UpdatesWebSocket(hub *Hub, services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			services.GetLogger().Error("WebSocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		services.GetLogger().Info("WebSocket connection established - client_ip: %s", c.ClientIP())

		clientChan := hub.register()
		defer hub.unregister(clientChan)

		// Discard incoming messages but keep the read side alive so pongs
		// and close frames are processed.
		done := make(chan struct{})
		go func() {
			defer close(done)
			conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			conn.SetPongHandler(func(string) error {
				conn.SetReadDeadline(time.Now().Add(60 * time.Second))
				return nil
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
						services.GetLogger().Error("WebSocket error: %v", err)
					}
					return
				}
			}
		}()

		pingTicker := time.NewTicker(30 * time.Second)
		defer pingTicker.Stop()

		for {
			select {
			case msg := <-clientChan:
				conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := conn.WriteJSON(msg); err != nil {
					services.GetLogger().Info("WebSocket client disconnected")
					return
				}

			case <-pingTicker.C:
				conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}

			case <-done:
				services.GetLogger().Info("WebSocket client disconnected")
				return

			case <-c.Request.Context().Done():
				return
			}
		}
	}
}
