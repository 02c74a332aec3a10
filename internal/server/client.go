package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"delve-server/internal/engine"
	"delve-server/pkg/api"
	"delve-server/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и GameSession.
type Client struct {
	ID      string
	Session *engine.GameSession
	Conn    *websocket.Conn
	Inbox   chan api.ServerResponse
}

func NewClient(session *engine.GameSession, conn *websocket.Conn) *Client {
	id := uuid.NewString()
	return &Client{
		ID:      id,
		Session: session,
		Conn:    conn,
		// Клиент подписывается на хаб и получает все снимки ходов
		Inbox: session.Hub.Register(id),
	}
}

// readPump читает команды клиента. Каждая команда - один полный ход,
// движок отрабатывает его синхронно и рассылает снимок через хаб.
func (c *Client) readPump() {
	defer func() {
		c.Session.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		logger.Log.WithField("client_id", c.ID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).Warn("websocket read error")
			}
			return
		}

		var cmd api.ClientCommand
		if err := json.Unmarshal(raw, &cmd); err != nil {
			logger.Log.WithError(err).Warn("malformed client command")
			continue
		}

		// INIT возвращает снимок только этому клиенту
		resp := c.Session.ProcessCommand(cmd)
		if resp.Type == "INIT" {
			select {
			case c.Inbox <- resp:
			default:
			}
		}
	}
}

// writePump пишет снимки из личного канала в сокет.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	for {
		select {
		case msg, ok := <-c.Inbox:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				// Хаб закрыл канал
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(msg); err != nil {
				logger.Log.WithError(err).Warn("websocket write error")
				return
			}
		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
