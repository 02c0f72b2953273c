package ws

import (
	"time"

	"family_tasks/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second

	sendBuffer = 64
)

type Client struct {
	UserID    int64
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte

	hub *Hub
}

func NewClient(userID int64, sessionID string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		UserID:    userID,
		SessionID: sessionID,
		Conn:      conn,
		Send:      make(chan []byte, sendBuffer),
		hub:       hub,
	}
}

// Run registers the client and blocks until the connection goes away.
func (c *Client) Run() {
	if !c.hub.Register(c) {
		_ = c.Conn.Close()
		return
	}

	// стартуем writer до ready, чтобы клиент мог его дождаться
	go c.writePump()
	select {
	case c.Send <- []byte(`{"type":"` + MsgReady + `"}`):
	default:
	}

	c.readPump()
}

// read: incoming messages are ignored, the loop only keeps deadlines alive
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("ws read error", "user_id", c.UserID, "error", err)
			}
			return
		}
	}
}

//write
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("ws write error", "user_id", c.UserID, "error", err)
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
