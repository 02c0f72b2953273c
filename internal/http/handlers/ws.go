package handlers

import (
	"net/http"
	"net/url"

	"family_tasks/internal/http/middleware"
	"family_tasks/internal/logger"
	"family_tasks/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// checkOrigin allows same-host requests plus the configured origins.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

// Events upgrades to a websocket that streams list/task change events.
func (h *Handler) Events(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if h.Hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "events unavailable"})
		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: h.checkOrigin}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithContext(c.Request.Context()).Warn("ws upgrade error", "error", err)
		return
	}

	ws.NewClient(userID, middleware.SessionID(c), conn, h.Hub).Run()
}
