package handlers

import (
	"family_tasks/internal/http/middleware"
	"family_tasks/internal/repository"
	"family_tasks/internal/service"
	"family_tasks/internal/ws"

	"github.com/gin-gonic/gin"
)

// Publisher receives change events after successful mutations.
type Publisher interface {
	Publish(ev ws.Event)
}

// HandlerConfig holds the cookie and websocket settings
type HandlerConfig struct {
	CookieSecure   bool
	AllowedOrigins []string
}

type Handler struct {
	Store  repository.Store
	Auth   *service.AuthService
	Hub    *ws.Hub
	events Publisher
	cfg    HandlerConfig
}

func NewHandler(store repository.Store, auth *service.AuthService, hub *ws.Hub, cfg HandlerConfig) *Handler {
	h := &Handler{
		Store: store,
		Auth:  auth,
		Hub:   hub,
		cfg:   cfg,
	}
	if hub != nil {
		h.events = hub
	}
	return h
}

func (h *Handler) publish(ev ws.Event) {
	if h.events != nil {
		h.events.Publish(ev)
	}
}

// getUserID извлекает user_id из контекста Gin
func getUserID(c *gin.Context) (int64, bool) {
	return middleware.UserID(c)
}
