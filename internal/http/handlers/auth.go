package handlers

import (
	"net/http"
	"time"

	"family_tasks/internal/domain"
	"family_tasks/internal/http/middleware"
	"family_tasks/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) setSessionCookie(c *gin.Context, sess *service.Session) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, sess.Token, maxAge, "/", "", h.cfg.CookieSecure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cfg.CookieSecure, true)
}

// Register creates the account and signs the new user in.
func (h *Handler) Register(c *gin.Context) {
	var req domain.Credentials
	if err := decodeStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}

	user, sess, err := h.Auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, sess)
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req domain.Credentials
	if err := decodeStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}

	user, sess, err := h.Auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, sess)
	c.JSON(http.StatusOK, user)
}

func (h *Handler) Logout(c *gin.Context) {
	sid := middleware.SessionID(c)
	if err := h.Auth.Logout(c.Request.Context(), sid); err != nil {
		respondError(c, err)
		return
	}
	// the event stream of a revoked session goes too
	if h.Hub != nil {
		h.Hub.DisconnectSession(sid)
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CurrentUser - GET /api/user
func (h *Handler) CurrentUser(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.Auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
