package middleware

import (
	"errors"
	"net/http"
	"strings"

	"family_tasks/internal/logger"
	"family_tasks/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "family_session"

	ctxUserID    = "user_id"
	ctxSessionID = "session_id"
)

// Session rejects the request with 401 unless it carries a valid session,
// either as the session cookie or as a Bearer token.
func Session(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.Authenticate(c.Request.Context(), sessionToken(c))
		if errors.Is(err, service.ErrUnauthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if err != nil {
			logger.WithContext(c.Request.Context()).Error("session lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxSessionID, claims.SessionID)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if v, err := c.Cookie(SessionCookie); err == nil {
		return v
	}
	return ""
}

// UserID returns the user of the current session
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}
