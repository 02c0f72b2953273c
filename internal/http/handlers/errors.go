package handlers

import (
	"errors"
	"net/http"

	"family_tasks/internal/domain"
	"family_tasks/internal/logger"
	"family_tasks/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps an error to its status code. Unknown errors are logged
// and reported as 500 without details.
func respondError(c *gin.Context, err error) {
	if msg, ok := validationMessage(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrUsernameTaken.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	default:
		logger.WithContext(c.Request.Context()).Error("request failed",
			"method", c.Request.Method, "route", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
