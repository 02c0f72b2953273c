package handlers

import (
	"net/http"

	"family_tasks/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListUsers returns id and username of every family member, for the assignee picker.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		res = append(res, u.Public())
	}
	c.JSON(http.StatusOK, res)
}
