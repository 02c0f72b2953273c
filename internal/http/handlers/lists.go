package handlers

import (
	"net/http"

	"family_tasks/internal/domain"
	"family_tasks/internal/ws"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListLists(c *gin.Context) {
	lists, err := h.Store.ListLists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (h *Handler) GetList(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	list, err := h.Store.GetList(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateList(c *gin.Context) {
	var req domain.NewList
	if err := decodeStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if userID, ok := getUserID(c); ok {
		req.UserID = &userID
	}

	list, err := h.Store.CreateList(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.publish(ws.Event{Type: ws.EventListCreated, ListID: list.ID, ID: list.ID, Data: list})
	c.JSON(http.StatusOK, list)
}

func (h *Handler) UpdateList(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch domain.ListPatch
	if err := decodeStrict(c, &patch); err != nil {
		respondError(c, err)
		return
	}

	list, err := h.Store.UpdateList(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	if !patch.Empty() {
		h.publish(ws.Event{Type: ws.EventListUpdated, ListID: list.ID, ID: list.ID, Data: list})
	}
	c.JSON(http.StatusOK, list)
}

// DeleteList removes the list and all of its tasks. Missing ids are not an error.
func (h *Handler) DeleteList(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Store.DeleteList(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.publish(ws.Event{Type: ws.EventListDeleted, ListID: id, ID: id})
	c.Status(http.StatusNoContent)
}
