package handlers

import (
	"errors"
	"net/http"

	"family_tasks/internal/domain"
	"family_tasks/internal/ws"

	"github.com/gin-gonic/gin"
)

// ListTasks returns the tasks of a list; an unknown list yields an empty array.
func (h *Handler) ListTasks(c *gin.Context) {
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}

	tasks, err := h.Store.ListTasks(c.Request.Context(), listID)
	if err != nil {
		respondError(c, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c *gin.Context) {
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req domain.NewTask
	if err := decodeStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	req.ListID = listID

	task, err := h.Store.CreateTask(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.publish(ws.Event{Type: ws.EventTaskCreated, ListID: task.ListID, ID: task.ID, Data: task})
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch domain.TaskPatch
	if err := decodeStrict(c, &patch); err != nil {
		respondError(c, err)
		return
	}

	task, err := h.Store.UpdateTask(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	if !patch.Empty() {
		h.publish(ws.Event{Type: ws.EventTaskUpdated, ListID: task.ListID, ID: task.ID, Data: task})
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	// the list id is only needed for the change event
	var listID int64
	task, err := h.Store.GetTask(ctx, id)
	switch {
	case err == nil:
		listID = task.ListID
	case !errors.Is(err, domain.ErrNotFound):
		respondError(c, err)
		return
	}

	if err := h.Store.DeleteTask(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	if task != nil {
		h.publish(ws.Event{Type: ws.EventTaskDeleted, ListID: listID, ID: id})
	}
	c.Status(http.StatusNoContent)
}
