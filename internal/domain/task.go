package domain

import (
	"strings"
	"time"
)

const (
	maxTaskDescription = 500
	maxTaskNotes       = 5000
	maxAssignee        = 100
)

type Task struct {
	ID          int64     `db:"id" json:"id"`
	ListID      int64     `db:"list_id" json:"listId"`
	Description string    `db:"description" json:"description"`
	Notes       *string   `db:"notes" json:"notes"`
	Completed   bool      `db:"completed" json:"completed"`
	AssignedTo  *string   `db:"assigned_to" json:"assignedTo"`
	Urgency     Level     `db:"urgency" json:"urgency"`
	Importance  Level     `db:"importance" json:"importance"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// NewTask - payload of POST /api/lists/:id/tasks. ListID comes from the path.
type NewTask struct {
	ListID      int64            `json:"-"`
	Description string           `json:"description" binding:"required,max=500"`
	Notes       Nullable[string] `json:"notes"`
	AssignedTo  Nullable[string] `json:"assignedTo"`
	Urgency     Level            `json:"urgency" binding:"omitempty,oneof=low medium high"`
	Importance  Level            `json:"importance" binding:"omitempty,oneof=low medium high"`
}

func (t *NewTask) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return invalid("description", "is required")
	}
	if tooLong(t.Description, maxTaskDescription) {
		return invalid("description", "must be at most 500 characters")
	}
	if t.Notes.Valid && tooLong(t.Notes.Value, maxTaskNotes) {
		return invalid("notes", "must be at most 5000 characters")
	}
	if t.AssignedTo.Valid && tooLong(t.AssignedTo.Value, maxAssignee) {
		return invalid("assignedTo", "must be at most 100 characters")
	}
	if t.Urgency != "" && !t.Urgency.Valid() {
		return invalid("urgency", "must be one of low medium high")
	}
	if t.Importance != "" && !t.Importance.Valid() {
		return invalid("importance", "must be one of low medium high")
	}
	return nil
}

// Build returns the task a store persists for this payload, with defaults applied.
func (t *NewTask) Build() Task {
	task := Task{
		ListID:      t.ListID,
		Description: t.Description,
		Notes:       t.Notes.Ptr(),
		Urgency:     t.Urgency.OrDefault(),
		Importance:  t.Importance.OrDefault(),
	}
	if t.AssignedTo.Valid && strings.TrimSpace(t.AssignedTo.Value) != "" {
		task.AssignedTo = t.AssignedTo.Ptr()
	}
	return task
}

// TaskPatch - sparse update of a task. null clears notes and assignedTo.
type TaskPatch struct {
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Notes       Nullable[string] `json:"notes"`
	AssignedTo  Nullable[string] `json:"assignedTo"`
	Completed   *bool            `json:"completed"`
	Urgency     *Level           `json:"urgency" binding:"omitempty,oneof=low medium high"`
	Importance  *Level           `json:"importance" binding:"omitempty,oneof=low medium high"`
}

func (p *TaskPatch) Validate() error {
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return invalid("description", "must not be empty")
	}
	if p.Description != nil && tooLong(*p.Description, maxTaskDescription) {
		return invalid("description", "must be at most 500 characters")
	}
	if p.Notes.Valid && tooLong(p.Notes.Value, maxTaskNotes) {
		return invalid("notes", "must be at most 5000 characters")
	}
	if p.AssignedTo.Valid && tooLong(p.AssignedTo.Value, maxAssignee) {
		return invalid("assignedTo", "must be at most 100 characters")
	}
	if p.Urgency != nil && !p.Urgency.Valid() {
		return invalid("urgency", "must be one of low medium high")
	}
	if p.Importance != nil && !p.Importance.Valid() {
		return invalid("importance", "must be one of low medium high")
	}
	return nil
}

func (p *TaskPatch) Empty() bool {
	return p.Description == nil && !p.Notes.Set && !p.AssignedTo.Set &&
		p.Completed == nil && p.Urgency == nil && p.Importance == nil
}

// Apply merges the patch into t.
func (p *TaskPatch) Apply(t *Task) {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Notes.Set {
		t.Notes = p.Notes.Ptr()
	}
	if p.AssignedTo.Set {
		t.AssignedTo = p.AssignedTo.Ptr()
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Urgency != nil {
		t.Urgency = *p.Urgency
	}
	if p.Importance != nil {
		t.Importance = *p.Importance
	}
}
