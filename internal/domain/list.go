package domain

import (
	"strings"
	"time"
)

const (
	maxListName        = 200
	maxListDescription = 2000
)

type List struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	UserID      *int64    `db:"user_id" json:"userId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// NewList - payload of POST /api/lists. UserID is filled from the session.
type NewList struct {
	Name        string           `json:"name" binding:"required,max=200"`
	Description Nullable[string] `json:"description"`
	UserID      *int64           `json:"-"`
}

func (l *NewList) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return invalid("name", "is required")
	}
	if tooLong(l.Name, maxListName) {
		return invalid("name", "must be at most 200 characters")
	}
	if l.Description.Valid && tooLong(l.Description.Value, maxListDescription) {
		return invalid("description", "must be at most 2000 characters")
	}
	return nil
}

// ListPatch - sparse update of a list. A null description clears it.
type ListPatch struct {
	Name        *string          `json:"name" binding:"omitempty,max=200"`
	Description Nullable[string] `json:"description"`
}

func (p *ListPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if p.Name != nil && tooLong(*p.Name, maxListName) {
		return invalid("name", "must be at most 200 characters")
	}
	if p.Description.Valid && tooLong(p.Description.Value, maxListDescription) {
		return invalid("description", "must be at most 2000 characters")
	}
	return nil
}

func (p *ListPatch) Empty() bool {
	return p.Name == nil && !p.Description.Set
}

// Apply merges the patch into l.
func (p *ListPatch) Apply(l *List) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Description.Set {
		l.Description = p.Description.Ptr()
	}
}
