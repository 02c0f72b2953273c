package ws

import "time"

const (
	// server - client
	MsgReady = "ready"

	EventListCreated = "list.created"
	EventListUpdated = "list.updated"
	EventListDeleted = "list.deleted"
	EventTaskCreated = "task.created"
	EventTaskUpdated = "task.updated"
	EventTaskDeleted = "task.deleted"
)

// Event is pushed to every connected client after a successful mutation.
// Data is the entity after the change, nil for deletes.
type Event struct {
	Type   string    `json:"type"`
	ListID int64     `json:"listId"`
	ID     int64     `json:"id"`
	Data   any       `json:"data"`
	At     time.Time `json:"at"`
}
