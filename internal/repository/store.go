package repository

import (
	"context"

	"family_tasks/internal/domain"
)

// Store is the storage-access interface used by the HTTP layer.
//
// Get and Update report domain.ErrNotFound for a missing id; Delete treats a
// missing id as success. DeleteList removes the list's tasks before the list.
type Store interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)

	ListLists(ctx context.Context) ([]*domain.List, error)
	GetList(ctx context.Context, id int64) (*domain.List, error)
	CreateList(ctx context.Context, in domain.NewList) (*domain.List, error)
	UpdateList(ctx context.Context, id int64, patch domain.ListPatch) (*domain.List, error)
	DeleteList(ctx context.Context, id int64) error

	ListTasks(ctx context.Context, listID int64) ([]*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	CreateTask(ctx context.Context, in domain.NewTask) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
	Close()
}
