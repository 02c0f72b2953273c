package repository

import (
	"context"
	"fmt"

	"family_tasks/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore composes the per-table repositories over one pool.
type PostgresStore struct {
	pool  *pgxpool.Pool
	users *UserRepository
	lists *ListRepository
	tasks *TaskRepository
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool:  pool,
		users: NewUserRepository(pool),
		lists: NewListRepository(pool),
		tasks: NewTaskRepository(pool),
	}
}

func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

func (s *PostgresStore) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	u := &domain.User{Username: in.Username, PasswordHash: in.PasswordHash}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *PostgresStore) ListLists(ctx context.Context) ([]*domain.List, error) {
	return s.lists.List(ctx)
}

func (s *PostgresStore) GetList(ctx context.Context, id int64) (*domain.List, error) {
	return s.lists.GetByID(ctx, id)
}

func (s *PostgresStore) CreateList(ctx context.Context, in domain.NewList) (*domain.List, error) {
	l := &domain.List{Name: in.Name, Description: in.Description.Ptr(), UserID: in.UserID}
	if err := s.lists.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *PostgresStore) UpdateList(ctx context.Context, id int64, patch domain.ListPatch) (*domain.List, error) {
	return s.lists.Update(ctx, id, patch)
}

// DeleteList removes the tasks first, then the list, in one transaction.
func (s *PostgresStore) DeleteList(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if err := NewTaskRepository(tx).DeleteByList(ctx, id); err != nil {
			return err
		}
		return NewListRepository(tx).Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete list %d: %w", id, err)
	}
	return nil
}

func (s *PostgresStore) ListTasks(ctx context.Context, listID int64) ([]*domain.Task, error) {
	return s.tasks.ListByList(ctx, listID)
}

func (s *PostgresStore) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *PostgresStore) CreateTask(ctx context.Context, in domain.NewTask) (*domain.Task, error) {
	t := in.Build()
	if err := s.tasks.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *PostgresStore) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	return s.tasks.Update(ctx, id, patch)
}

func (s *PostgresStore) DeleteTask(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
