package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"family_tasks/internal/domain"
)

// MemoryStore keeps everything in process memory. Rows are copied on the
// way in and out so callers never share state with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[int64]domain.User
	lists  map[int64]domain.List
	tasks  map[int64]domain.Task
	userID int64
	listID int64
	taskID int64
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[int64]domain.User),
		lists: make(map[int64]domain.List),
		tasks: make(map[int64]domain.Task),
		now:   time.Now,
	}
}

func (s *MemoryStore) GetUser(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) CreateUser(_ context.Context, in domain.NewUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == in.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	s.userID++
	u := domain.User{ID: s.userID, Username: in.Username, PasswordHash: in.PasswordHash, CreatedAt: s.now()}
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemoryStore) ListUsers(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		res = append(res, &u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *MemoryStore) ListLists(_ context.Context) ([]*domain.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.List, 0, len(s.lists))
	for _, l := range s.lists {
		res = append(res, &l)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *MemoryStore) GetList(_ context.Context, id int64) (*domain.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (s *MemoryStore) CreateList(_ context.Context, in domain.NewList) (*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listID++
	l := domain.List{
		ID:          s.listID,
		Name:        in.Name,
		Description: in.Description.Ptr(),
		UserID:      copyInt64(in.UserID),
		CreatedAt:   s.now(),
	}
	s.lists[l.ID] = l
	return &l, nil
}

func (s *MemoryStore) UpdateList(_ context.Context, id int64, patch domain.ListPatch) (*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	patch.Apply(&l)
	s.lists[id] = l
	return &l, nil
}

// DeleteList holds the lock across both steps so no task of the list survives it.
func (s *MemoryStore) DeleteList(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for taskID, t := range s.tasks {
		if t.ListID == id {
			delete(s.tasks, taskID)
		}
	}
	delete(s.lists, id)
	return nil
}

func (s *MemoryStore) ListTasks(_ context.Context, listID int64) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []*domain.Task{}
	for _, t := range s.tasks {
		if t.ListID == listID {
			res = append(res, &t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *MemoryStore) GetTask(_ context.Context, id int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStore) CreateTask(_ context.Context, in domain.NewTask) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[in.ListID]; !ok {
		return nil, domain.ErrNotFound
	}
	t := in.Build()
	s.taskID++
	t.ID = s.taskID
	t.CreatedAt = s.now()
	s.tasks[t.ID] = t
	return &t, nil
}

func (s *MemoryStore) UpdateTask(_ context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	patch.Apply(&t)
	s.tasks[id] = t
	return &t, nil
}

func (s *MemoryStore) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tasks, id)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() {}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
