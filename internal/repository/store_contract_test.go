package repository

import (
	"context"
	"testing"

	"family_tasks/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behaviour every Store implementation shares.
// Usernames carry a prefix so the Postgres run can reuse a database.
func runStoreContract(t *testing.T, s Store, prefix string) {
	ctx := context.Background()

	t.Run("create list defaults", func(t *testing.T) {
		l, err := s.CreateList(ctx, domain.NewList{Name: "Groceries"})
		require.NoError(t, err)
		assert.NotZero(t, l.ID)
		assert.Equal(t, "Groceries", l.Name)
		assert.Nil(t, l.Description)
		assert.Nil(t, l.UserID)

		got, err := s.GetList(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, l.ID, got.ID)
		assert.Nil(t, got.Description)
	})

	t.Run("create task defaults", func(t *testing.T) {
		l, err := s.CreateList(ctx, domain.NewList{Name: "Chores"})
		require.NoError(t, err)

		task, err := s.CreateTask(ctx, domain.NewTask{ListID: l.ID, Description: "vacuum"})
		require.NoError(t, err)
		assert.NotZero(t, task.ID)
		assert.Equal(t, l.ID, task.ListID)
		assert.False(t, task.Completed)
		assert.Equal(t, domain.LevelMedium, task.Urgency)
		assert.Equal(t, domain.LevelMedium, task.Importance)
		assert.Nil(t, task.AssignedTo)
		assert.Nil(t, task.Notes)
	})

	t.Run("create task on missing list", func(t *testing.T) {
		_, err := s.CreateTask(ctx, domain.NewTask{ListID: 987654321, Description: "orphan"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("patch completed only", func(t *testing.T) {
		l, err := s.CreateList(ctx, domain.NewList{Name: "Weekend", Description: domain.Some("fun stuff")})
		require.NoError(t, err)
		task, err := s.CreateTask(ctx, domain.NewTask{
			ListID:      l.ID,
			Description: "mow lawn",
			Notes:       domain.Some("front and back"),
			AssignedTo:  domain.Some("Sam"),
			Urgency:     domain.LevelHigh,
			Importance:  domain.LevelLow,
		})
		require.NoError(t, err)

		done := true
		patch := domain.TaskPatch{Completed: &done}
		first, err := s.UpdateTask(ctx, task.ID, patch)
		require.NoError(t, err)
		second, err := s.UpdateTask(ctx, task.ID, patch)
		require.NoError(t, err)

		for _, got := range []*domain.Task{first, second} {
			assert.True(t, got.Completed)
			assert.Equal(t, "mow lawn", got.Description)
			require.NotNil(t, got.Notes)
			assert.Equal(t, "front and back", *got.Notes)
			require.NotNil(t, got.AssignedTo)
			assert.Equal(t, "Sam", *got.AssignedTo)
			assert.Equal(t, domain.LevelHigh, got.Urgency)
			assert.Equal(t, domain.LevelLow, got.Importance)
			assert.Equal(t, l.ID, got.ListID)
		}

		cleared, err := s.UpdateTask(ctx, task.ID, domain.TaskPatch{AssignedTo: domain.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, cleared.AssignedTo)
		require.NotNil(t, cleared.Notes)

		same, err := s.UpdateTask(ctx, task.ID, domain.TaskPatch{})
		require.NoError(t, err)
		assert.Equal(t, cleared.ID, same.ID)
		assert.True(t, same.Completed)
	})

	t.Run("update missing reports not found", func(t *testing.T) {
		done := true
		_, err := s.UpdateTask(ctx, 987654321, domain.TaskPatch{Completed: &done})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		name := "x"
		_, err = s.UpdateList(ctx, 987654321, domain.ListPatch{Name: &name})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = s.UpdateList(ctx, 987654321, domain.ListPatch{})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = s.GetTask(ctx, 987654321)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update list", func(t *testing.T) {
		l, err := s.CreateList(ctx, domain.NewList{Name: "Trip", Description: domain.Some("pack")})
		require.NoError(t, err)

		name := "Summer trip"
		got, err := s.UpdateList(ctx, l.ID, domain.ListPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Summer trip", got.Name)
		require.NotNil(t, got.Description)
		assert.Equal(t, "pack", *got.Description)

		got, err = s.UpdateList(ctx, l.ID, domain.ListPatch{Description: domain.Null[string]()})
		require.NoError(t, err)
		assert.Equal(t, "Summer trip", got.Name)
		assert.Nil(t, got.Description)
	})

	t.Run("delete list cascades to tasks", func(t *testing.T) {
		l, err := s.CreateList(ctx, domain.NewList{Name: "Temp"})
		require.NoError(t, err)
		other, err := s.CreateList(ctx, domain.NewList{Name: "Keep"})
		require.NoError(t, err)

		for _, d := range []string{"a", "b", "c"} {
			_, err := s.CreateTask(ctx, domain.NewTask{ListID: l.ID, Description: d})
			require.NoError(t, err)
		}
		kept, err := s.CreateTask(ctx, domain.NewTask{ListID: other.ID, Description: "stay"})
		require.NoError(t, err)

		tasks, err := s.ListTasks(ctx, l.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Less(t, tasks[0].ID, tasks[1].ID)

		require.NoError(t, s.DeleteList(ctx, l.ID))

		tasks, err = s.ListTasks(ctx, l.ID)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)

		_, err = s.GetList(ctx, l.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = s.GetTask(ctx, kept.ID)
		assert.NoError(t, err)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		l, err := s.CreateList(ctx, domain.NewList{Name: "Once"})
		require.NoError(t, err)
		task, err := s.CreateTask(ctx, domain.NewTask{ListID: l.ID, Description: "x"})
		require.NoError(t, err)

		require.NoError(t, s.DeleteTask(ctx, task.ID))
		require.NoError(t, s.DeleteTask(ctx, task.ID))
		require.NoError(t, s.DeleteList(ctx, l.ID))
		require.NoError(t, s.DeleteList(ctx, l.ID))
	})

	t.Run("users", func(t *testing.T) {
		u, err := s.CreateUser(ctx, domain.NewUser{Username: prefix + "alice", PasswordHash: "hash"})
		require.NoError(t, err)
		assert.NotZero(t, u.ID)

		_, err = s.CreateUser(ctx, domain.NewUser{Username: prefix + "alice", PasswordHash: "other"})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)

		byName, err := s.GetUserByUsername(ctx, prefix+"alice")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byName.ID)
		assert.Equal(t, "hash", byName.PasswordHash)

		byID, err := s.GetUser(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, prefix+"alice", byID.Username)

		_, err = s.GetUserByUsername(ctx, prefix+"nobody")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, users)
	})

	t.Run("list ownership recorded", func(t *testing.T) {
		u, err := s.CreateUser(ctx, domain.NewUser{Username: prefix + "owner", PasswordHash: "hash"})
		require.NoError(t, err)

		l, err := s.CreateList(ctx, domain.NewList{Name: "Mine", UserID: &u.ID})
		require.NoError(t, err)
		require.NotNil(t, l.UserID)
		assert.Equal(t, u.ID, *l.UserID)

		lists, err := s.ListLists(ctx)
		require.NoError(t, err)
		for i := 1; i < len(lists); i++ {
			assert.Less(t, lists[i-1].ID, lists[i].ID)
		}
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, s.Ping(ctx))
	})
}
