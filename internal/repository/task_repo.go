package repository

import (
	"context"
	"fmt"

	"family_tasks/internal/domain"

	"github.com/jackc/pgx/v5"
)

const taskColumns = `id, list_id, description, notes, completed, assigned_to, urgency, importance, created_at`

type TaskRepository struct {
	db DBTX
}

func NewTaskRepository(db DBTX) *TaskRepository {
	return &TaskRepository{db: db}
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	var urgency, importance string
	if err := row.Scan(&t.ID, &t.ListID, &t.Description, &t.Notes, &t.Completed,
		&t.AssignedTo, &urgency, &importance, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Urgency = domain.Level(urgency)
	t.Importance = domain.Level(importance)
	return &t, nil
}

// ListByList returns the tasks of one list ordered by id
func (r *TaskRepository) ListByList(ctx context.Context, listID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE list_id = $1 ORDER BY id`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	t, err := scanTask(r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (list_id, description, notes, completed, assigned_to, urgency, importance)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		t.ListID, t.Description, t.Notes, t.Completed, t.AssignedTo, string(t.Urgency), string(t.Importance),
	).Scan(&t.ID, &t.CreatedAt)
	if pgCode(err) == pgForeignKeyViolation {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// Update applies only the fields present in the patch
func (r *TaskRepository) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	var set setClause
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.Notes.Set {
		set.add("notes", patch.Notes.Ptr())
	}
	if patch.AssignedTo.Set {
		set.add("assigned_to", patch.AssignedTo.Ptr())
	}
	if patch.Completed != nil {
		set.add("completed", *patch.Completed)
	}
	if patch.Urgency != nil {
		set.add("urgency", string(*patch.Urgency))
	}
	if patch.Importance != nil {
		set.add("importance", string(*patch.Importance))
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}

	cols, idArg, args := set.build(id)
	t, err := scanTask(r.db.QueryRow(ctx,
		`UPDATE tasks SET `+cols+` WHERE id = `+idArg+` RETURNING `+taskColumns, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func (r *TaskRepository) DeleteByList(ctx context.Context, listID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE list_id = $1`, listID)
	return err
}
