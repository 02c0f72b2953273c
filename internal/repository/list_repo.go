package repository

import (
	"context"
	"fmt"

	"family_tasks/internal/domain"

	"github.com/jackc/pgx/v5"
)

const listColumns = `id, name, description, user_id, created_at`

type ListRepository struct {
	db DBTX
}

func NewListRepository(db DBTX) *ListRepository {
	return &ListRepository{db: db}
}

func scanList(row pgx.Row) (*domain.List, error) {
	var l domain.List
	if err := row.Scan(&l.ID, &l.Name, &l.Description, &l.UserID, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListRepository) List(ctx context.Context) ([]*domain.List, error) {
	rows, err := r.db.Query(ctx, `SELECT `+listColumns+` FROM lists ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*domain.List{}
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, rows.Err()
}

func (r *ListRepository) GetByID(ctx context.Context, id int64) (*domain.List, error) {
	l, err := scanList(r.db.QueryRow(ctx, `SELECT `+listColumns+` FROM lists WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return l, nil
}

func (r *ListRepository) Create(ctx context.Context, l *domain.List) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO lists (name, description, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		l.Name, l.Description, l.UserID,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert list: %w", err)
	}
	return nil
}

// Update applies only the fields present in the patch
func (r *ListRepository) Update(ctx context.Context, id int64, patch domain.ListPatch) (*domain.List, error) {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Description.Set {
		set.add("description", patch.Description.Ptr())
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}

	cols, idArg, args := set.build(id)
	l, err := scanList(r.db.QueryRow(ctx,
		`UPDATE lists SET `+cols+` WHERE id = `+idArg+` RETURNING `+listColumns, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return l, nil
}

func (r *ListRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM lists WHERE id = $1`, id)
	return err
}
