package repo

import (
	"context"

	dom "github.com/hotspoon/full-stack-todo-app/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo provides todo persistence. All methods execute exactly one SQL
// statement; existence checks are folded into the statement itself.
type TodoRepo interface {
	Create(ctx context.Context, title string, status bool) (dom.Todo, error)
	GetByID(ctx context.Context, id int64) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	Update(ctx context.Context, id int64, title string, status bool) (dom.Todo, error)
	Delete(ctx context.Context, id int64) error
}

// PGTodoRepo implements TodoRepo with Postgres.
type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

// Create inserts a row and returns it with the database-assigned id and
// last_update (RETURNING, so no second round trip).
func (r *PGTodoRepo) Create(ctx context.Context, title string, status bool) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, status)
		VALUES ($1, $2)
		RETURNING id, title, status, last_update`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, title, status).Scan(
		&t.ID, &t.Title, &t.Status, &t.LastUpdate,
	)
	return t, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	query := `
		SELECT id, title, status, last_update
		FROM todos WHERE id = $1`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Status, &t.LastUpdate,
	)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	query := `
		SELECT id, title, status, last_update
		FROM todos ORDER BY last_update DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.LastUpdate); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update overwrites title and status and refreshes last_update in a single
// conditional statement. pgx.ErrNoRows means the id does not exist.
func (r *PGTodoRepo) Update(ctx context.Context, id int64, title string, status bool) (dom.Todo, error) {
	query := `
		UPDATE todos SET title = $2, status = $3, last_update = NOW()
		WHERE id = $1
		RETURNING id, title, status, last_update`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, title, status).Scan(
		&t.ID, &t.Title, &t.Status, &t.LastUpdate,
	)
	return t, err
}

// Delete removes the row; pgx.ErrNoRows if no row matched.
func (r *PGTodoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
