package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/todo-web/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
)

// Все выборки идут в каноническом порядке: нерешенные раньше решенных,
// затем по сроку (без срока - в конец группы), затем новые первыми.
const todoColumns = "id, title, description, due_date, is_resolved, created_at, updated_at"

type TodoRepo struct { // Репозиторий для работы непосредственно с БД
	pool *pgxpool.Pool
}

func NewTodoRepo(pool *pgxpool.Pool) *TodoRepo { // Конструктор
	return &TodoRepo{
		pool: pool,
	}
}

func (r *TodoRepo) Create(ctx context.Context, in model.TodoInput) (model.Todo, error) {
	var t model.Todo
	err := r.pool.QueryRow(ctx, `
		INSERT INTO todos (title, description, due_date, is_resolved)
		VALUES ($1, $2, $3, $4)
		RETURNING `+todoColumns+`
	`, in.Title, in.Description, in.DueDate, in.IsResolved).Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsResolved, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *TodoRepo) Get(ctx context.Context, id int64) (model.Todo, error) {
	var t model.Todo
	err := r.pool.QueryRow(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1
	`, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsResolved, &t.CreatedAt, &t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TodoRepo) List(ctx context.Context) ([]model.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		ORDER BY is_resolved, due_date ASC NULLS LAST, created_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]model.Todo, 0)
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsResolved, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepo) Update(ctx context.Context, id int64, p model.TodoPatch) (model.Todo, error) {
	var t model.Todo
	err := r.pool.QueryRow(ctx, `
		UPDATE todos
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    due_date = CASE
		        WHEN $4 THEN NULL
		        WHEN $5::date IS NOT NULL THEN $5
		        ELSE due_date
		    END,
		    is_resolved = COALESCE($6, is_resolved),
		    updated_at = now()
		WHERE id = $1
		RETURNING `+todoColumns+`
	`, id, p.Title, p.Description, p.ClearDueDate, p.DueDate, p.IsResolved).Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsResolved, &t.CreatedAt, &t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TodoRepo) Toggle(ctx context.Context, id int64) (model.Todo, error) {
	var t model.Todo
	err := r.pool.QueryRow(ctx, `
		UPDATE todos
		SET is_resolved = NOT is_resolved, updated_at = now()
		WHERE id = $1
		RETURNING `+todoColumns+`
	`, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsResolved, &t.CreatedAt, &t.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TodoRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}
