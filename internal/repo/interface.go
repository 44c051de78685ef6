package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-web/internal/model"
)

// TodoRepository определяет интерфейс для работы с задачами
type TodoRepository interface {
	Create(ctx context.Context, in model.TodoInput) (model.Todo, error)
	Get(ctx context.Context, id int64) (model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	Update(ctx context.Context, id int64, p model.TodoPatch) (model.Todo, error)
	Toggle(ctx context.Context, id int64) (model.Todo, error)
	Delete(ctx context.Context, id int64) error
}
