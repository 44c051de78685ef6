package service

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BuzzLyutic/todo-web/internal/model"
	"github.com/BuzzLyutic/todo-web/internal/repo"
)

const (
	maxTitleLen = 255
	dateLayout  = "2006-01-02"
)

// ValidationError перечисляет отвергнутые поля формы с сообщениями
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// ParseTodoForm validates raw form values and converts them into a
// TodoInput. Pure function: no side effects, no repository access.
// The title length bound is enforced here on every write path.
func ParseTodoForm(f model.TodoForm) (model.TodoInput, error) {
	fields := make(map[string]string)

	if f.Title == "" {
		fields["title"] = "This field is required."
	} else if utf8.RuneCountInString(f.Title) > maxTitleLen {
		fields["title"] = "Ensure this value has at most 255 characters."
	}

	var due *time.Time
	if f.DueDate != "" {
		d, err := time.Parse(dateLayout, f.DueDate)
		if err != nil {
			fields["due_date"] = "Enter a valid date (YYYY-MM-DD)."
		} else {
			due = &d
		}
	}

	resolved := false
	if f.IsResolved != "" {
		switch strings.ToLower(f.IsResolved) {
		case "on", "true", "1":
			resolved = true
		case "off", "false", "0":
			resolved = false
		default:
			fields["is_resolved"] = "Enter a valid boolean value."
		}
	}

	if len(fields) > 0 {
		return model.TodoInput{}, &ValidationError{Fields: fields}
	}

	return model.TodoInput{
		Title:       f.Title,
		Description: f.Description,
		DueDate:     due,
		IsResolved:  resolved,
	}, nil
}

type TodoService struct {
	repo repo.TodoRepository
}

func NewTodoService(repo repo.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, f model.TodoForm) (model.Todo, error) {
	in, err := ParseTodoForm(f)
	if err != nil {
		return model.Todo{}, err
	}
	return s.repo.Create(ctx, in)
}

func (s *TodoService) Get(ctx context.Context, id int64) (model.Todo, error) {
	return s.repo.Get(ctx, id)
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	return s.repo.List(ctx)
}

// Update заменяет все четыре поля значениями из формы. Несуществующий
// id проверяется до валидации, чтобы отдать 404, а не ошибки формы.
func (s *TodoService) Update(ctx context.Context, id int64, f model.TodoForm) (model.Todo, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return model.Todo{}, err
	}

	in, err := ParseTodoForm(f)
	if err != nil {
		return model.Todo{}, err
	}

	patch := model.TodoPatch{
		Title:       &in.Title,
		Description: &in.Description,
		IsResolved:  &in.IsResolved,
	}
	if in.DueDate != nil {
		patch.DueDate = in.DueDate
	} else {
		patch.ClearDueDate = true
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *TodoService) Toggle(ctx context.Context, id int64) (model.Todo, error) {
	return s.repo.Toggle(ctx, id)
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
