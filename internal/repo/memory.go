package repo

import (
	"context"
	"sync"
	"time"

	"github.com/BuzzLyutic/todo-web/internal/model"
)

// MemoryRepo хранит задачи в памяти за мьютексом. Используется в тестах
// хэндлеров и годится как стор для запуска без БД.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	todos  map[int64]model.Todo
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		todos:  make(map[int64]model.Todo),
	}
}

func (m *MemoryRepo) Create(_ context.Context, in model.TodoInput) (model.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	t := model.Todo{
		ID:          m.nextID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     copyDate(in.DueDate),
		IsResolved:  in.IsResolved,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.nextID++ // id никогда не переиспользуются, даже после удаления
	m.todos[t.ID] = t
	return t, nil
}

func (m *MemoryRepo) Get(_ context.Context, id int64) (model.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.todos[id]
	if !ok {
		return model.Todo{}, ErrorNotFound
	}
	return t, nil
}

func (m *MemoryRepo) List(_ context.Context) ([]model.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	todos := make([]model.Todo, 0, len(m.todos))
	for _, t := range m.todos {
		todos = append(todos, t)
	}
	model.SortTodos(todos)
	return todos, nil
}

func (m *MemoryRepo) Update(_ context.Context, id int64, p model.TodoPatch) (model.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.todos[id]
	if !ok {
		return model.Todo{}, ErrorNotFound
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	switch {
	case p.ClearDueDate:
		t.DueDate = nil
	case p.DueDate != nil:
		t.DueDate = copyDate(p.DueDate)
	}
	if p.IsResolved != nil {
		t.IsResolved = *p.IsResolved
	}

	t.UpdatedAt = touch(t.UpdatedAt)
	m.todos[id] = t
	return t, nil
}

func (m *MemoryRepo) Toggle(_ context.Context, id int64) (model.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.todos[id]
	if !ok {
		return model.Todo{}, ErrorNotFound
	}

	t.IsResolved = !t.IsResolved
	t.UpdatedAt = touch(t.UpdatedAt)
	m.todos[id] = t
	return t, nil
}

func (m *MemoryRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.todos[id]; !ok {
		return ErrorNotFound
	}
	delete(m.todos, id)
	return nil
}

// touch гарантирует строгий рост updated_at даже при грубых часах
func touch(prev time.Time) time.Time {
	now := time.Now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func copyDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
