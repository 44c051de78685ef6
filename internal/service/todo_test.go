package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/todo-web/internal/model"
	"github.com/BuzzLyutic/todo-web/internal/repo"
)

// MockTodoRepository - мок репозитория
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) Create(ctx context.Context, in model.TodoInput) (model.Todo, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *MockTodoRepository) Get(ctx context.Context, id int64) (model.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *MockTodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *MockTodoRepository) Update(ctx context.Context, id int64, p model.TodoPatch) (model.Todo, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *MockTodoRepository) Toggle(ctx context.Context, id int64) (model.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *MockTodoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestParseTodoForm(t *testing.T) {
	tests := []struct {
		name       string
		form       model.TodoForm
		wantFields []string // поля с ошибками; пусто = форма валидна
		check      func(*testing.T, model.TodoInput)
	}{
		{
			name: "full valid form",
			form: model.TodoForm{
				Title:       "Buy milk",
				Description: "2 liters",
				DueDate:     "2025-07-01",
				IsResolved:  "on",
			},
			check: func(t *testing.T, in model.TodoInput) {
				assert.Equal(t, "Buy milk", in.Title)
				assert.Equal(t, "2 liters", in.Description)
				require.NotNil(t, in.DueDate)
				assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), *in.DueDate)
				assert.True(t, in.IsResolved)
			},
		},
		{
			name: "title only gets defaults",
			form: model.TodoForm{Title: "Minimal"},
			check: func(t *testing.T, in model.TodoInput) {
				assert.Equal(t, "", in.Description)
				assert.Nil(t, in.DueDate)
				assert.False(t, in.IsResolved)
			},
		},
		{
			name:       "empty title rejected",
			form:       model.TodoForm{Description: "no title"},
			wantFields: []string{"title"},
		},
		{
			name: "whitespace title accepted",
			form: model.TodoForm{Title: "   "},
			check: func(t *testing.T, in model.TodoInput) {
				assert.Equal(t, "   ", in.Title)
			},
		},
		{
			name: "title of exactly 255 characters accepted",
			form: model.TodoForm{Title: strings.Repeat("x", 255)},
		},
		{
			name:       "title of 256 characters rejected",
			form:       model.TodoForm{Title: strings.Repeat("x", 256)},
			wantFields: []string{"title"},
		},
		{
			name: "255 multibyte characters accepted",
			form: model.TodoForm{Title: strings.Repeat("я", 255)},
		},
		{
			name:       "malformed due date rejected",
			form:       model.TodoForm{Title: "Test", DueDate: "not-a-date"},
			wantFields: []string{"due_date"},
		},
		{
			name:       "unparseable boolean rejected",
			form:       model.TodoForm{Title: "Test", IsResolved: "maybe"},
			wantFields: []string{"is_resolved"},
		},
		{
			name:       "multiple errors reported together",
			form:       model.TodoForm{DueDate: "31/12/2025"},
			wantFields: []string{"due_date", "title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseTodoForm(tt.form)

			if len(tt.wantFields) > 0 {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				for _, f := range tt.wantFields {
					assert.Contains(t, ve.Fields, f)
				}
				assert.Len(t, ve.Fields, len(tt.wantFields))
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, in)
			}
		})
	}
}

func TestTodoService_Create(t *testing.T) {
	t.Run("valid form reaches the repository", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(in model.TodoInput) bool {
			return in.Title == "Buy milk" && in.DueDate == nil && !in.IsResolved
		})).Return(model.Todo{ID: 1, Title: "Buy milk"}, nil)

		service := NewTodoService(mockRepo)
		created, err := service.Create(context.Background(), model.TodoForm{Title: "Buy milk"})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid form never touches the repository", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)

		service := NewTodoService(mockRepo)
		_, err := service.Create(context.Background(), model.TodoForm{Title: "", DueDate: "nope"})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestTodoService_Update(t *testing.T) {
	t.Run("form replaces all four fields", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		mockRepo.On("Get", mock.Anything, int64(1)).Return(model.Todo{ID: 1, Title: "Old"}, nil)
		mockRepo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p model.TodoPatch) bool {
			return p.Title != nil && *p.Title == "New" &&
				p.Description != nil && *p.Description == "" &&
				p.DueDate == nil && p.ClearDueDate &&
				p.IsResolved != nil && *p.IsResolved
		})).Return(model.Todo{ID: 1, Title: "New", IsResolved: true}, nil)

		service := NewTodoService(mockRepo)
		updated, err := service.Update(context.Background(), 1, model.TodoForm{Title: "New", IsResolved: "on"})

		require.NoError(t, err)
		assert.Equal(t, "New", updated.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("due date set in the patch when present", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		mockRepo.On("Get", mock.Anything, int64(1)).Return(model.Todo{ID: 1}, nil)
		mockRepo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p model.TodoPatch) bool {
			return p.DueDate != nil && !p.ClearDueDate &&
				p.DueDate.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
		})).Return(model.Todo{ID: 1}, nil)

		service := NewTodoService(mockRepo)
		_, err := service.Update(context.Background(), 1, model.TodoForm{Title: "Dated", DueDate: "2025-07-01"})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing id wins over invalid form", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		mockRepo.On("Get", mock.Anything, int64(99)).Return(model.Todo{}, repo.ErrorNotFound)

		service := NewTodoService(mockRepo)
		_, err := service.Update(context.Background(), 99, model.TodoForm{Title: ""})

		assert.ErrorIs(t, err, repo.ErrorNotFound)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestTodoService_Toggle(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	mockRepo.On("Toggle", mock.Anything, int64(1)).Return(model.Todo{ID: 1, IsResolved: true}, nil)
	mockRepo.On("Toggle", mock.Anything, int64(99)).Return(model.Todo{}, repo.ErrorNotFound)

	service := NewTodoService(mockRepo)

	toggled, err := service.Toggle(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, toggled.IsResolved)

	_, err = service.Toggle(context.Background(), 99)
	assert.ErrorIs(t, err, repo.ErrorNotFound)
}

func TestTodoService_Delete(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
	mockRepo.On("Delete", mock.Anything, int64(99)).Return(repo.ErrorNotFound)

	service := NewTodoService(mockRepo)

	require.NoError(t, service.Delete(context.Background(), 1))
	assert.ErrorIs(t, service.Delete(context.Background(), 99), repo.ErrorNotFound)
}
