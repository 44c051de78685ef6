package model

import "time"

// Todo — единственная сущность приложения
type Todo struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsResolved  bool       `json:"is_resolved"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TodoForm holds raw form values exactly as submitted by the browser.
type TodoForm struct {
	Title       string
	Description string
	DueDate     string
	IsResolved  string
}

// TodoInput carries validated field values for create and update.
type TodoInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	IsResolved  bool
}

// TodoPatch describes a partial update. Nil fields keep their prior
// values. ClearDueDate removes the due date; it wins over DueDate.
type TodoPatch struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	IsResolved   *bool
}
