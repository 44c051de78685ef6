package model

import (
	"cmp"
	"slices"
)

// Compare implements the default listing order: unresolved before
// resolved, then earlier due date first (no due date after all dated
// records in the same group), then newest created_at, then id ascending
// so the order is total.
func Compare(a, b Todo) int {
	if a.IsResolved != b.IsResolved {
		if a.IsResolved {
			return 1
		}
		return -1
	}

	switch {
	case a.DueDate == nil && b.DueDate != nil:
		return 1
	case a.DueDate != nil && b.DueDate == nil:
		return -1
	case a.DueDate != nil && b.DueDate != nil:
		if c := a.DueDate.Compare(*b.DueDate); c != 0 {
			return c
		}
	}

	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortTodos sorts in place into the default listing order.
func SortTodos(todos []Todo) {
	slices.SortFunc(todos, Compare)
}
