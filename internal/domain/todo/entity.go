package todo

import "todo-graphql-service/internal/domain/user"

// Item represents a to-do item entity in the system.
type Item struct {
	ID        int64  // ID is the unique identifier for the item
	Title     string // Title is the short description of the task
	Completed bool   // Completed reports whether the task is done
	UserID    int64  // UserID references the owning user
}

// WithUser is a to-do item with a denormalized snapshot of its owner.
// Owner is nil when UserID does not match any stored user.
type WithUser struct {
	Item
	Owner *user.User
}
