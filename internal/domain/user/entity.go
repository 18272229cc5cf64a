package user

// User represents a user entity in the system.
type User struct {
	ID    int64  // ID is the unique identifier for the user
	Name  string // Name is the full name of the user
	Email string // Email is the email address of the user
	Login string // Login is the user's handle (username upstream)
}

// Todo is the projection of a to-do item nested inside its owner.
// It carries no owner reference because the enclosing WithTodos is the owner.
type Todo struct {
	ID        int64
	Title     string
	Completed bool
}

// WithTodos is a user together with every to-do item it owns.
type WithTodos struct {
	User
	Todos []Todo
}
