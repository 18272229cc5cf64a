package postgres

import "database/sql"

// UserSchema represents the database schema for the "User" table.
type UserSchema struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"` // Unique identifier with auto-increment
	Name  string // User's full name
	Email string // User's email address, not unique
	Login string // User's login handle
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "User"
}

// TodoItemSchema represents the database schema for the "ToDoItem" table.
type TodoItemSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"not null"`
	Completed bool   `gorm:"not null"`
	UserID    *int64 `gorm:"column:user_id;index"` // Owning user; not a foreign key, may dangle
}

// TableName specifies the table name for the TodoItemSchema model.
func (TodoItemSchema) TableName() string {
	return "ToDoItem"
}

// userTodoRow is one row of "User" LEFT JOIN "ToDoItem".
type userTodoRow struct {
	UserID        int64          `gorm:"column:user_id"`
	UserName      sql.NullString `gorm:"column:user_name"`
	UserEmail     sql.NullString `gorm:"column:user_email"`
	UserLogin     sql.NullString `gorm:"column:user_login"`
	TodoID        sql.NullInt64  `gorm:"column:todo_id"`
	TodoTitle     sql.NullString `gorm:"column:todo_title"`
	TodoCompleted sql.NullBool   `gorm:"column:todo_completed"`
}

// todoUserRow is one row of "ToDoItem" LEFT JOIN "User".
type todoUserRow struct {
	TodoID        int64          `gorm:"column:todo_id"`
	TodoTitle     sql.NullString `gorm:"column:todo_title"`
	TodoCompleted sql.NullBool   `gorm:"column:todo_completed"`
	TodoUserID    sql.NullInt64  `gorm:"column:todo_user_id"`
	UserID        sql.NullInt64  `gorm:"column:user_id"`
	UserName      sql.NullString `gorm:"column:user_name"`
	UserEmail     sql.NullString `gorm:"column:user_email"`
	UserLogin     sql.NullString `gorm:"column:user_login"`
}

const userTodoColumns = `
	u.id AS user_id, u.name AS user_name, u.email AS user_email, u.login AS user_login,
	t.id AS todo_id, t.title AS todo_title, t.completed AS todo_completed`
