package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"todo-graphql-service/internal/domain/user"
	apperrors "todo-graphql-service/pkg/errors"
)

// UserRepoPG is the relational adapter for users, backed by PostgreSQL through GORM.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// Create inserts a new user and returns its id. Emails and logins are not checked for uniqueness.
func (r *UserRepoPG) Create(ctx context.Context, u user.User) (int64, error) {
	model := UserSchema{
		Name:  u.Name,
		Email: u.Email,
		Login: u.Login,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("login", u.Login))
		return 0, apperrors.NewStorageError("CreateUser", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// Update overwrites name, email and login of the user with u.ID.
// Updating an id that does not exist is a silent no-op.
func (r *UserRepoPG) Update(ctx context.Context, u user.User) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&UserSchema{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":  u.Name,
			"email": u.Email,
			"login": u.Login,
		})
	if res.Error != nil {
		r.log.Error("failed to update user in db", zap.Error(res.Error), zap.Int64("id", u.ID))
		return 0, apperrors.NewStorageError("UpdateUser", res.Error)
	}

	r.log.Info("user updated in db", zap.Int64("id", u.ID), zap.Int64("rows", res.RowsAffected))
	return u.ID, nil
}

// Delete removes the user with the given id. Owned todos are kept and keep
// pointing at the removed id. Deleting a missing id succeeds.
func (r *UserRepoPG) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, apperrors.NewStorageError("DeleteUser", res.Error)
	}

	r.log.Info("user deleted in db", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return id, nil
}

// List returns every user with its todos nested, ordered by user id.
func (r *UserRepoPG) List(ctx context.Context) ([]user.WithTodos, error) {
	query := `SELECT` + userTodoColumns + `
		FROM "User" u
		LEFT JOIN "ToDoItem" t ON t.user_id = u.id
		ORDER BY u.id, t.id`

	rows, err := r.scanUserTodoRows(ctx, "ListUsers", query)
	if err != nil {
		return nil, err
	}
	return user.GroupJoinRows(rows), nil
}

// GetByID returns the user with its todos nested, or nil when no such user exists.
func (r *UserRepoPG) GetByID(ctx context.Context, id int64) (*user.WithTodos, error) {
	query := `SELECT` + userTodoColumns + `
		FROM "User" u
		LEFT JOIN "ToDoItem" t ON t.user_id = u.id
		WHERE u.id = ?
		ORDER BY t.id`

	rows, err := r.scanUserTodoRows(ctx, "GetUserByID", query, id)
	if err != nil {
		return nil, err
	}
	return first(user.GroupJoinRows(rows)), nil
}

// GetByTodoID returns the owner of the todo with the given id, with all of
// the owner's todos nested. It returns nil when the todo does not exist or
// has no stored owner.
func (r *UserRepoPG) GetByTodoID(ctx context.Context, todoID int64) (*user.WithTodos, error) {
	query := `SELECT` + userTodoColumns + `
		FROM "ToDoItem" owned
		JOIN "User" u ON u.id = owned.user_id
		LEFT JOIN "ToDoItem" t ON t.user_id = u.id
		WHERE owned.id = ?
		ORDER BY t.id`

	rows, err := r.scanUserTodoRows(ctx, "GetUserByTodoID", query, todoID)
	if err != nil {
		return nil, err
	}
	return first(user.GroupJoinRows(rows)), nil
}

func (r *UserRepoPG) scanUserTodoRows(ctx context.Context, op, query string, args ...interface{}) ([]user.JoinRow, error) {
	var raw []userTodoRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&raw).Error; err != nil {
		r.log.Error("failed to query users from db", zap.String("op", op), zap.Error(err))
		return nil, apperrors.NewStorageError(op, err)
	}

	rows := make([]user.JoinRow, len(raw))
	for i, row := range raw {
		rows[i] = user.JoinRow{
			User: user.User{
				ID:    row.UserID,
				Name:  row.UserName.String,
				Email: row.UserEmail.String,
				Login: row.UserLogin.String,
			},
			TodoTitle:     row.TodoTitle.String,
			TodoCompleted: row.TodoCompleted.Bool,
		}
		if row.TodoID.Valid {
			id := row.TodoID.Int64
			rows[i].TodoID = &id
		}
	}
	return rows, nil
}

func first(users []user.WithTodos) *user.WithTodos {
	if len(users) == 0 {
		return nil
	}
	return &users[0]
}
