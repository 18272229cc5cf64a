package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"todo-graphql-service/internal/domain/todo"
	"todo-graphql-service/internal/domain/user"
	apperrors "todo-graphql-service/pkg/errors"
)

// TodoRepoPG is the relational adapter for to-do items.
type TodoRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTodoRepoPG creates a new instance of TodoRepoPG.
func NewTodoRepoPG(db *gorm.DB, log *zap.Logger) *TodoRepoPG {
	return &TodoRepoPG{db: db, log: log}
}

// Create inserts a new item and returns its id. The owner id is stored as given.
func (r *TodoRepoPG) Create(ctx context.Context, it todo.Item) (int64, error) {
	userID := it.UserID
	model := TodoItemSchema{
		Title:     it.Title,
		Completed: it.Completed,
		UserID:    &userID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create todo in db", zap.Error(err), zap.Int64("user_id", it.UserID))
		return 0, apperrors.NewStorageError("CreateTodoItem", err)
	}

	r.log.Info("todo created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// Update overwrites every column of the item with it.ID; a missing id is a silent no-op.
func (r *TodoRepoPG) Update(ctx context.Context, it todo.Item) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&TodoItemSchema{}).
		Where("id = ?", it.ID).
		Updates(map[string]interface{}{
			"title":     it.Title,
			"completed": it.Completed,
			"user_id":   it.UserID,
		})
	if res.Error != nil {
		r.log.Error("failed to update todo in db", zap.Error(res.Error), zap.Int64("id", it.ID))
		return 0, apperrors.NewStorageError("UpdateTodoItem", res.Error)
	}

	r.log.Info("todo updated in db", zap.Int64("id", it.ID), zap.Int64("rows", res.RowsAffected))
	return it.ID, nil
}

// Delete removes the item with the given id.
func (r *TodoRepoPG) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TodoItemSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete todo in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, apperrors.NewStorageError("DeleteTodoItem", res.Error)
	}

	r.log.Info("todo deleted in db", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return id, nil
}

// List returns every item with a snapshot of its owner, ordered by item id.
func (r *TodoRepoPG) List(ctx context.Context) ([]todo.WithUser, error) {
	query := `SELECT
			t.id AS todo_id, t.title AS todo_title, t.completed AS todo_completed, t.user_id AS todo_user_id,
			u.id AS user_id, u.name AS user_name, u.email AS user_email, u.login AS user_login
		FROM "ToDoItem" t
		LEFT JOIN "User" u ON u.id = t.user_id
		ORDER BY t.id`

	var raw []todoUserRow
	if err := r.db.WithContext(ctx).Raw(query).Scan(&raw).Error; err != nil {
		r.log.Error("failed to list todos from db", zap.Error(err))
		return nil, apperrors.NewStorageError("ListTodos", err)
	}

	items := make([]todo.WithUser, len(raw))
	for i, row := range raw {
		items[i] = todo.WithUser{Item: todo.Item{
			ID:        row.TodoID,
			Title:     row.TodoTitle.String,
			Completed: row.TodoCompleted.Bool,
			UserID:    row.TodoUserID.Int64,
		}}
		if row.UserID.Valid {
			items[i].Owner = &user.User{
				ID:    row.UserID.Int64,
				Name:  row.UserName.String,
				Email: row.UserEmail.String,
				Login: row.UserLogin.String,
			}
		}
	}
	return items, nil
}

// GetByID returns the item with the given id, or nil when it does not exist.
func (r *TodoRepoPG) GetByID(ctx context.Context, id int64) (*todo.Item, error) {
	var model TodoItemSchema
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("todo not found", zap.Int64("id", id))
			return nil, nil
		}
		r.log.Error("failed to get todo from db", zap.Error(err), zap.Int64("id", id))
		return nil, apperrors.NewStorageError("GetTodoByID", err)
	}

	it := toItem(model)
	return &it, nil
}

// ListByUserID returns the items owned by userID in id order. It never returns a nil slice.
func (r *TodoRepoPG) ListByUserID(ctx context.Context, userID int64) ([]todo.Item, error) {
	var models []TodoItemSchema
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list todos by user from db", zap.Error(err), zap.Int64("user_id", userID))
		return nil, apperrors.NewStorageError("GetTodosByUserID", err)
	}

	items := make([]todo.Item, len(models))
	for i, model := range models {
		items[i] = toItem(model)
	}
	return items, nil
}

func toItem(model TodoItemSchema) todo.Item {
	it := todo.Item{
		ID:        model.ID,
		Title:     model.Title,
		Completed: model.Completed,
	}
	if model.UserID != nil {
		it.UserID = *model.UserID
	}
	return it
}
