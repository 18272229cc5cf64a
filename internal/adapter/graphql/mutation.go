package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"todo-graphql-service/internal/domain/todo"
	"todo-graphql-service/internal/domain/user"
	"todo-graphql-service/pkg/logger"
)

type createUserArgs struct {
	Name  string
	Email string
	Login string
}

type updateUserArgs struct {
	ID    gql.ID
	Name  string
	Email string
	Login string
}

type createTodoArgs struct {
	Title     string
	Completed bool
	UserID    gql.ID
}

type updateTodoArgs struct {
	ID        gql.ID
	Title     string
	Completed bool
	UserID    gql.ID
}

func (r *Resolver) CreateUser(ctx context.Context, args createUserArgs) (gql.ID, error) {
	id, err := r.users.Create(ctx, user.User{Name: args.Name, Email: args.Email, Login: args.Login})
	if err != nil {
		return "", err
	}

	logger.WithContext(ctx, r.log).Info("user created", zap.Int64("id", id))
	return formatID(id), nil
}

func (r *Resolver) UpdateUser(ctx context.Context, args updateUserArgs) (gql.ID, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return "", err
	}

	id, err = r.users.Update(ctx, user.User{ID: id, Name: args.Name, Email: args.Email, Login: args.Login})
	if err != nil {
		return "", err
	}
	return formatID(id), nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID gql.ID }) (gql.ID, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return "", err
	}

	id, err = r.users.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	return formatID(id), nil
}

// CreateTodoItem stores a todo. The owner id is not checked against existing users.
func (r *Resolver) CreateTodoItem(ctx context.Context, args createTodoArgs) (gql.ID, error) {
	userID, err := parseID("userID", args.UserID)
	if err != nil {
		return "", err
	}

	id, err := r.todos.Create(ctx, todo.Item{Title: args.Title, Completed: args.Completed, UserID: userID})
	if err != nil {
		return "", err
	}

	logger.WithContext(ctx, r.log).Info("todo created", zap.Int64("id", id), zap.Int64("user_id", userID))
	return formatID(id), nil
}

func (r *Resolver) UpdateTodoItem(ctx context.Context, args updateTodoArgs) (gql.ID, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return "", err
	}
	userID, err := parseID("userID", args.UserID)
	if err != nil {
		return "", err
	}

	id, err = r.todos.Update(ctx, todo.Item{ID: id, Title: args.Title, Completed: args.Completed, UserID: userID})
	if err != nil {
		return "", err
	}
	return formatID(id), nil
}

func (r *Resolver) DeleteTodoItem(ctx context.Context, args struct{ ID gql.ID }) (gql.ID, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return "", err
	}

	id, err = r.todos.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	return formatID(id), nil
}
