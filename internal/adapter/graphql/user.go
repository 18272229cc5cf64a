package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	"todo-graphql-service/internal/domain/todo"
	"todo-graphql-service/internal/domain/user"
)

// userResolver resolves the User type. Users loaded from the database
// carry their todos already aggregated by the join.
type userResolver struct {
	root           *Resolver
	user           user.User
	storedTodos    []user.Todo
	hasStoredTodos bool
}

func (u *userResolver) ID() gql.ID {
	return formatID(u.user.ID)
}

func (u *userResolver) Name() string {
	return u.user.Name
}

func (u *userResolver) Email() string {
	return u.user.Email
}

func (u *userResolver) Login() string {
	return u.user.Login
}

// Todos fetches the REST todo list and keeps the ones owned by this user.
func (u *userResolver) Todos(ctx context.Context) ([]*todoResolver, error) {
	items, err := u.root.remote.ListTodos(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]todo.Item, 0)
	for _, it := range items {
		if it.UserID == u.user.ID {
			owned = append(owned, it)
		}
	}
	return u.root.todoList(owned), nil
}

func (u *userResolver) TodosDB(ctx context.Context) ([]*todoResolver, error) {
	if u.hasStoredTodos {
		out := make([]*todoResolver, len(u.storedTodos))
		for i, t := range u.storedTodos {
			out[i] = u.root.todo(todo.Item{
				ID:        t.ID,
				Title:     t.Title,
				Completed: t.Completed,
				UserID:    u.user.ID,
			})
		}
		return out, nil
	}

	items, err := u.root.todos.ListByUserID(ctx, u.user.ID)
	if err != nil {
		return nil, err
	}
	return u.root.todoList(items), nil
}
