package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	"todo-graphql-service/internal/domain/todo"
	"todo-graphql-service/internal/domain/user"
)

// todoResolver resolves the ToDoItem type. Items loaded by TodosDB carry a
// snapshot of their owner; hasOwner with a nil owner means a dangling user id.
type todoResolver struct {
	root     *Resolver
	item     todo.Item
	owner    *user.User
	hasOwner bool
}

func (t *todoResolver) ID() gql.ID {
	return formatID(t.item.ID)
}

func (t *todoResolver) Title() string {
	return t.item.Title
}

func (t *todoResolver) Completed() bool {
	return t.item.Completed
}

func (t *todoResolver) UserID() gql.ID {
	return formatID(t.item.UserID)
}

// User fetches the owner from the REST API.
func (t *todoResolver) User(ctx context.Context) (*userResolver, error) {
	u, err := t.root.remote.GetUser(ctx, t.item.UserID)
	if err != nil || u == nil {
		return nil, err
	}
	return t.root.remoteUser(*u), nil
}

// UserDB returns the owner stored in the database.
func (t *todoResolver) UserDB(ctx context.Context) (*userResolver, error) {
	if t.hasOwner {
		if t.owner == nil {
			return nil, nil
		}
		return &userResolver{root: t.root, user: *t.owner}, nil
	}

	u, err := t.root.users.GetByTodoID(ctx, t.item.ID)
	if err != nil || u == nil {
		return nil, err
	}
	return t.root.storedUser(*u), nil
}
