package graphql

import (
	"context"
	"strconv"

	gql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"todo-graphql-service/internal/domain/todo"
	"todo-graphql-service/internal/domain/user"
	apperrors "todo-graphql-service/pkg/errors"
)

// Greeting is the constant answer of Query.demo.
const Greeting = "Witaj, GraphQL działa!"

// RemoteSource reads users and todos from the REST API.
type RemoteSource interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, id int64) (*user.User, error)
	ListTodos(ctx context.Context) ([]todo.Item, error)
	GetTodo(ctx context.Context, id int64) (*todo.Item, error)
}

// UserStore is the relational store of users.
type UserStore interface {
	Create(ctx context.Context, u user.User) (int64, error)
	Update(ctx context.Context, u user.User) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]user.WithTodos, error)
	GetByID(ctx context.Context, id int64) (*user.WithTodos, error)
	GetByTodoID(ctx context.Context, todoID int64) (*user.WithTodos, error)
}

// TodoStore is the relational store of to-do items.
type TodoStore interface {
	Create(ctx context.Context, it todo.Item) (int64, error)
	Update(ctx context.Context, it todo.Item) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]todo.WithUser, error)
	GetByID(ctx context.Context, id int64) (*todo.Item, error)
	ListByUserID(ctx context.Context, userID int64) ([]todo.Item, error)
}

// Resolver is the root resolver for Query and Mutation.
type Resolver struct {
	remote RemoteSource
	users  UserStore
	todos  TodoStore
	log    *zap.Logger
}

// NewResolver creates the root resolver.
func NewResolver(remote RemoteSource, users UserStore, todos TodoStore, log *zap.Logger) *Resolver {
	return &Resolver{remote: remote, users: users, todos: todos, log: log}
}

// Demo returns a constant greeting.
func (r *Resolver) Demo() string {
	return Greeting
}

// Users lists users from the REST API.
func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	users, err := r.remote.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*userResolver, len(users))
	for i := range users {
		out[i] = r.remoteUser(users[i])
	}
	return out, nil
}

// User fetches one user from the REST API.
func (r *Resolver) User(ctx context.Context, args struct{ ID gql.ID }) (*userResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}

	u, err := r.remote.GetUser(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	return r.remoteUser(*u), nil
}

// Todos lists todos from the REST API.
func (r *Resolver) Todos(ctx context.Context) ([]*todoResolver, error) {
	items, err := r.remote.ListTodos(ctx)
	if err != nil {
		return nil, err
	}
	return r.todoList(items), nil
}

// Todo fetches one todo from the REST API.
func (r *Resolver) Todo(ctx context.Context, args struct{ ID gql.ID }) (*todoResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}

	it, err := r.remote.GetTodo(ctx, id)
	if err != nil || it == nil {
		return nil, err
	}
	return r.todo(*it), nil
}

// UsersDB lists users with their todos from the database.
func (r *Resolver) UsersDB(ctx context.Context) ([]*userResolver, error) {
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*userResolver, len(users))
	for i := range users {
		out[i] = r.storedUser(users[i])
	}
	return out, nil
}

// UserDB fetches one user with its todos from the database.
func (r *Resolver) UserDB(ctx context.Context, args struct{ ID gql.ID }) (*userResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}

	u, err := r.users.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	return r.storedUser(*u), nil
}

// TodosDB lists todos with their owners from the database.
func (r *Resolver) TodosDB(ctx context.Context) ([]*todoResolver, error) {
	items, err := r.todos.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*todoResolver, len(items))
	for i := range items {
		out[i] = r.todoWithOwner(items[i])
	}
	return out, nil
}

// TodoDB fetches one todo from the database.
func (r *Resolver) TodoDB(ctx context.Context, args struct{ ID gql.ID }) (*todoResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, err
	}

	it, err := r.todos.GetByID(ctx, id)
	if err != nil || it == nil {
		return nil, err
	}
	return r.todo(*it), nil
}

func (r *Resolver) remoteUser(u user.User) *userResolver {
	return &userResolver{root: r, user: u}
}

func (r *Resolver) storedUser(u user.WithTodos) *userResolver {
	todos := u.Todos
	if todos == nil {
		todos = []user.Todo{}
	}
	return &userResolver{root: r, user: u.User, storedTodos: todos, hasStoredTodos: true}
}

func (r *Resolver) todo(it todo.Item) *todoResolver {
	return &todoResolver{root: r, item: it}
}

func (r *Resolver) todoWithOwner(it todo.WithUser) *todoResolver {
	return &todoResolver{root: r, item: it.Item, owner: it.Owner, hasOwner: true}
}

func (r *Resolver) todoList(items []todo.Item) []*todoResolver {
	out := make([]*todoResolver, len(items))
	for i := range items {
		out[i] = r.todo(items[i])
	}
	return out
}

func parseID(field string, id gql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(field, "must be an integer, got "+strconv.Quote(string(id)))
	}
	return n, nil
}

func formatID(id int64) gql.ID {
	return gql.ID(strconv.FormatInt(id, 10))
}
