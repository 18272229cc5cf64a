package graphql

import (
	"context"

	"github.com/stretchr/testify/mock"

	"todo-graphql-service/internal/domain/todo"
	"todo-graphql-service/internal/domain/user"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) ListUsers(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockRemote) GetUser(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockRemote) ListTodos(ctx context.Context) ([]todo.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]todo.Item), args.Error(1)
}

func (m *MockRemote) GetTodo(ctx context.Context, id int64) (*todo.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Item), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u user.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, u user.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) List(ctx context.Context) ([]user.WithTodos, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.WithTodos), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*user.WithTodos, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.WithTodos), args.Error(1)
}

func (m *MockUserStore) GetByTodoID(ctx context.Context, todoID int64) (*user.WithTodos, error) {
	args := m.Called(ctx, todoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.WithTodos), args.Error(1)
}

type MockTodoStore struct {
	mock.Mock
}

func (m *MockTodoStore) Create(ctx context.Context, it todo.Item) (int64, error) {
	args := m.Called(ctx, it)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTodoStore) Update(ctx context.Context, it todo.Item) (int64, error) {
	args := m.Called(ctx, it)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTodoStore) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTodoStore) List(ctx context.Context) ([]todo.WithUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]todo.WithUser), args.Error(1)
}

func (m *MockTodoStore) GetByID(ctx context.Context, id int64) (*todo.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Item), args.Error(1)
}

func (m *MockTodoStore) ListByUserID(ctx context.Context, userID int64) ([]todo.Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]todo.Item), args.Error(1)
}
