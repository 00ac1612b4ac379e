package mocks

import (
	"context"

	"todoweb/internal/apiclient"
	"todoweb/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

var _ apiclient.Client = (*MockClient)(nil)

func (m *MockClient) Check(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockClient) Login(ctx context.Context, email, password string) (*model.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResult), args.Error(1)
}

func (m *MockClient) Register(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockClient) ListTodos(ctx context.Context, token string) ([]model.Todo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *MockClient) CreateTodo(ctx context.Context, token string, todo model.NewTodo) (*model.Todo, error) {
	args := m.Called(ctx, token, todo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Todo), args.Error(1)
}

func (m *MockClient) DeleteTodo(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockClient) PatchTodo(ctx context.Context, token string, id int64, patch model.TodoPatch) error {
	args := m.Called(ctx, token, id, patch)
	return args.Error(0)
}

func (m *MockClient) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
