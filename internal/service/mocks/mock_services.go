package mocks

import (
	"context"

	"todoweb/internal/model"
	"todoweb/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, form service.LoginForm) (*model.LoginResult, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResult), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, form service.RegisterForm) (*model.User, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockTodoService struct {
	mock.Mock
}

var _ service.TodoService = (*MockTodoService)(nil)

func (m *MockTodoService) List(ctx context.Context, user *model.User) ([]model.Todo, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *MockTodoService) Create(ctx context.Context, user *model.User, content string) (*model.Todo, error) {
	args := m.Called(ctx, user, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Todo), args.Error(1)
}

func (m *MockTodoService) Delete(ctx context.Context, user *model.User, id int64) error {
	args := m.Called(ctx, user, id)
	return args.Error(0)
}

func (m *MockTodoService) Edit(ctx context.Context, user *model.User, id int64, content string) error {
	args := m.Called(ctx, user, id, content)
	return args.Error(0)
}

func (m *MockTodoService) Toggle(ctx context.Context, user *model.User, id int64, done bool) error {
	args := m.Called(ctx, user, id, done)
	return args.Error(0)
}
