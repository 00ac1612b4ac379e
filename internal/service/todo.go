package service

import (
	"context"
	"errors"

	"todoweb/internal/apiclient"
	"todoweb/internal/model"
)

// DefaultTitle is the title given to todos created from the home page form.
const DefaultTitle = "Todo"

var (
	ErrInvalidID = errors.New("invalid todo id")
	ErrNoSession = errors.New("no authenticated user")
)

// TodoService forwards todo operations to the remote API on behalf of a user.
type TodoService interface {
	List(ctx context.Context, user *model.User) ([]model.Todo, error)
	Create(ctx context.Context, user *model.User, content string) (*model.Todo, error)
	Delete(ctx context.Context, user *model.User, id int64) error
	// Edit replaces the content of a todo.
	Edit(ctx context.Context, user *model.User, id int64, content string) error
	// Toggle flips the done flag; done is the state the visitor saw.
	Toggle(ctx context.Context, user *model.User, id int64, done bool) error
}

type todoService struct {
	api apiclient.Client
}

func NewTodoService(api apiclient.Client) TodoService {
	return &todoService{api: api}
}

func (s *todoService) List(ctx context.Context, user *model.User) ([]model.Todo, error) {
	if user == nil {
		return nil, ErrNoSession
	}
	return s.api.ListTodos(ctx, user.Token)
}

func (s *todoService) Create(ctx context.Context, user *model.User, content string) (*model.Todo, error) {
	if user == nil {
		return nil, ErrNoSession
	}
	return s.api.CreateTodo(ctx, user.Token, model.NewTodo{
		Title:     DefaultTitle,
		Content:   content,
		CreatedBy: user.ID,
	})
}

func (s *todoService) Delete(ctx context.Context, user *model.User, id int64) error {
	if user == nil {
		return ErrNoSession
	}
	if id <= 0 {
		return ErrInvalidID
	}
	return s.api.DeleteTodo(ctx, user.Token, id)
}

func (s *todoService) Edit(ctx context.Context, user *model.User, id int64, content string) error {
	if user == nil {
		return ErrNoSession
	}
	if id <= 0 {
		return ErrInvalidID
	}
	return s.api.PatchTodo(ctx, user.Token, id, model.TodoPatch{Content: &content})
}

func (s *todoService) Toggle(ctx context.Context, user *model.User, id int64, done bool) error {
	if user == nil {
		return ErrNoSession
	}
	if id <= 0 {
		return ErrInvalidID
	}
	next := !done
	return s.api.PatchTodo(ctx, user.Token, id, model.TodoPatch{Done: &next})
}
