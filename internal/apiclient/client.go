// Package apiclient talks to the remote todo API.
//
// The remote API owns users, tokens and todos. This package only forwards
// calls, attaching the visitor's bearer token, and maps the API's
// {"success": false, "message": ...} replies to *Error values.
//
// Errors: remote rejections are *Error (401/403 also match ErrUnauthorized);
// anything that prevented a usable reply wraps ErrUnavailable.
package apiclient

import (
	"context"

	"todoweb/internal/model"
)

// Client is the set of remote API operations the web layer needs.
type Client interface {
	// Check resolves a bearer token to its user. The returned user carries the token.
	Check(ctx context.Context, token string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.LoginResult, error)
	Register(ctx context.Context, email, password string) (*model.User, error)

	ListTodos(ctx context.Context, token string) ([]model.Todo, error)
	CreateTodo(ctx context.Context, token string, todo model.NewTodo) (*model.Todo, error)
	DeleteTodo(ctx context.Context, token string, id int64) error
	PatchTodo(ctx context.Context, token string, id int64, patch model.TodoPatch) error

	// Health pings the remote API's health endpoint.
	Health(ctx context.Context) error
}
