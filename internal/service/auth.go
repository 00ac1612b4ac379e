package service

import (
	"context"
	"errors"
	"strings"

	"todoweb/internal/apiclient"
	"todoweb/internal/model"
)

var ErrPasswordMismatch = errors.New("the passwords does not match!")

// LoginForm is the body of the login form.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is the body of the register form.
type RegisterForm struct {
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required"`
	PasswordConfirm string `form:"passwordConfirm"`
}

// AuthService covers the visitor's session: resolving a token to a user,
// logging in and registering.
type AuthService interface {
	// Authenticate resolves a bearer token through the remote API.
	Authenticate(ctx context.Context, token string) (*model.User, error)

	// Login validates the form and exchanges the credentials for a token.
	Login(ctx context.Context, form LoginForm) (*model.LoginResult, error)

	// Register validates the form and creates the account remotely.
	Register(ctx context.Context, form RegisterForm) (*model.User, error)
}

type authService struct {
	api apiclient.Client
}

func NewAuthService(api apiclient.Client) AuthService {
	return &authService{api: api}
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apiclient.ErrUnauthorized
	}
	return s.api.Check(ctx, token)
}

func (s *authService) Login(ctx context.Context, form LoginForm) (*model.LoginResult, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.api.Login(ctx, form.Email, form.Password)
}

func (s *authService) Register(ctx context.Context, form RegisterForm) (*model.User, error) {
	if form.Password != form.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}
	form.Email = strings.TrimSpace(form.Email)
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.api.Register(ctx, form.Email, form.Password)
}
