package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoweb/internal/apiclient"
	apiMocks "todoweb/internal/apiclient/mocks"
	"todoweb/internal/model"
)

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token skips the api", func(t *testing.T) {
		api := new(apiMocks.MockClient)
		svc := NewAuthService(api)

		user, err := svc.Authenticate(ctx, "")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, apiclient.ErrUnauthorized)
		api.AssertNotCalled(t, "Check")
	})

	t.Run("forwards token", func(t *testing.T) {
		api := new(apiMocks.MockClient)
		want := &model.User{ID: 1, Email: "user@domain.com", Token: "tok"}
		api.On("Check", ctx, "tok").Return(want, nil).Once()

		user, err := NewAuthService(api).Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, want, user)
		api.AssertExpectations(t)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		form    LoginForm
		setup   func(api *apiMocks.MockClient)
		wantMsg string
		wantErr error
	}{
		{
			name: "happy path trims email",
			form: LoginForm{Email: " user@domain.com ", Password: "secret-password"},
			setup: func(api *apiMocks.MockClient) {
				api.On("Login", ctx, "user@domain.com", "secret-password").
					Return(&model.LoginResult{Token: "tok", ExpiresAt: 10}, nil).Once()
			},
		},
		{
			name:    "empty email",
			form:    LoginForm{Password: "secret-password"},
			wantMsg: "email is required",
		},
		{
			name:    "malformed email",
			form:    LoginForm{Email: "user@", Password: "secret-password"},
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "empty password",
			form:    LoginForm{Email: "user@domain.com"},
			wantMsg: "password is required",
		},
		{
			name: "api rejection passes through",
			form: LoginForm{Email: "user@domain.com", Password: "wrong"},
			setup: func(api *apiMocks.MockClient) {
				api.On("Login", ctx, "user@domain.com", "wrong").
					Return(nil, &apiclient.Error{StatusCode: 401, Message: "Access denied"}).Once()
			},
			wantErr: apiclient.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(apiMocks.MockClient)
			if tt.setup != nil {
				tt.setup(api)
			}

			res, err := NewAuthService(api).Login(ctx, tt.form)

			switch {
			case tt.wantMsg != "":
				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.wantMsg, vErr.Message)
				api.AssertNotCalled(t, "Login")
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, "tok", res.Token)
			}
			api.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("password mismatch", func(t *testing.T) {
		api := new(apiMocks.MockClient)
		_, err := NewAuthService(api).Register(ctx, RegisterForm{
			Email: "user@domain.com", Password: "a-password", PasswordConfirm: "b-password",
		})
		assert.ErrorIs(t, err, ErrPasswordMismatch)
		assert.Equal(t, "the passwords does not match!", err.Error())
		api.AssertNotCalled(t, "Register")
	})

	t.Run("invalid email", func(t *testing.T) {
		api := new(apiMocks.MockClient)
		_, err := NewAuthService(api).Register(ctx, RegisterForm{
			Email: "nope", Password: "a-password", PasswordConfirm: "a-password",
		})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "email must be a valid email address", vErr.Message)
	})

	t.Run("success", func(t *testing.T) {
		api := new(apiMocks.MockClient)
		api.On("Register", ctx, "user@domain.com", "a-password").
			Return(&model.User{ID: 8, Email: "user@domain.com"}, nil).Once()

		user, err := NewAuthService(api).Register(ctx, RegisterForm{
			Email: "user@domain.com", Password: "a-password", PasswordConfirm: "a-password",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(8), user.ID)
		api.AssertExpectations(t)
	})
}
