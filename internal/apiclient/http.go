package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"todoweb/internal/config"
	"todoweb/internal/model"
)

const maxBodyBytes = 1 << 20

// HTTPClient implements Client over the remote API's JSON/HTTP interface.
// It is safe for concurrent use by multiple goroutines.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	hc      *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the API at cfg.BaseURL. Outgoing requests
// are traced through otelhttp.
func NewHTTPClient(cfg config.APIConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		hc: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

func (c *HTTPClient) Check(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/api/check", token, nil, &user); err != nil {
		return nil, err
	}
	user.Token = token
	return &user, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*model.LoginResult, error) {
	var res model.LoginResult
	creds := model.Credentials{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/login", "", creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (*model.User, error) {
	var user model.User
	creds := model.Credentials{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/register", "", creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListTodos(ctx context.Context, token string) ([]model.Todo, error) {
	var list model.TodoList
	if err := c.do(ctx, http.MethodGet, "/api/v1/todos", token, nil, &list); err != nil {
		return nil, err
	}
	return list.Result, nil
}

func (c *HTTPClient) CreateTodo(ctx context.Context, token string, todo model.NewTodo) (*model.Todo, error) {
	var created model.Todo
	if err := c.do(ctx, http.MethodPost, "/api/v1/todos", token, todo, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) DeleteTodo(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, todoPath(id), token, nil, nil)
}

func (c *HTTPClient) PatchTodo(ctx context.Context, token string, id int64, patch model.TodoPatch) error {
	return c.do(ctx, http.MethodPatch, todoPath(id), token, patch, nil)
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", "", nil, nil)
}

func todoPath(id int64) string {
	return "/api/v1/todos/" + strconv.FormatInt(id, 10)
}

// do sends one request and decodes the reply into out (when non-nil).
// An empty token sends no Authorization header.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s reply: %w", ErrUnavailable, path, err)
	}

	var env model.Envelope
	envErr := json.Unmarshal(raw, &env)
	if envErr == nil && env.Failed() {
		return &Error{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode %s reply: %w", ErrUnavailable, path, err)
	}
	return nil
}
