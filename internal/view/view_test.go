package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()
	engine := New()
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, name, data, Layout))
	return buf.String()
}

func TestHome(t *testing.T) {
	out := render(t, "home", map[string]any{
		"User": map[string]any{"Email": "user@domain.com"},
		"Todos": []map[string]any{
			{"ID": 7, "Content": "buy <milk>", "Done": true, "Created": time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)},
		},
	})

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "user@domain.com")
	assert.Contains(t, out, `action="/todos/7/toggle"`)
	assert.Contains(t, out, `action="/todos/7/delete"`)
	assert.Contains(t, out, "buy &lt;milk&gt;")
	assert.Contains(t, out, "2024-01-02 03:04")
	assert.NotContains(t, out, "Nothing to do.")
}

func TestHome_EmptyWithError(t *testing.T) {
	out := render(t, "home", map[string]any{
		"Form": map[string]any{"Success": false, "Message": "content needs to be at least 3 characters"},
	})

	assert.Contains(t, out, "Nothing to do.")
	assert.Contains(t, out, "content needs to be at least 3 characters")
}

func TestLogin(t *testing.T) {
	out := render(t, "login", map[string]any{"RegisteredEmail": "new@domain.com"})

	assert.Contains(t, out, "Account created for new@domain.com")
	assert.Contains(t, out, `value="new@domain.com"`)
}

func TestRegister(t *testing.T) {
	out := render(t, "register", map[string]any{
		"Form": map[string]any{"Success": false, "Message": "the passwords does not match!", "Email": "a@b.c"},
	})

	assert.Contains(t, out, "the passwords does not match!")
	assert.Contains(t, out, `name="passwordConfirm"`)
	assert.Contains(t, out, `value="a@b.c"`)
}
