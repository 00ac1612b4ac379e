package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginResultExpiry(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
	}{
		{name: "expiresAt", body: `{"id":1,"email":"a@b.c","token":"t","expiresAt":100}`, want: 100},
		{name: "expires", body: `{"id":1,"email":"a@b.c","token":"t","expires":200}`, want: 200},
		{name: "both prefers expiresAt", body: `{"token":"t","expires":200,"expiresAt":300}`, want: 300},
		{name: "missing", body: `{"token":"t"}`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res LoginResult
			require.NoError(t, json.Unmarshal([]byte(tt.body), &res))
			assert.Equal(t, tt.want, res.ExpiresAt)
			assert.Equal(t, "t", res.Token)
		})
	}
}

func TestUserTokenNotSerialised(t *testing.T) {
	b, err := json.Marshal(User{ID: 4, Email: "a@b.c", Token: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
}

func TestEnvelopeFailed(t *testing.T) {
	var e Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"success":false,"message":"Invalid token"}`), &e))
	assert.True(t, e.Failed())

	e = Envelope{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"email":"a@b.c"}`), &e))
	assert.False(t, e.Failed())
}

func TestTodoPatchOmitsUnset(t *testing.T) {
	done := true
	b, err := json.Marshal(TodoPatch{Done: &done})
	require.NoError(t, err)
	assert.JSONEq(t, `{"done":true}`, string(b))
}
