package model

import "encoding/json"

// User is the authenticated visitor as reported by the remote API.
// Token is the bearer token read from the session cookie and is never
// serialised into page data.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Token string `json:"-"`
}

// Credentials is the body of the remote login and register calls.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the remote API reply to a successful login.
type LoginResult struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// UnmarshalJSON accepts the expiry under both "expiresAt" and "expires".
func (r *LoginResult) UnmarshalJSON(data []byte) error {
	type alias LoginResult
	aux := struct {
		*alias
		Expires int64 `json:"expires"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.ExpiresAt == 0 {
		r.ExpiresAt = aux.Expires
	}
	return nil
}
