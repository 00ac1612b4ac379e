// Package session manages the cookie that carries the visitor's bearer token.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"todoweb/internal/config"
)

var (
	ErrExpired  = errors.New("session token already expired")
	ErrNoExpiry = errors.New("session token has no expiry")
)

// Cookies reads and writes the session cookie.
type Cookies struct {
	name   string
	secure bool
}

func NewCookies(cfg config.SessionConfig) *Cookies {
	name := cfg.CookieName
	if name == "" {
		name = "jwt"
	}
	return &Cookies{name: name, secure: cfg.Secure}
}

// Token returns the bearer token stored in the cookie, or "" when absent.
func (s *Cookies) Token(c *fiber.Ctx) string {
	return c.Cookies(s.name)
}

// Set stores token in the cookie until expiresAt (unix seconds). When
// expiresAt is zero the expiry is read from the token's own claims.
func (s *Cookies) Set(c *fiber.Ctx, token string, expiresAt int64, now time.Time) error {
	if expiresAt == 0 {
		exp, err := ExpiryFromToken(token)
		if err != nil {
			return err
		}
		expiresAt = exp
	}

	maxAge := expiresAt - now.Unix()
	if maxAge <= 0 {
		return ErrExpired
	}

	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return nil
}

// Clear deletes the cookie on the client.
func (s *Cookies) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// ExpiryFromToken reads the expiry of a JWT without verifying its signature.
// Both the registered "exp" claim and the remote API's "expiresAt" claim are
// understood.
func ExpiryFromToken(token string) (int64, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, fmt.Errorf("parse session token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return 0, fmt.Errorf("read exp claim: %w", err)
	}
	if exp != nil {
		return exp.Unix(), nil
	}

	switch v := claims["expiresAt"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	}
	return 0, ErrNoExpiry
}
