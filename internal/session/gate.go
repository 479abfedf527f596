// Package session implements the admin session gate: one configured
// credential pair, opaque tokens held in process memory, no expiry, no
// server-side validation beyond token presence. Sign-out or a process
// restart is the only revocation. This is a deliberate placeholder for
// a real authentication service.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidCredentials is returned when the submitted pair does not
// match the configured admin credentials.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Gate validates credentials and tracks issued session tokens.
type Gate struct {
	email    string
	password string

	mu     sync.Mutex
	tokens map[string]string // token -> email
}

func NewGate(email, password string) *Gate {
	return &Gate{
		email:    email,
		password: password,
		tokens:   make(map[string]string),
	}
}

// SignIn checks the submitted pair against the configured values and,
// on match, mints an opaque session token.
func (g *Gate) SignIn(email, password string) (string, error) {
	if email != g.email || password != g.password {
		return "", ErrInvalidCredentials
	}

	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to mint session token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	g.mu.Lock()
	g.tokens[token] = email
	g.mu.Unlock()

	return token, nil
}

// Verify reports whether the token belongs to a live session and, if
// so, the admin email it was issued for.
func (g *Gate) Verify(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	email, ok := g.tokens[token]
	return email, ok
}

// SignOut revokes the token. Unknown tokens are a no-op.
func (g *Gate) SignOut(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.tokens, token)
}
