// Package auth is the identity context: it keeps the bearer token in the
// session's local store and reads role and email out of the token's payload
// segment. The token is deliberately not verified client-side; the backend
// re-checks it on every request.
package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"tiendita/internal/api"
	"tiendita/internal/domain"
	"tiendita/internal/localstore"
)

type Manager struct {
	Store *localstore.Store
}

// Tokens returns a per-session token source for the API client core.
func (m *Manager) Tokens(sid string) api.TokenSource {
	return sessionTokens{store: m.Store, sid: sid}
}

type sessionTokens struct {
	store *localstore.Store
	sid   string
}

func (t sessionTokens) Token() (string, bool) {
	return t.store.Get(t.sid, localstore.KeyToken)
}

// SaveToken persists a freshly issued token. It is set at login and never
// cleared; there is no logout flow.
func (m *Manager) SaveToken(sid, token string) error {
	return m.Store.Put(sid, localstore.KeyToken, token)
}

// Identity is what the client can know about the session without asking the
// backend.
type Identity struct {
	Email string
	Role  domain.Role
}

// Identity decodes the stored token. A missing or malformed token yields
// (zero, false); role resolution of an unknown token value still succeeds and
// reports RoleUnknown.
func (m *Manager) Identity(sid string) (Identity, bool) {
	tok, ok := m.Store.Get(sid, localstore.KeyToken)
	if !ok {
		return Identity{}, false
	}
	claims, err := DecodeClaims(tok)
	if err != nil {
		return Identity{}, false
	}
	return Identity{Email: claims.Email, Role: domain.ResolveRole(claims.Role)}, true
}

// Claims is the slice of the token payload the client reads.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DecodeClaims splits the compact three-segment token and base64-decodes only
// the middle segment. No signature or expiry check happens here.
func DecodeClaims(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, &api.DecodeError{What: "token", Err: errSegments}
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return Claims{}, &api.DecodeError{What: "token", Err: err}
	}
	var c Claims
	if err := json.Unmarshal(payload, &c); err != nil {
		return Claims{}, &api.DecodeError{What: "token", Err: err}
	}
	return c, nil
}

var errSegments = errors.New("token is not a three-segment structure")
