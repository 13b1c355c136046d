package services

import (
	"context"

	"tiendita/internal/api"
	"tiendita/internal/auth"
	"tiendita/internal/domain"
)

type AuthService struct {
	Auth  *auth.Manager
	Users *api.UserClient
}

// Login exchanges credentials for a token and persists it for the session.
// The token is the only thing stored; the user record is refetched on demand.
func (s *AuthService) Login(ctx context.Context, sid, email, password string) (string, error) {
	resp, err := s.Users.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	if err := s.Auth.SaveToken(sid, resp.Token); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// CurrentUser resolves the session's user record from the decoded token's
// email. ok is false when there is no usable token.
func (s *AuthService) CurrentUser(ctx context.Context, sid string) (domain.User, bool) {
	ident, ok := s.Auth.Identity(sid)
	if !ok {
		return domain.User{}, false
	}
	u, err := s.Users.ByEmail(ctx, ident.Email)
	if err != nil {
		return domain.User{}, false
	}
	return u, true
}
