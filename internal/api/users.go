package api

import (
	"context"
	"net/http"

	"tiendita/internal/domain"
)

type UserClient struct{ core *Client }

func NewUserClient(core *Client) *UserClient { return &UserClient{core: core} }

type LoginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Login is the only unauthenticated call in the whole surface.
func (u *UserClient) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := u.core.doJSON(ctx, http.MethodPost, "users/login", false, LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return LoginResponse{}, err
	}
	return out, nil
}

func (u *UserClient) ByEmail(ctx context.Context, email string) (domain.User, error) {
	var out domain.User
	payload := struct {
		Email string `json:"Email"`
	}{Email: email}
	if err := u.core.doJSON(ctx, http.MethodPost, "users/byEmail", true, payload, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (u *UserClient) Get(ctx context.Context, uuid string) (domain.User, error) {
	var out domain.User
	if err := u.core.doJSON(ctx, http.MethodGet, "users/"+uuid, true, nil, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (u *UserClient) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := u.core.doJSON(ctx, http.MethodGet, "users", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *UserClient) Create(ctx context.Context, user domain.User) (domain.User, error) {
	var out domain.User
	if err := u.core.doJSON(ctx, http.MethodPost, "users", true, user, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (u *UserClient) Update(ctx context.Context, uuid string, user domain.User) (domain.User, error) {
	var out domain.User
	if err := u.core.doJSON(ctx, http.MethodPut, "users/"+uuid, true, user, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (u *UserClient) Delete(ctx context.Context, uuid string) error {
	return u.core.doJSON(ctx, http.MethodDelete, "users/"+uuid, true, nil, nil)
}
