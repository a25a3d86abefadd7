package client

import (
	"context"
	"net/http"

	"github.com/medtracker/medtracker-go/internal/model"
)

// Register creates a new patient account. Public route; no credential
// is attached when the session is empty.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return objectOrBare[model.AuthResponse](c.log, raw, "/api/auth/register", "data")
}

// Login exchanges credentials for a {token, user} pair. The caller is
// responsible for persisting them through the session manager.
func (c *Client) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	req := model.LoginRequest{Email: email, Password: password}
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", req)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return objectOrBare[model.AuthResponse](c.log, raw, "/api/auth/login", "data")
}

// Me returns the authenticated user record.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	raw, err := c.getJSON(ctx, "/api/auth/me")
	if err != nil {
		return model.User{}, err
	}
	return objectOrBare[model.User](c.log, raw, "/api/auth/me", "user")
}
