package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Login exchanges credentials for a bearer token and profile. The request
// never carries a prior Authorization header.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body := map[string]string{"username": username, "password": password}

	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &out, false)
	if err != nil {
		var netErr *NetworkError
		if errors.As(err, &netErr) {
			return nil, err
		}
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Message != "" {
			return nil, fmt.Errorf("%s: %w", reqErr.Message, ErrInvalidCredentials)
		}
		return nil, ErrInvalidCredentials
	}
	return &out, nil
}

// Logout invalidates the remote session for the current token.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/api/auth/logout", nil, nil)
}

// Me resolves the profile behind the current token. Returns ErrUnauthorized
// when the token is invalid or expired.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.get(ctx, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
