package sdk

import (
	"context"
	"net/http"
)

// Register creates an account. Only the first account may be created
// without a token; later ones need an admin token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var out UserResponse
	if err := c.call(ctx, http.MethodPost, "/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.call(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the user the token belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out UserResponse
	if err := c.call(ctx, http.MethodGet, "/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ForgotPassword asks the server to mail a reset link. It succeeds whether
// or not the email belongs to an account.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	var out OKResponse
	return c.call(ctx, http.MethodPost, "/auth/forgot_password", ForgotPasswordRequest{Email: email}, &out, http.StatusOK)
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	var out OKResponse
	return c.call(ctx, http.MethodPost, "/auth/reset_password", req, &out, http.StatusOK)
}
