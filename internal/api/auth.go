package api

import (
	"context"
	"net/http"
	"net/url"
)

// Login exchanges credentials for a bearer token and the user record.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. The backend sends a verification email; the
// account is not logged in by this call.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", "", body, nil)
}

// GetProfile returns the user record belonging to token. A 401 here means the
// token is expired or revoked.
func (c *Client) GetProfile(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile patches the caller's own profile and returns the updated record.
func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*User, error) {
	var resp ack
	if err := c.do(ctx, http.MethodPatch, "/auth/profile", token, req, &resp); err != nil {
		return nil, err
	}
	if resp.User != nil {
		return resp.User, nil
	}
	// Some backend versions return the bare user record instead of an envelope.
	return c.GetProfile(ctx, token)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", "", body, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/reset-password", "", body, nil)
}

func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/auth/verify-email?token="+url.QueryEscape(token), "", nil, nil)
}

func (c *Client) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/resend-verification", "", body, nil)
}

// CheckVerificationStatus reports whether email has completed verification.
// Unlike the other calls this returns the raw result; swallowing failures is
// the session layer's policy, not the client's.
func (c *Client) CheckVerificationStatus(ctx context.Context, email string) (bool, error) {
	body := map[string]string{"email": email}
	var resp ack
	if err := c.do(ctx, http.MethodPost, "/auth/check-verification-status", "", body, &resp); err != nil {
		return false, err
	}
	return resp.Verified, nil
}
