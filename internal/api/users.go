package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListUsers returns every registered user. Admin only.
func (c *Client) ListUsers(ctx context.Context, token string) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SearchUser looks a user up by email and/or name. Admin only.
func (c *Client) SearchUser(ctx context.Context, token, email, name string) (*User, error) {
	params := url.Values{}
	if email != "" {
		params.Set("email", email)
	}
	if name != "" {
		params.Set("name", name)
	}

	var user User
	if err := c.do(ctx, http.MethodGet, "/users/search?"+params.Encode(), token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// PromoteToAdmin grants the admin role. Super admin only.
func (c *Client) PromoteToAdmin(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/promote-admin", token, nil, nil)
}

// DemoteFromAdmin revokes the admin role. Super admin only.
func (c *Client) DemoteFromAdmin(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/revoke-admin", token, nil, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(userID), token, nil, nil)
}

func (c *Client) UpdateUserName(ctx context.Context, token, userID, name string) error {
	body := map[string]string{"name": name}
	return c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/name", token, body, nil)
}
