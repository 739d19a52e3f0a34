package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/prashikshan/prashikshan-cli/status"
)

// ListUsersParams filters the admin user listing. Unset fields are omitted
// from the query string.
type ListUsersParams struct {
	Role     status.Role
	IsActive *bool
	Skip     int
	Limit    int
}

func (p *ListUsersParams) query() url.Values {
	query := url.Values{}
	if p == nil {
		return query
	}
	setParam(query, "role", string(p.Role))
	if p.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*p.IsActive))
	}
	if p.Skip > 0 {
		query.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		query.Set("limit", strconv.Itoa(p.Limit))
	}
	return query
}

// ListUsers lists platform accounts. Admin only.
func (c *Client) ListUsers(ctx context.Context, params *ListUsersParams) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/api/v1/admin/users", params.query(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one account by ID. Admin only.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.get(ctx, "/api/v1/admin/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ActivateUser re-enables a deactivated account. Admin only.
func (c *Client) ActivateUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.patch(ctx, "/api/v1/admin/users/"+url.PathEscape(id)+"/activate", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeactivateUser disables an account without deleting it. Admin only.
func (c *Client) DeactivateUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.patch(ctx, "/api/v1/admin/users/"+url.PathEscape(id)+"/deactivate", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser permanently removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v1/admin/users/"+url.PathEscape(id))
}
