package api

import "context"

// CurrentUser fetches the signed-in user's profile.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/api/v1/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateCurrentUser applies a partial update to the signed-in user.
func (c *Client) UpdateCurrentUser(ctx context.Context, update UserUpdate) (*User, error) {
	var user User
	if err := c.patch(ctx, "/api/v1/users/me", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
