package api

import "context"

// ListColleges lists the registered colleges, used to populate the college
// picker during registration.
func (c *Client) ListColleges(ctx context.Context) ([]College, error) {
	var colleges []College
	if err := c.get(ctx, "/api/v1/colleges", nil, &colleges); err != nil {
		return nil, err
	}
	return colleges, nil
}

// CreateCollege registers a new college. Admin only.
func (c *Client) CreateCollege(ctx context.Context, create CollegeCreate) (*College, error) {
	var college College
	if err := c.post(ctx, "/api/v1/colleges", create, &college); err != nil {
		return nil, err
	}
	return &college, nil
}
