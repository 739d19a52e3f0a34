package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListApplications lists the applications visible to the signed-in role:
// students see their own, industry sees applications to their postings,
// faculty sees their students'.
func (c *Client) ListApplications(ctx context.Context) ([]Application, error) {
	var applications []Application
	if err := c.get(ctx, "/api/v1/applications", nil, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// GetApplication fetches a single application by ID.
func (c *Client) GetApplication(ctx context.Context, id string) (*Application, error) {
	var application Application
	if err := c.get(ctx, "/api/v1/applications/"+url.PathEscape(id), nil, &application); err != nil {
		return nil, err
	}
	return &application, nil
}

// Apply submits an application to an internship.
func (c *Client) Apply(ctx context.Context, create ApplicationCreate) (*Application, error) {
	if create.InternshipID == "" {
		return nil, fmt.Errorf("internship ID is required")
	}
	var application Application
	if err := c.post(ctx, "/api/v1/applications", create, &application); err != nil {
		return nil, err
	}
	return &application, nil
}

// UpdateApplication applies a partial review update. Reviewers only ever
// set their own decision field; the API rejects cross-role writes.
func (c *Client) UpdateApplication(ctx context.Context, id string, update ApplicationUpdate) (*Application, error) {
	var application Application
	if err := c.patch(ctx, "/api/v1/applications/"+url.PathEscape(id), update, &application); err != nil {
		return nil, err
	}
	return &application, nil
}
