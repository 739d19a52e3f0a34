package api

import (
	"context"
	"net/url"
)

// CreditFilters narrows a credit listing.
type CreditFilters struct {
	StudentID    string
	InternshipID string
}

// ListCredits lists awarded credits visible to the signed-in role.
func (c *Client) ListCredits(ctx context.Context, filters *CreditFilters) ([]Credit, error) {
	query := url.Values{}
	if filters != nil {
		setParam(query, "student_id", filters.StudentID)
		setParam(query, "internship_id", filters.InternshipID)
	}

	var credits []Credit
	if err := c.get(ctx, "/api/v1/credits", query, &credits); err != nil {
		return nil, err
	}
	return credits, nil
}

// GetCredit fetches one credit award by ID.
func (c *Client) GetCredit(ctx context.Context, id string) (*Credit, error) {
	var credit Credit
	if err := c.get(ctx, "/api/v1/credits/"+url.PathEscape(id), nil, &credit); err != nil {
		return nil, err
	}
	return &credit, nil
}

// AwardCredit records a credit award for a completed internship. Faculty only.
func (c *Client) AwardCredit(ctx context.Context, create CreditCreate) (*Credit, error) {
	var credit Credit
	if err := c.post(ctx, "/api/v1/credits", create, &credit); err != nil {
		return nil, err
	}
	return &credit, nil
}
