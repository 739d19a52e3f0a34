package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// InternshipFilters narrows an internship listing. Zero-valued fields are
// omitted from the query string entirely, never sent as empty strings.
type InternshipFilters struct {
	// Remote filters by remote availability when set.
	Remote *bool

	// MinCredits keeps internships worth at least this many credits.
	MinCredits *int

	// Location is a case-insensitive location match.
	Location string

	// Skills keeps internships that include all of the given skills.
	Skills []string

	// Status filters by posting status (OPEN, CLOSED). The API defaults
	// students to OPEN when unset.
	Status string

	// Search is a free-text filter over title, description, location, and
	// skills. It is applied client-side; the API has no search parameter.
	Search string
}

func (f *InternshipFilters) query() url.Values {
	query := url.Values{}
	if f == nil {
		return query
	}
	if f.Remote != nil {
		query.Set("remote", strconv.FormatBool(*f.Remote))
	}
	if f.MinCredits != nil {
		query.Set("min_credits", strconv.Itoa(*f.MinCredits))
	}
	setParam(query, "location", strings.TrimSpace(f.Location))
	for _, skill := range f.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			query.Add("skills", skill)
		}
	}
	setParam(query, "status", f.Status)
	return query
}

// matchesSearch applies the client-side free-text filter.
func (f *InternshipFilters) matchesSearch(in *Internship) bool {
	if f == nil {
		return true
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	fields := []string{in.Title, strings.Join(in.Skills, " ")}
	if in.Description != nil {
		fields = append(fields, *in.Description)
	}
	if in.Location != nil {
		fields = append(fields, *in.Location)
	}
	return strings.Contains(strings.ToLower(strings.Join(fields, " ")), term)
}

// ListInternships lists internships matching the filters.
func (c *Client) ListInternships(ctx context.Context, filters *InternshipFilters) ([]Internship, error) {
	var internships []Internship
	if err := c.get(ctx, "/api/v1/internships", filters.query(), &internships); err != nil {
		return nil, err
	}

	if filters == nil || filters.Search == "" {
		return internships, nil
	}
	matched := internships[:0]
	for i := range internships {
		if filters.matchesSearch(&internships[i]) {
			matched = append(matched, internships[i])
		}
	}
	return matched, nil
}

// GetInternship fetches a single internship by ID.
func (c *Client) GetInternship(ctx context.Context, id string) (*Internship, error) {
	var internship Internship
	if err := c.get(ctx, "/api/v1/internships/"+url.PathEscape(id), nil, &internship); err != nil {
		return nil, err
	}
	return &internship, nil
}

// CreateInternship posts a new internship.
func (c *Client) CreateInternship(ctx context.Context, create InternshipCreate) (*Internship, error) {
	if create.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	var internship Internship
	if err := c.post(ctx, "/api/v1/internships", create, &internship); err != nil {
		return nil, err
	}
	return &internship, nil
}

// UpdateInternship applies a partial update to an internship.
func (c *Client) UpdateInternship(ctx context.Context, id string, update InternshipUpdate) (*Internship, error) {
	var internship Internship
	if err := c.patch(ctx, "/api/v1/internships/"+url.PathEscape(id), update, &internship); err != nil {
		return nil, err
	}
	return &internship, nil
}

// DeleteInternship removes an internship posting.
func (c *Client) DeleteInternship(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v1/internships/"+url.PathEscape(id))
}
