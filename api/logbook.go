package api

import (
	"context"
	"net/url"
)

// ListLogbookEntries lists logbook entries, optionally scoped to one
// application.
func (c *Client) ListLogbookEntries(ctx context.Context, applicationID string) ([]LogbookEntry, error) {
	query := url.Values{}
	setParam(query, "application_id", applicationID)

	var entries []LogbookEntry
	if err := c.get(ctx, "/api/v1/logbook-entries", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetLogbookEntry fetches a single logbook entry by ID.
func (c *Client) GetLogbookEntry(ctx context.Context, id string) (*LogbookEntry, error) {
	var entry LogbookEntry
	if err := c.get(ctx, "/api/v1/logbook-entries/"+url.PathEscape(id), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateLogbookEntry records a new logbook entry.
func (c *Client) CreateLogbookEntry(ctx context.Context, create LogbookEntryCreate) (*LogbookEntry, error) {
	var entry LogbookEntry
	if err := c.post(ctx, "/api/v1/logbook-entries", create, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateLogbookEntry applies a partial update to a logbook entry, such as
// a faculty approval with comments.
func (c *Client) UpdateLogbookEntry(ctx context.Context, id string, update LogbookEntryUpdate) (*LogbookEntry, error) {
	var entry LogbookEntry
	if err := c.patch(ctx, "/api/v1/logbook-entries/"+url.PathEscape(id), update, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
