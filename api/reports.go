package api

import (
	"context"
	"net/url"
)

// ReportFilters narrows a report listing.
type ReportFilters struct {
	StudentID     string
	InternshipID  string
	ApplicationID string
}

// ListReports lists completion reports visible to the signed-in role.
func (c *Client) ListReports(ctx context.Context, filters *ReportFilters) ([]Report, error) {
	query := url.Values{}
	if filters != nil {
		setParam(query, "student_id", filters.StudentID)
		setParam(query, "internship_id", filters.InternshipID)
		setParam(query, "application_id", filters.ApplicationID)
	}

	var reports []Report
	if err := c.get(ctx, "/api/v1/reports", query, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport fetches one report by ID.
func (c *Client) GetReport(ctx context.Context, id string) (*Report, error) {
	var report Report
	if err := c.get(ctx, "/api/v1/reports/"+url.PathEscape(id), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetReportByQRToken resolves a report from its QR code token.
func (c *Client) GetReportByQRToken(ctx context.Context, token string) (*Report, error) {
	var report Report
	if err := c.get(ctx, "/api/v1/reports/qr/"+url.PathEscape(token), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// CreateReport registers a generated completion report for an application.
func (c *Client) CreateReport(ctx context.Context, create ReportCreate) (*Report, error) {
	var report Report
	if err := c.post(ctx, "/api/v1/reports", create, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
