package api

import "context"

// Metrics fetches the role-scoped analytics summary for dashboards.
func (c *Client) Metrics(ctx context.Context) (*MetricsSummary, error) {
	var summary MetricsSummary
	if err := c.get(ctx, "/api/v1/analytics/metrics", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
