package api

import (
	"context"

	"github.com/fdatrack/fdatrack/internal/client/models"
)

// GetDashboardStats fetches the summary counters for the landing view.
func (c *Client) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.getJSON(ctx, "/api/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
