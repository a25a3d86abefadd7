package client

import (
	"context"

	"github.com/medtracker/medtracker-go/internal/model"
)

// Visualization endpoints return server-rendered chart payloads; the
// client passes them through for presentation.

func (c *Client) HealthTrendsChart(ctx context.Context) (model.ChartData, error) {
	raw, err := c.getJSON(ctx, "/api/visualization/health-trends")
	if err != nil {
		return nil, err
	}
	return objectOrBare[model.ChartData](c.log, raw, "/api/visualization/health-trends", "data")
}

func (c *Client) MedicationAdherenceChart(ctx context.Context) (model.ChartData, error) {
	raw, err := c.getJSON(ctx, "/api/visualization/medication-adherence")
	if err != nil {
		return nil, err
	}
	return objectOrBare[model.ChartData](c.log, raw, "/api/visualization/medication-adherence", "data")
}

func (c *Client) AppointmentStatsChart(ctx context.Context) (model.ChartData, error) {
	raw, err := c.getJSON(ctx, "/api/visualization/appointment-stats")
	if err != nil {
		return nil, err
	}
	return objectOrBare[model.ChartData](c.log, raw, "/api/visualization/appointment-stats", "data")
}

func (c *Client) DashboardVisualization(ctx context.Context) (model.ChartData, error) {
	raw, err := c.getJSON(ctx, "/api/visualization/dashboard")
	if err != nil {
		return nil, err
	}
	return objectOrBare[model.ChartData](c.log, raw, "/api/visualization/dashboard", "data")
}
