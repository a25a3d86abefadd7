package client

import (
	"context"
	"net/http"

	"github.com/medtracker/medtracker-go/internal/model"
)

func (c *Client) HealthMetrics(ctx context.Context) ([]model.HealthMetric, error) {
	raw, err := c.getJSON(ctx, "/api/health-metrics")
	if err != nil {
		return nil, err
	}
	return listPayload[model.HealthMetric](c.log, raw, "/api/health-metrics", "metrics")
}

func (c *Client) HealthMetric(ctx context.Context, id string) (model.HealthMetric, error) {
	raw, err := c.getJSON(ctx, "/api/health-metrics/%s", id)
	if err != nil {
		return model.HealthMetric{}, err
	}
	return objectPayload[model.HealthMetric](c.log, raw, "/api/health-metrics/%s", "metric")
}

func (c *Client) CreateHealthMetric(ctx context.Context, req model.CreateHealthMetricRequest) (model.HealthMetric, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/health-metrics", req)
	if err != nil {
		return model.HealthMetric{}, err
	}
	return objectPayload[model.HealthMetric](c.log, raw, "/api/health-metrics", "metric")
}

// HealthMetricsSummary returns the latest reading per metric type.
func (c *Client) HealthMetricsSummary(ctx context.Context) (model.MetricsSummary, error) {
	raw, err := c.getJSON(ctx, "/api/health-metrics/summary")
	if err != nil {
		return nil, err
	}
	return objectPayload[model.MetricsSummary](c.log, raw, "/api/health-metrics/summary", "summary")
}

// HealthMetricsTrends returns per-type trend series; the envelope is
// bare in current server iterations.
func (c *Client) HealthMetricsTrends(ctx context.Context) (model.ChartData, error) {
	raw, err := c.getJSON(ctx, "/api/health-metrics/trends")
	if err != nil {
		return nil, err
	}
	return objectOrBare[model.ChartData](c.log, raw, "/api/health-metrics/trends", "trends")
}

func (c *Client) BMI(ctx context.Context) (model.BMIResult, error) {
	raw, err := c.getJSON(ctx, "/api/health-metrics/bmi")
	if err != nil {
		return model.BMIResult{}, err
	}
	return objectOrBare[model.BMIResult](c.log, raw, "/api/health-metrics/bmi", "bmi")
}
