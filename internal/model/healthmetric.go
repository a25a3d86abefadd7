package model

type HealthMetric struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Secondary  float64 `json:"secondary,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	RecordedAt string  `json:"recordedAt,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

type CreateHealthMetricRequest struct {
	Type       string  `json:"type" validate:"required,oneof=blood_pressure heart_rate weight blood_sugar temperature oxygen_saturation"`
	Value      float64 `json:"value" validate:"required"`
	Secondary  float64 `json:"secondary,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	RecordedAt string  `json:"recordedAt,omitempty"`
	Notes      string  `json:"notes,omitempty" validate:"max=500"`
}

// MetricsSummary aggregates the latest reading per metric type. The
// server owns the aggregation shape; the client passes it through.
type MetricsSummary map[string]interface{}

// BMIResult is the computed body-mass-index reading.
type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
}
