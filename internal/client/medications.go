package client

import (
	"context"
	"net/http"

	"github.com/medtracker/medtracker-go/internal/model"
)

func (c *Client) Medications(ctx context.Context) ([]model.Medication, error) {
	raw, err := c.getJSON(ctx, "/api/medications")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Medication](c.log, raw, "/api/medications", "medications")
}

func (c *Client) Medication(ctx context.Context, id string) (model.Medication, error) {
	raw, err := c.getJSON(ctx, "/api/medications/%s", id)
	if err != nil {
		return model.Medication{}, err
	}
	return objectPayload[model.Medication](c.log, raw, "/api/medications/%s", "medication")
}

func (c *Client) CreateMedication(ctx context.Context, req model.CreateMedicationRequest) (model.Medication, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/medications", req)
	if err != nil {
		return model.Medication{}, err
	}
	return objectPayload[model.Medication](c.log, raw, "/api/medications", "medication")
}

func (c *Client) UpdateMedication(ctx context.Context, id string, req model.UpdateMedicationRequest) (model.Medication, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/api/medications/%s", req, id)
	if err != nil {
		return model.Medication{}, err
	}
	return objectPayload[model.Medication](c.log, raw, "/api/medications/%s", "medication")
}

func (c *Client) DeleteMedication(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/medications/%s", nil, id)
	return err
}

// MedicationsRefillSoon lists medications whose refill date is near.
func (c *Client) MedicationsRefillSoon(ctx context.Context) ([]model.Medication, error) {
	raw, err := c.getJSON(ctx, "/api/medications/refill-soon")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Medication](c.log, raw, "/api/medications/refill-soon", "medications")
}

// MedicationSchedule returns today's dose slots.
func (c *Client) MedicationSchedule(ctx context.Context) ([]model.ScheduleEntry, error) {
	raw, err := c.getJSON(ctx, "/api/medications/schedule")
	if err != nil {
		return nil, err
	}
	return listPayload[model.ScheduleEntry](c.log, raw, "/api/medications/schedule", "schedule")
}

// TakeMedication records a dose as taken and returns the updated record.
func (c *Client) TakeMedication(ctx context.Context, id string) (model.Medication, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/medications/%s/take", nil, id)
	if err != nil {
		return model.Medication{}, err
	}
	return objectPayload[model.Medication](c.log, raw, "/api/medications/%s/take", "medication")
}
