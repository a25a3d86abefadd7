package client

import (
	"context"
	"net/http"

	"github.com/medtracker/medtracker-go/internal/model"
)

func (c *Client) Prescriptions(ctx context.Context) ([]model.Prescription, error) {
	raw, err := c.getJSON(ctx, "/api/prescriptions")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Prescription](c.log, raw, "/api/prescriptions", "prescriptions")
}

func (c *Client) Prescription(ctx context.Context, id string) (model.Prescription, error) {
	raw, err := c.getJSON(ctx, "/api/prescriptions/%s", id)
	if err != nil {
		return model.Prescription{}, err
	}
	return objectPayload[model.Prescription](c.log, raw, "/api/prescriptions/%s", "prescription")
}

func (c *Client) CreatePrescription(ctx context.Context, req model.CreatePrescriptionRequest) (model.Prescription, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/prescriptions", req)
	if err != nil {
		return model.Prescription{}, err
	}
	return objectPayload[model.Prescription](c.log, raw, "/api/prescriptions", "prescription")
}

func (c *Client) ActivePrescriptions(ctx context.Context) ([]model.Prescription, error) {
	raw, err := c.getJSON(ctx, "/api/prescriptions/active")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Prescription](c.log, raw, "/api/prescriptions/active", "prescriptions")
}

func (c *Client) RefillNeededPrescriptions(ctx context.Context) ([]model.Prescription, error) {
	raw, err := c.getJSON(ctx, "/api/prescriptions/refill-needed")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Prescription](c.log, raw, "/api/prescriptions/refill-needed", "prescriptions")
}

// RefillPrescription requests one refill and returns the updated record.
func (c *Client) RefillPrescription(ctx context.Context, id string) (model.Prescription, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/prescriptions/%s/refill", nil, id)
	if err != nil {
		return model.Prescription{}, err
	}
	return objectPayload[model.Prescription](c.log, raw, "/api/prescriptions/%s/refill", "prescription")
}

// TransferPrescription moves a prescription to another pharmacy.
func (c *Client) TransferPrescription(ctx context.Context, id string, req model.TransferPrescriptionRequest) (model.Prescription, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/prescriptions/%s/transfer", req, id)
	if err != nil {
		return model.Prescription{}, err
	}
	return objectPayload[model.Prescription](c.log, raw, "/api/prescriptions/%s/transfer", "prescription")
}
