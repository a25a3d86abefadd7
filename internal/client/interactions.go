package client

import (
	"context"
	"net/http"

	"github.com/medtracker/medtracker-go/internal/model"
)

// CheckInteractions screens a list of medication names against each
// other and returns any findings.
func (c *Client) CheckInteractions(ctx context.Context, req model.InteractionCheckRequest) ([]model.Interaction, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/medication-interactions/check", req)
	if err != nil {
		return nil, err
	}
	return listPayload[model.Interaction](c.log, raw, "/api/medication-interactions/check", "interactions")
}

func (c *Client) CheckPrescriptionInteractions(ctx context.Context, req model.PrescriptionInteractionCheckRequest) ([]model.Interaction, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/medication-interactions/check-prescriptions", req)
	if err != nil {
		return nil, err
	}
	return listPayload[model.Interaction](c.log, raw, "/api/medication-interactions/check-prescriptions", "interactions")
}

func (c *Client) CheckMixedInteractions(ctx context.Context, req model.MixedInteractionCheckRequest) ([]model.Interaction, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/medication-interactions/check-mixed", req)
	if err != nil {
		return nil, err
	}
	return listPayload[model.Interaction](c.log, raw, "/api/medication-interactions/check-mixed", "interactions")
}

func (c *Client) Interaction(ctx context.Context, id string) (model.Interaction, error) {
	raw, err := c.getJSON(ctx, "/api/medication-interactions/%s", id)
	if err != nil {
		return model.Interaction{}, err
	}
	return objectPayload[model.Interaction](c.log, raw, "/api/medication-interactions/%s", "interaction")
}

// AddInteractionMedication adds a medication to a saved check and
// returns the re-evaluated finding.
func (c *Client) AddInteractionMedication(ctx context.Context, id string, req model.AddInteractionMedicationRequest) (model.Interaction, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/medication-interactions/%s/medications", req, id)
	if err != nil {
		return model.Interaction{}, err
	}
	return objectPayload[model.Interaction](c.log, raw, "/api/medication-interactions/%s/medications", "interaction")
}

func (c *Client) RemoveInteractionMedication(ctx context.Context, id, medication string) (model.Interaction, error) {
	raw, err := c.doJSON(ctx, http.MethodDelete, "/api/medication-interactions/%s/medications/%s", nil, id, medication)
	if err != nil {
		return model.Interaction{}, err
	}
	return objectPayload[model.Interaction](c.log, raw, "/api/medication-interactions/%s/medications/%s", "interaction")
}

// CommonInteractions lists frequently encountered drug interactions.
func (c *Client) CommonInteractions(ctx context.Context) ([]model.Interaction, error) {
	raw, err := c.getJSON(ctx, "/api/medication-interactions/common")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Interaction](c.log, raw, "/api/medication-interactions/common", "interactions")
}
