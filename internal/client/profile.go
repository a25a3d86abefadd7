package client

import (
	"context"
	"net/http"

	"github.com/medtracker/medtracker-go/internal/model"
)

// Profile returns the patient profile. Earlier server iterations return
// it bare, later ones nest it under "profile"; both are accepted.
func (c *Client) Profile(ctx context.Context) (model.Profile, error) {
	raw, err := c.getJSON(ctx, "/api/profile")
	if err != nil {
		return model.Profile{}, err
	}
	return objectOrBare[model.Profile](c.log, raw, "/api/profile", "profile")
}

func (c *Client) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (model.Profile, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/api/profile", req)
	if err != nil {
		return model.Profile{}, err
	}
	return objectOrBare[model.Profile](c.log, raw, "/api/profile", "profile")
}

func (c *Client) UpdatePreferences(ctx context.Context, prefs model.Preferences) (model.Preferences, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/api/profile/preferences", prefs)
	if err != nil {
		return model.Preferences{}, err
	}
	return objectPayload[model.Preferences](c.log, raw, "/api/profile/preferences", "preferences")
}

func (c *Client) UpdateSecurity(ctx context.Context, req model.UpdateSecurityRequest) error {
	_, err := c.doJSON(ctx, http.MethodPut, "/api/profile/security", req)
	return err
}

func (c *Client) AddProvider(ctx context.Context, req model.AddProviderRequest) (model.Provider, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/profile/providers", req)
	if err != nil {
		return model.Provider{}, err
	}
	return objectPayload[model.Provider](c.log, raw, "/api/profile/providers", "provider")
}

func (c *Client) RemoveProvider(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/profile/providers/%s", nil, id)
	return err
}

func (c *Client) ProfileHealthSummary(ctx context.Context) (model.HealthSummary, error) {
	raw, err := c.getJSON(ctx, "/api/profile/health-summary")
	if err != nil {
		return nil, err
	}
	return objectOrBare[model.HealthSummary](c.log, raw, "/api/profile/health-summary", "summary")
}

// DeleteAccount permanently removes the patient account server-side.
// The local session is left to the caller, who typically clears it.
func (c *Client) DeleteAccount(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/profile/account", nil)
	return err
}
