package client

import (
	"context"
	"net/http"

	"github.com/medtracker/medtracker-go/internal/model"
)

func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	raw, err := c.getJSON(ctx, "/api/notifications")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Notification](c.log, raw, "/api/notifications", "notifications")
}

func (c *Client) Notification(ctx context.Context, id string) (model.Notification, error) {
	raw, err := c.getJSON(ctx, "/api/notifications/%s", id)
	if err != nil {
		return model.Notification{}, err
	}
	return objectPayload[model.Notification](c.log, raw, "/api/notifications/%s", "notification")
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) (model.Notification, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/api/notifications/%s/read", nil, id)
	if err != nil {
		return model.Notification{}, err
	}
	return objectPayload[model.Notification](c.log, raw, "/api/notifications/%s/read", "notification")
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodPut, "/api/notifications/read-all", nil)
	return err
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/notifications/%s", nil, id)
	return err
}

func (c *Client) CreateMedicationReminder(ctx context.Context, req model.MedicationReminderRequest) (model.Notification, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/notifications/medication-reminder", req)
	if err != nil {
		return model.Notification{}, err
	}
	return objectPayload[model.Notification](c.log, raw, "/api/notifications/medication-reminder", "notification")
}

func (c *Client) CreateAppointmentReminder(ctx context.Context, req model.AppointmentReminderRequest) (model.Notification, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/notifications/appointment-reminder", req)
	if err != nil {
		return model.Notification{}, err
	}
	return objectPayload[model.Notification](c.log, raw, "/api/notifications/appointment-reminder", "notification")
}

// SendTestNotification asks the server to deliver a test notification.
func (c *Client) SendTestNotification(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/api/notifications/test", nil)
	return err
}
