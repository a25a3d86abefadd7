package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/medtracker/medtracker-go/internal/model"
)

func (c *Client) Appointments(ctx context.Context) ([]model.Appointment, error) {
	raw, err := c.getJSON(ctx, "/api/appointments")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Appointment](c.log, raw, "/api/appointments", "appointments")
}

func (c *Client) Appointment(ctx context.Context, id string) (model.Appointment, error) {
	raw, err := c.getJSON(ctx, "/api/appointments/%s", id)
	if err != nil {
		return model.Appointment{}, err
	}
	return objectPayload[model.Appointment](c.log, raw, "/api/appointments/%s", "appointment")
}

func (c *Client) CreateAppointment(ctx context.Context, req model.CreateAppointmentRequest) (model.Appointment, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/appointments", req)
	if err != nil {
		return model.Appointment{}, err
	}
	return objectPayload[model.Appointment](c.log, raw, "/api/appointments", "appointment")
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, req model.UpdateAppointmentRequest) (model.Appointment, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/api/appointments/%s", req, id)
	if err != nil {
		return model.Appointment{}, err
	}
	return objectPayload[model.Appointment](c.log, raw, "/api/appointments/%s", "appointment")
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/appointments/%s", nil, id)
	return err
}

func (c *Client) CancelAppointment(ctx context.Context, id string) (model.Appointment, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/api/appointments/%s/cancel", nil, id)
	if err != nil {
		return model.Appointment{}, err
	}
	return objectPayload[model.Appointment](c.log, raw, "/api/appointments/%s/cancel", "appointment")
}

func (c *Client) RescheduleAppointment(ctx context.Context, id string, req model.RescheduleAppointmentRequest) (model.Appointment, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/api/appointments/%s/reschedule", req, id)
	if err != nil {
		return model.Appointment{}, err
	}
	return objectPayload[model.Appointment](c.log, raw, "/api/appointments/%s/reschedule", "appointment")
}

func (c *Client) UpcomingAppointments(ctx context.Context) ([]model.Appointment, error) {
	raw, err := c.getJSON(ctx, "/api/appointments/upcoming")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Appointment](c.log, raw, "/api/appointments/upcoming", "appointments")
}

func (c *Client) PastAppointments(ctx context.Context) ([]model.Appointment, error) {
	raw, err := c.getJSON(ctx, "/api/appointments/past")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Appointment](c.log, raw, "/api/appointments/past", "appointments")
}

// AvailableSlots lists bookable slots for a doctor on a given date.
func (c *Client) AvailableSlots(ctx context.Context, doctorID, date string) ([]model.TimeSlot, error) {
	q := url.Values{}
	q.Set("doctorId", doctorID)
	q.Set("date", date)

	raw, err := c.getJSONQuery(ctx, "/api/appointments/available-slots", q)
	if err != nil {
		return nil, err
	}
	return listPayload[model.TimeSlot](c.log, raw, "/api/appointments/available-slots", "slots")
}
