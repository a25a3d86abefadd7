package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/medtracker/medtracker-go/internal/model"
)

func (c *Client) Doctors(ctx context.Context) ([]model.Doctor, error) {
	raw, err := c.getJSON(ctx, "/api/doctors")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Doctor](c.log, raw, "/api/doctors", "doctors")
}

func (c *Client) Doctor(ctx context.Context, id string) (model.Doctor, error) {
	raw, err := c.getJSON(ctx, "/api/doctors/%s", id)
	if err != nil {
		return model.Doctor{}, err
	}
	return objectPayload[model.Doctor](c.log, raw, "/api/doctors/%s", "doctor")
}

// DoctorAvailability lists a doctor's open slots for a given date.
func (c *Client) DoctorAvailability(ctx context.Context, id, date string) ([]model.TimeSlot, error) {
	q := url.Values{}
	q.Set("date", date)

	raw, err := c.getJSONQuery(ctx, "/api/doctors/%s/availability", q, id)
	if err != nil {
		return nil, err
	}
	return listPayload[model.TimeSlot](c.log, raw, "/api/doctors/%s/availability", "slots")
}

func (c *Client) CreateDoctorReview(ctx context.Context, id string, req model.DoctorReviewRequest) (model.DoctorReview, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/api/doctors/%s/reviews", req, id)
	if err != nil {
		return model.DoctorReview{}, err
	}
	return objectPayload[model.DoctorReview](c.log, raw, "/api/doctors/%s/reviews", "review")
}

func (c *Client) Specialties(ctx context.Context) ([]string, error) {
	raw, err := c.getJSON(ctx, "/api/doctors/specialties")
	if err != nil {
		return nil, err
	}
	return listPayload[string](c.log, raw, "/api/doctors/specialties", "specialties")
}

func (c *Client) TopRatedDoctors(ctx context.Context) ([]model.Doctor, error) {
	raw, err := c.getJSON(ctx, "/api/doctors/top-rated")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Doctor](c.log, raw, "/api/doctors/top-rated", "doctors")
}
