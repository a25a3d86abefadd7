package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtracker/medtracker-go/internal/apitest"
	"github.com/medtracker/medtracker-go/internal/model"
)

func TestMedicationAdapters(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	meds, err := c.Medications(ctx)
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "Lisinopril", meds[0].Name)

	med, err := c.Medication(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "m1", med.ID)
	assert.Equal(t, http.MethodGet, srv.LastRequest().Method)
	assert.Equal(t, "/api/medications/m1", srv.LastRequest().Path)

	taken, err := c.TakeMedication(ctx, "m1")
	require.NoError(t, err)
	assert.NotEmpty(t, taken.LastTakenAt)
	assert.Equal(t, "/api/medications/m1/take", srv.LastRequest().Path)

	schedule, err := c.MedicationSchedule(ctx)
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, "08:00", schedule[0].Time)

	require.NoError(t, c.DeleteMedication(ctx, "m1"))
	assert.Equal(t, http.MethodDelete, srv.LastRequest().Method)
}

func TestAppointmentAdapters(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	appt, err := c.CreateAppointment(ctx, model.CreateAppointmentRequest{
		DoctorID: "d1", Date: "2025-07-01", Time: "09:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", appt.ID)

	cancelled, err := c.CancelAppointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCancelled, cancelled.Status)

	past, err := c.PastAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, past)

	slots, err := c.AvailableSlots(ctx, "d1", "2025-07-01")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "2025-07-01", slots[0].Date)
	assert.Equal(t, "/api/appointments/available-slots", srv.LastRequest().Path)
}

func TestPrescriptionAdapters(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	rx, err := c.RefillPrescription(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, rx.RefillsLeft)

	transferred, err := c.TransferPrescription(ctx, "p1", model.TransferPrescriptionRequest{Pharmacy: "New Pharmacy"})
	require.NoError(t, err)
	assert.Equal(t, "New Pharmacy", transferred.Pharmacy)

	needed, err := c.RefillNeededPrescriptions(ctx)
	require.NoError(t, err)
	assert.Empty(t, needed)
}

func TestHealthMetricAdapters(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	metrics, err := c.HealthMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "heart_rate", metrics[0].Type)

	summary, err := c.HealthMetricsSummary(ctx)
	require.NoError(t, err)
	assert.Contains(t, summary, "heart_rate")

	bmi, err := c.BMI(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 22.9, bmi.BMI, 0.01)
	assert.Equal(t, "normal", bmi.Category)
}

func TestDoctorAdapters(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	specialties, err := c.Specialties(ctx)
	require.NoError(t, err)
	assert.Contains(t, specialties, "Cardiology")

	slots, err := c.DoctorAvailability(ctx, "d1", "2025-07-02")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "2025-07-02", slots[0].Date)

	review, err := c.CreateDoctorReview(ctx, "d1", model.DoctorReviewRequest{Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "d1", review.DoctorID)
}

func TestNotificationAdapters(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	notes, err := c.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.False(t, notes[0].Read)

	read, err := c.MarkNotificationRead(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, read.Read)

	require.NoError(t, c.MarkAllNotificationsRead(ctx))
	assert.Equal(t, "/api/notifications/read-all", srv.LastRequest().Path)
}

func TestInteractionAdapters(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	findings, err := c.CheckInteractions(ctx, model.InteractionCheckRequest{
		Medications: []string{"warfarin", "aspirin"},
	})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, model.InteractionSeverityMajor, findings[0].Severity)

	none, err := c.CheckPrescriptionInteractions(ctx, model.PrescriptionInteractionCheckRequest{
		PrescriptionIDs: []string{"p1", "p2"},
	})
	require.NoError(t, err)
	assert.Empty(t, none)

	removed, err := c.RemoveInteractionMedication(ctx, "i1", "aspirin")
	require.NoError(t, err)
	assert.Equal(t, model.InteractionSeverityMinor, removed.Severity)
}

func TestProfileAdapters(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	// /api/profile returns a bare record
	profile, err := c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "O+", profile.BloodType)

	prefs, err := c.UpdatePreferences(ctx, model.Preferences{EmailNotifications: true})
	require.NoError(t, err)
	assert.True(t, prefs.EmailNotifications)

	require.NoError(t, c.DeleteAccount(ctx))
	assert.Equal(t, "/api/profile/account", srv.LastRequest().Path)
}

func TestVisualizationAdapters(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	chart, err := c.MedicationAdherenceChart(ctx)
	require.NoError(t, err)
	assert.Contains(t, chart, "adherence")

	dash, err := c.DashboardVisualization(ctx)
	require.NoError(t, err)
	assert.Contains(t, dash, "widgets")
}

func TestExportHistory(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)

	history, err := c.ExportHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "pdf", history[0].Format)
}

func TestListAdaptersLenientOnMissingKey(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	srv.Override(http.MethodGet, "/api/medications", http.StatusOK, map[string]string{"status": "ok"})
	srv.Override(http.MethodGet, "/api/notifications", http.StatusOK, map[string]interface{}{"notifications": nil})

	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	meds, err := c.Medications(ctx)
	require.NoError(t, err)
	assert.Empty(t, meds)

	notes, err := c.Notifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestObjectAdaptersLenientOnMissingKey(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	srv.Override(http.MethodGet, "/api/medications/:id", http.StatusOK, map[string]string{"status": "ok"})

	c, sess := newTestClient(t, srv)
	login(t, sess)

	med, err := c.Medication(context.Background(), "m1")
	require.NoError(t, err)
	assert.Empty(t, med.ID)
}
