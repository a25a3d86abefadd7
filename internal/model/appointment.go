package model

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	ID         string            `json:"id"`
	DoctorID   string            `json:"doctorId"`
	DoctorName string            `json:"doctorName,omitempty"`
	Specialty  string            `json:"specialty,omitempty"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
	Type       string            `json:"type,omitempty"`
	Location   string            `json:"location,omitempty"`
	Status     AppointmentStatus `json:"status,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  string            `json:"createdAt,omitempty"`
	UpdatedAt  string            `json:"updatedAt,omitempty"`
}

type CreateAppointmentRequest struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=checkup followup consultation emergency"`
	Reason   string `json:"reason,omitempty" validate:"max=1000"`
}

type UpdateAppointmentRequest struct {
	Date   *string            `json:"date,omitempty"`
	Time   *string            `json:"time,omitempty"`
	Status *AppointmentStatus `json:"status,omitempty"`
	Reason *string            `json:"reason,omitempty"`
	Notes  *string            `json:"notes,omitempty"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

// TimeSlot is one bookable slot from the available-slots endpoint.
type TimeSlot struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
