package model

type NotificationType string

const (
	NotificationTypeMedication  NotificationType = "medication"
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeRefill      NotificationType = "refill"
	NotificationTypeSystem      NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type,omitempty"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt string           `json:"createdAt,omitempty"`
}

type MedicationReminderRequest struct {
	MedicationID string   `json:"medicationId" validate:"required"`
	Times        []string `json:"times" validate:"required,min=1"`
}

type AppointmentReminderRequest struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
	LeadMinutes   int    `json:"leadMinutes,omitempty" validate:"omitempty,min=5"`
}
