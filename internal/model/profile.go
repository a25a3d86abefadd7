package model

type Profile struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone,omitempty"`
	DateOfBirth       string      `json:"dateOfBirth,omitempty"`
	Gender            string      `json:"gender,omitempty"`
	BloodType         string      `json:"bloodType,omitempty"`
	Height            float64     `json:"height,omitempty"`
	Weight            float64     `json:"weight,omitempty"`
	Allergies         []string    `json:"allergies,omitempty"`
	Conditions        []string    `json:"conditions,omitempty"`
	EmergencyContact  string      `json:"emergencyContact,omitempty"`
	InsuranceProvider string      `json:"insuranceProvider,omitempty"`
	Providers         []Provider  `json:"providers,omitempty"`
	Preferences       Preferences `json:"preferences,omitempty"`
}

// Provider is a linked healthcare provider on the patient profile.
type Provider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type Preferences struct {
	EmailNotifications bool   `json:"emailNotifications"`
	SMSNotifications   bool   `json:"smsNotifications"`
	ReminderLeadTime   int    `json:"reminderLeadTime,omitempty"`
	Language           string `json:"language,omitempty"`
	Timezone           string `json:"timezone,omitempty"`
}

type UpdateProfileRequest struct {
	Name             *string   `json:"name,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	DateOfBirth      *string   `json:"dateOfBirth,omitempty"`
	Gender           *string   `json:"gender,omitempty"`
	BloodType        *string   `json:"bloodType,omitempty"`
	Height           *float64  `json:"height,omitempty"`
	Weight           *float64  `json:"weight,omitempty"`
	Allergies        *[]string `json:"allergies,omitempty"`
	Conditions       *[]string `json:"conditions,omitempty"`
	EmergencyContact *string   `json:"emergencyContact,omitempty"`
}

type UpdateSecurityRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type AddProviderRequest struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// HealthSummary is the server-aggregated overview shown on the profile
// page; shape is server-owned and passed through.
type HealthSummary map[string]interface{}
