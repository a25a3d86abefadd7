package model

type MedicationStatus string

const (
	MedicationStatusActive       MedicationStatus = "active"
	MedicationStatusPaused       MedicationStatus = "paused"
	MedicationStatusDiscontinued MedicationStatus = "discontinued"
)

type Medication struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Dosage       string           `json:"dosage"`
	Frequency    string           `json:"frequency"`
	Times        []string         `json:"times,omitempty"`
	StartDate    string           `json:"startDate,omitempty"`
	EndDate      string           `json:"endDate,omitempty"`
	RefillDate   string           `json:"refillDate,omitempty"`
	Quantity     int              `json:"quantity,omitempty"`
	Status       MedicationStatus `json:"status,omitempty"`
	PrescribedBy string           `json:"prescribedBy,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	LastTakenAt  string           `json:"lastTakenAt,omitempty"`
	CreatedAt    string           `json:"createdAt,omitempty"`
	UpdatedAt    string           `json:"updatedAt,omitempty"`
}

type CreateMedicationRequest struct {
	Name       string   `json:"name" validate:"required"`
	Dosage     string   `json:"dosage" validate:"required"`
	Frequency  string   `json:"frequency" validate:"required"`
	Times      []string `json:"times,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	RefillDate string   `json:"refillDate,omitempty"`
	Quantity   int      `json:"quantity,omitempty"`
	Notes      string   `json:"notes,omitempty" validate:"max=1000"`
}

type UpdateMedicationRequest struct {
	Name       *string           `json:"name,omitempty"`
	Dosage     *string           `json:"dosage,omitempty"`
	Frequency  *string           `json:"frequency,omitempty"`
	Times      *[]string         `json:"times,omitempty"`
	EndDate    *string           `json:"endDate,omitempty"`
	RefillDate *string           `json:"refillDate,omitempty"`
	Quantity   *int              `json:"quantity,omitempty"`
	Status     *MedicationStatus `json:"status,omitempty"`
	Notes      *string           `json:"notes,omitempty"`
}

// ScheduleEntry is one dose slot in the daily medication schedule.
type ScheduleEntry struct {
	MedicationID string `json:"medicationId"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Time         string `json:"time"`
	Taken        bool   `json:"taken"`
}
