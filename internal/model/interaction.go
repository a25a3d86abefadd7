package model

type InteractionSeverity string

const (
	InteractionSeverityMinor    InteractionSeverity = "minor"
	InteractionSeverityModerate InteractionSeverity = "moderate"
	InteractionSeverityMajor    InteractionSeverity = "major"
)

// Interaction is one saved or detected drug-interaction finding.
type Interaction struct {
	ID          string              `json:"id"`
	Medications []string            `json:"medications"`
	Severity    InteractionSeverity `json:"severity,omitempty"`
	Description string              `json:"description,omitempty"`
	Advice      string              `json:"advice,omitempty"`
	CheckedAt   string              `json:"checkedAt,omitempty"`
}

type InteractionCheckRequest struct {
	Medications []string `json:"medications" validate:"required,min=2"`
}

type PrescriptionInteractionCheckRequest struct {
	PrescriptionIDs []string `json:"prescriptionIds" validate:"required,min=2"`
}

type MixedInteractionCheckRequest struct {
	Medications     []string `json:"medications,omitempty"`
	PrescriptionIDs []string `json:"prescriptionIds,omitempty"`
}

type AddInteractionMedicationRequest struct {
	Medication string `json:"medication" validate:"required"`
}
