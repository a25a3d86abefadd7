package model

type PrescriptionStatus string

const (
	PrescriptionStatusActive  PrescriptionStatus = "active"
	PrescriptionStatusExpired PrescriptionStatus = "expired"
	PrescriptionStatusPending PrescriptionStatus = "pending"
)

type Prescription struct {
	ID              string             `json:"id"`
	MedicationName  string             `json:"medicationName"`
	Dosage          string             `json:"dosage,omitempty"`
	PrescribedBy    string             `json:"prescribedBy,omitempty"`
	Pharmacy        string             `json:"pharmacy,omitempty"`
	RefillsLeft     int                `json:"refillsLeft"`
	LastRefillDate  string             `json:"lastRefillDate,omitempty"`
	ExpiryDate      string             `json:"expiryDate,omitempty"`
	Status          PrescriptionStatus `json:"status,omitempty"`
	Instructions    string             `json:"instructions,omitempty"`
	CreatedAt       string             `json:"createdAt,omitempty"`
	UpdatedAt       string             `json:"updatedAt,omitempty"`
}

type CreatePrescriptionRequest struct {
	MedicationName string `json:"medicationName" validate:"required"`
	Dosage         string `json:"dosage,omitempty"`
	PrescribedBy   string `json:"prescribedBy,omitempty"`
	Pharmacy       string `json:"pharmacy,omitempty"`
	RefillsLeft    int    `json:"refillsLeft,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	Instructions   string `json:"instructions,omitempty" validate:"max=1000"`
}

type TransferPrescriptionRequest struct {
	Pharmacy        string `json:"pharmacy" validate:"required"`
	PharmacyAddress string `json:"pharmacyAddress,omitempty"`
	PharmacyPhone   string `json:"pharmacyPhone,omitempty"`
}
