package model

type ExportRequest struct {
	Format    string   `json:"format" validate:"required,oneof=pdf csv json"`
	Sections  []string `json:"sections,omitempty"`
	DateFrom  string   `json:"dateFrom,omitempty"`
	DateTo    string   `json:"dateTo,omitempty"`
	Anonymize bool     `json:"anonymize,omitempty"`
}

// ExportRecord is one entry in the export history.
type ExportRecord struct {
	ID        string `json:"id"`
	Format    string `json:"format"`
	Sections  []string `json:"sections,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	Size      int64  `json:"size,omitempty"`
}
