package model

// Report groups the files uploaded for one medical report.
type Report struct {
	ID         string       `json:"id"`
	Title      string       `json:"title,omitempty"`
	Category   string       `json:"category,omitempty"`
	Files      []ReportFile `json:"files,omitempty"`
	UploadedAt string       `json:"uploadedAt,omitempty"`
}

type ReportFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}
