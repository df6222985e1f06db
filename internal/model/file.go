package model

// FileType classifies an attached file.
type FileType string

const (
	FileImage   FileType = "image"
	FileInvoice FileType = "invoice"
)

// FileRef is an opaque handle to a provisioned sample file. Path points at a
// copy in temporary storage; consumers treat it as read-only.
type FileRef struct {
	Type  FileType `json:"type"`
	Label string   `json:"label"`
	MIME  string   `json:"mime"`
	Path  string   `json:"path"`
}
