package entities

import "time"

type ImportStatus string

const (
	ImportStatusImported  ImportStatus = "Imported"
	ImportStatusValidated ImportStatus = "Validated"
	ImportStatusError     ImportStatus = "Error"
	ImportStatusArchived  ImportStatus = "Archived"
)

// ImportRecord is one row brought in by the file import screen.
type ImportRecord struct {
	ID         int64        `json:"id"`
	FileName   string       `json:"file_name"`
	Status     ImportStatus `json:"status"`
	ImportedAt time.Time    `json:"imported_at"`
}
