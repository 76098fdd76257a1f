package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielokoye/invoicescan/constants"
)

// Job represents one document's processing record for data transfer
// between layers.
type Job struct {
	ID           uuid.UUID           `json:"id"`
	Status       constants.JobStatus `json:"status"`
	FileName     string              `json:"file_name"`
	SourceKey    string              `json:"source_key"`
	OCRProvider  string              `json:"ocr_provider"`
	LLMProvider  string              `json:"llm_provider"`
	Progress     int                 `json:"progress"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
