package entity

import "github.com/google/uuid"

// OCRBox is one recognized text fragment: its 1-based page, pixel-space
// rectangle, text and backend confidence (0-100). Boxes are created in
// bulk during one pipeline run and never updated afterwards.
type OCRBox struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	PageNumber int       `json:"page_number"`
	Left       int       `json:"left"`
	Top        int       `json:"top"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Text       string    `json:"text"`
	Confidence float32   `json:"confidence"`
	FieldName  *string   `json:"field_name,omitempty"` // set by the (downstream) extraction stage
}
