package models

import (
	"time"
)

type DocumentStatus string

const (
	DocumentStatusReady  DocumentStatus = "ready"
	DocumentStatusFailed DocumentStatus = "failed"
)

// GeneratedDocument is a persisted generated document. Content holds base64
// PDF bytes or raw text depending on MimeType. Rows are created on first
// generation, updated in place on regeneration, and never deleted
// automatically.
type GeneratedDocument struct {
	ID                      string         `json:"id"`
	UserID                  string         `json:"user_id"`
	Type                    string         `json:"type"`
	FileName                string         `json:"file_name"`
	Content                 string         `json:"content"`
	MimeType                string         `json:"mime_type"`
	Status                  DocumentStatus `json:"status"`
	GeneratedAt             time.Time      `json:"generated_at"`
	QuestionnaireResponseID string         `json:"questionnaire_response_id"`
}

const (
	MimeTypePDF  = "application/pdf"
	MimeTypeText = "text/plain"
)
