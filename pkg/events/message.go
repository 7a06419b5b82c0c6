// Package events publishes document lifecycle events to Kafka. Downstream
// consumers (email, analytics) react to generation and packaging; fern never
// blocks a request on a publish failure.
package events

import (
	"encoding/json"
	"time"
)

const (
	// EventDocumentGenerated is emitted after a document persists as ready.
	EventDocumentGenerated = "document.generated"
	// EventPackageBuilt is emitted after a filing package is assembled.
	EventPackageBuilt = "document.packaged"
)

// DocumentEvent is the message fern produces to the events topic.
type DocumentEvent struct {
	Event        string    `json:"event"`
	UserID       string    `json:"user_id"`
	DocumentID   string    `json:"document_id,omitempty"`
	DocumentType string    `json:"document_type,omitempty"`
	MimeType     string    `json:"mime_type,omitempty"`
	Strategy     string    `json:"strategy,omitempty"`
	Documents    int       `json:"documents,omitempty"`
	Timestamp    time.Time `json:"timestamp"`

	// Tracing
	TraceID string `json:"trace_id,omitempty"`
	SpanID  string `json:"span_id,omitempty"`
}

func (e *DocumentEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
