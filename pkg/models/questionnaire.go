package models

import (
	"time"

	"github.com/Ramsey-B/fern/pkg/responses"
)

type QuestionnaireStatus string

const (
	QuestionnaireStatusInProgress QuestionnaireStatus = "in_progress"
	QuestionnaireStatusCompleted  QuestionnaireStatus = "completed"
)

// QuestionnaireResponse is a persisted questionnaire answer set. Answers is
// the raw key/value map exactly as the questionnaire UI submitted it; key
// spellings are not canonicalized at rest.
type QuestionnaireResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	County    string              `json:"county"`
	Status    QuestionnaireStatus `json:"status"`
	Answers   responses.Responses `json:"answers"`
	CreatedTS time.Time           `json:"created_at"`
	UpdatedTS time.Time           `json:"updated_at"`
}
