package questionnaire

import (
	"database/sql"

	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/responses"
)

type QuestionnaireRow struct {
	ID        sql.NullString                      `db:"id"`
	UserID    sql.NullString                      `db:"user_id"`
	County    sql.NullString                      `db:"county"`
	Status    sql.NullString                      `db:"status"`
	Answers   database.JSONB[responses.Responses] `db:"answers"`
	CreatedTS sql.NullTime                        `db:"created_at"`
	UpdatedTS sql.NullTime                        `db:"updated_at"`
}

const questionnaireTable = "questionnaire_responses"

var questionnaireStruct = database.NewStruct(new(QuestionnaireRow))

func FromQuestionnaireResponse(response models.QuestionnaireResponse) *QuestionnaireRow {
	return &QuestionnaireRow{
		ID:        sql.NullString{String: response.ID, Valid: response.ID != ""},
		UserID:    sql.NullString{String: response.UserID, Valid: response.UserID != ""},
		County:    sql.NullString{String: response.County, Valid: response.County != ""},
		Status:    sql.NullString{String: string(response.Status), Valid: response.Status != ""},
		Answers:   database.JSONB[responses.Responses]{Data: response.Answers},
		CreatedTS: sql.NullTime{Time: response.CreatedTS, Valid: !response.CreatedTS.IsZero()},
		UpdatedTS: sql.NullTime{Time: response.UpdatedTS, Valid: !response.UpdatedTS.IsZero()},
	}
}

func ToQuestionnaireResponse(row *QuestionnaireRow) models.QuestionnaireResponse {
	return models.QuestionnaireResponse{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		County:    row.County.String,
		Status:    models.QuestionnaireStatus(row.Status.String),
		Answers:   row.Answers.GetValue(),
		CreatedTS: row.CreatedTS.Time,
		UpdatedTS: row.UpdatedTS.Time,
	}
}
