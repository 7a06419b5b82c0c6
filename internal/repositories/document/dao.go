package document

import (
	"database/sql"

	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/models"
)

type DocumentRow struct {
	ID                      sql.NullString `db:"id"`
	UserID                  sql.NullString `db:"user_id"`
	Type                    sql.NullString `db:"type"`
	FileName                sql.NullString `db:"file_name"`
	Content                 sql.NullString `db:"content"`
	MimeType                sql.NullString `db:"mime_type"`
	Status                  sql.NullString `db:"status"`
	GeneratedAt             sql.NullTime   `db:"generated_at"`
	QuestionnaireResponseID sql.NullString `db:"questionnaire_response_id"`
}

const documentTable = "documents"

var documentStruct = database.NewStruct(new(DocumentRow))

func FromDocument(document models.GeneratedDocument) *DocumentRow {
	return &DocumentRow{
		ID:                      sql.NullString{String: document.ID, Valid: document.ID != ""},
		UserID:                  sql.NullString{String: document.UserID, Valid: document.UserID != ""},
		Type:                    sql.NullString{String: document.Type, Valid: document.Type != ""},
		FileName:                sql.NullString{String: document.FileName, Valid: document.FileName != ""},
		Content:                 sql.NullString{String: document.Content, Valid: document.Content != ""},
		MimeType:                sql.NullString{String: document.MimeType, Valid: document.MimeType != ""},
		Status:                  sql.NullString{String: string(document.Status), Valid: document.Status != ""},
		GeneratedAt:             sql.NullTime{Time: document.GeneratedAt, Valid: !document.GeneratedAt.IsZero()},
		QuestionnaireResponseID: sql.NullString{String: document.QuestionnaireResponseID, Valid: document.QuestionnaireResponseID != ""},
	}
}

func ToDocument(row *DocumentRow) models.GeneratedDocument {
	return models.GeneratedDocument{
		ID:                      row.ID.String,
		UserID:                  row.UserID.String,
		Type:                    row.Type.String,
		FileName:                row.FileName.String,
		Content:                 row.Content.String,
		MimeType:                row.MimeType.String,
		Status:                  models.DocumentStatus(row.Status.String),
		GeneratedAt:             row.GeneratedAt.Time,
		QuestionnaireResponseID: row.QuestionnaireResponseID.String,
	}
}
