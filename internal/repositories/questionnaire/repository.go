package questionnaire

import (
	"context"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

type QuestionnaireRepository interface {
	Upsert(ctx context.Context, response models.QuestionnaireResponse) error
	GetByID(ctx context.Context, userID, id string) (models.QuestionnaireResponse, error)
}

type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new questionnaire response repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Upsert(ctx context.Context, response models.QuestionnaireResponse) error {
	ctx, span := tracing.StartSpan(ctx, "QuestionnaireRepository.Upsert")
	defer span.End()

	if response.CreatedTS.IsZero() {
		response.CreatedTS = time.Now().UTC()
	}
	response.UpdatedTS = time.Now().UTC()

	row := FromQuestionnaireResponse(response)
	ib := questionnaireStruct.InsertInto(questionnaireTable, row)
	ub := ib.OnConflict("id")
	ub.Set(
		ub.Assign("county", database.Excluded("county")),
		ub.Assign("status", database.Excluded("status")),
		ub.Assign("answers", database.Excluded("answers")),
		ub.Assign("updated_at", time.Now().UTC()),
	)
	// An existing row under another user must not be overwritten.
	ub.Where(
		ub.Equal(questionnaireTable+".user_id", response.UserID),
	)

	sql, args := ib.Build()

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":      response.ID,
		"user_id": response.UserID,
		"status":  response.Status,
	}).Info("Upserting questionnaire response")
	result, err := tx.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"id":      response.ID,
			"user_id": response.UserID,
		}).Error("error upserting questionnaire response")
		return httperror.NewHTTPError(http.StatusInternalServerError, "error upserting questionnaire response")
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		r.logger.WithContext(ctx).WithFields(map[string]any{
			"id":      response.ID,
			"user_id": response.UserID,
		}).Warn("Questionnaire response id belongs to another user")
		return httperror.NewHTTPError(http.StatusConflict, "questionnaire response id is already in use")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, userID, id string) (models.QuestionnaireResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "QuestionnaireRepository.GetByID")
	defer span.End()

	sb := questionnaireStruct.SelectFrom(questionnaireTable)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
	)
	sb.Limit(1)

	sql, args := sb.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":      id,
		"user_id": userID,
	}).Info("Getting questionnaire response")

	var row QuestionnaireRow
	err := r.db.GetContext(ctx, &row, sql, args...)
	if err != nil {
		if err.Error() == "sql: no rows in result set" {
			r.logger.WithContext(ctx).WithFields(map[string]any{
				"id":      id,
				"user_id": userID,
			}).Warn("Questionnaire response not found")
			return models.QuestionnaireResponse{}, httperror.NewHTTPError(http.StatusNotFound, "questionnaire response not found")
		}

		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"id":      id,
			"user_id": userID,
		}).Error("error getting questionnaire response")
		return models.QuestionnaireResponse{}, httperror.NewHTTPError(http.StatusInternalServerError, "error getting questionnaire response")
	}

	return ToQuestionnaireResponse(&row), nil
}
