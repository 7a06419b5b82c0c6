package document

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

type DocumentRepository interface {
	Create(ctx context.Context, document models.GeneratedDocument) error
	Update(ctx context.Context, document models.GeneratedDocument) error
	GetByID(ctx context.Context, userID, id string) (models.GeneratedDocument, error)
	List(ctx context.Context, userID string) ([]models.GeneratedDocument, error)
	ListReady(ctx context.Context, userID string, ids []string) ([]models.GeneratedDocument, error)
}

type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new generated document repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Create(ctx context.Context, document models.GeneratedDocument) error {
	ctx, span := tracing.StartSpan(ctx, "DocumentRepository.Create")
	defer span.End()

	row := FromDocument(document)
	ib := documentStruct.InsertInto(documentTable, row)

	sql, args := ib.Build()

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":      document.ID,
		"user_id": document.UserID,
		"type":    document.Type,
		"status":  document.Status,
	}).Info("Creating generated document")
	_, err = tx.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"id":      document.ID,
			"user_id": document.UserID,
			"type":    document.Type,
		}).Error("error creating generated document")
		return httperror.NewHTTPError(http.StatusInternalServerError, "error creating generated document")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, document models.GeneratedDocument) error {
	ctx, span := tracing.StartSpan(ctx, "DocumentRepository.Update")
	defer span.End()

	ub := database.NewUpdateBuilder()
	ub.Update(documentTable)
	ub.Set(
		ub.Assign("type", document.Type),
		ub.Assign("file_name", document.FileName),
		ub.Assign("content", document.Content),
		ub.Assign("mime_type", document.MimeType),
		ub.Assign("status", string(document.Status)),
		ub.Assign("generated_at", document.GeneratedAt),
		ub.Assign("questionnaire_response_id", document.QuestionnaireResponseID),
		ub.Assign("updated_at", time.Now().UTC()),
	)
	ub.Where(
		ub.Equal("id", document.ID),
		ub.Equal("user_id", document.UserID),
	)

	sql, args := ub.Build()

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":      document.ID,
		"user_id": document.UserID,
		"type":    document.Type,
		"status":  document.Status,
	}).Info("Updating generated document")
	result, err := tx.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"id":      document.ID,
			"user_id": document.UserID,
		}).Error("error updating generated document")
		return httperror.NewHTTPError(http.StatusInternalServerError, "error updating generated document")
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		r.logger.WithContext(ctx).WithFields(map[string]any{
			"id":      document.ID,
			"user_id": document.UserID,
		}).Warn("Generated document not found for update")
		return httperror.NewHTTPError(http.StatusNotFound, "document not found")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, userID, id string) (models.GeneratedDocument, error) {
	ctx, span := tracing.StartSpan(ctx, "DocumentRepository.GetByID")
	defer span.End()

	sb := documentStruct.SelectFrom(documentTable)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
	)
	sb.Limit(1)

	sql, args := sb.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":      id,
		"user_id": userID,
	}).Info("Getting generated document")

	var row DocumentRow
	err := r.db.GetContext(ctx, &row, sql, args...)
	if err != nil {
		if err.Error() == "sql: no rows in result set" {
			r.logger.WithContext(ctx).WithFields(map[string]any{
				"id":      id,
				"user_id": userID,
			}).Warn("Generated document not found")
			return models.GeneratedDocument{}, httperror.NewHTTPError(http.StatusNotFound, "document not found")
		}

		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"id":      id,
			"user_id": userID,
		}).Error("error getting generated document")
		return models.GeneratedDocument{}, httperror.NewHTTPError(http.StatusInternalServerError, "error getting generated document")
	}

	return ToDocument(&row), nil
}

func (r *Repository) List(ctx context.Context, userID string) ([]models.GeneratedDocument, error) {
	ctx, span := tracing.StartSpan(ctx, "DocumentRepository.List")
	defer span.End()

	sb := documentStruct.SelectFrom(documentTable)
	sb.Where(
		sb.Equal("user_id", userID),
	)
	sb.OrderBy("type", "file_name").Asc()

	sql, args := sb.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"user_id": userID,
	}).Info("Listing documents")

	var rows []DocumentRow
	err := r.db.SelectContext(ctx, &rows, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"user_id": userID,
		}).Error("error listing documents")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "error listing documents")
	}

	documents := make([]models.GeneratedDocument, 0, len(rows))
	for i := range rows {
		documents = append(documents, ToDocument(&rows[i]))
	}

	return documents, nil
}

func (r *Repository) ListReady(ctx context.Context, userID string, ids []string) ([]models.GeneratedDocument, error) {
	ctx, span := tracing.StartSpan(ctx, "DocumentRepository.ListReady")
	defer span.End()

	sb := documentStruct.SelectFrom(documentTable)
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("status", string(models.DocumentStatusReady)),
	)
	if len(ids) > 0 {
		args := make([]any, 0, len(ids))
		for _, id := range ids {
			args = append(args, id)
		}
		sb.Where(sb.In("id", args...))
	}
	sb.OrderBy("type", "file_name").Asc()

	sql, args := sb.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"user_id": userID,
		"ids":     ids,
	}).Info("Listing ready documents")

	var rows []DocumentRow
	err := r.db.SelectContext(ctx, &rows, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"user_id": userID,
		}).Error("error listing ready documents")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "error listing ready documents")
	}

	documents := make([]models.GeneratedDocument, 0, len(rows))
	for i := range rows {
		documents = append(documents, ToDocument(&rows[i]))
	}

	return documents, nil
}
