package questionnaire

import (
	"context"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

type QuestionnaireRepository interface {
	Upsert(ctx context.Context, response models.QuestionnaireResponse) error
	GetByID(ctx context.Context, userID, id string) (models.QuestionnaireResponse, error)
}

type Service struct {
	logger ectologger.Logger
	repo   QuestionnaireRepository
}

func NewService(logger ectologger.Logger, repo QuestionnaireRepository) *Service {
	return &Service{
		logger: logger,
		repo:   repo,
	}
}

// Save upserts a questionnaire response for the user. Callers cannot write
// another user's response: the user id is always taken from the request
// context, never from the payload.
func (s *Service) Save(ctx context.Context, userID string, response models.QuestionnaireResponse) (models.QuestionnaireResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "questionnaire.Save")
	defer span.End()

	if userID == "" {
		return models.QuestionnaireResponse{}, httperror.NewHTTPError(http.StatusBadRequest, "user id is required")
	}
	if response.ID == "" {
		return models.QuestionnaireResponse{}, httperror.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	response.UserID = userID
	if response.Status == "" {
		response.Status = models.QuestionnaireStatusInProgress
	}
	if response.Status != models.QuestionnaireStatusInProgress && response.Status != models.QuestionnaireStatusCompleted {
		return models.QuestionnaireResponse{}, httperror.NewHTTPError(http.StatusBadRequest, "invalid questionnaire status")
	}

	// Upsert must not hand the row to a different user.
	existing, err := s.repo.GetByID(ctx, userID, response.ID)
	if err == nil {
		response.CreatedTS = existing.CreatedTS
	} else if !httperror.IsHTTPError(err) || httperror.GetStatusCode(err) != http.StatusNotFound {
		return models.QuestionnaireResponse{}, err
	}

	response.UpdatedTS = time.Now().UTC()

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"id":      response.ID,
		"user_id": userID,
		"status":  response.Status,
	}).Info("saving questionnaire response")

	if err := s.repo.Upsert(ctx, response); err != nil {
		return models.QuestionnaireResponse{}, err
	}

	return response, nil
}

func (s *Service) GetByID(ctx context.Context, userID, id string) (models.QuestionnaireResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "questionnaire.GetByID")
	defer span.End()

	if id == "" {
		return models.QuestionnaireResponse{}, httperror.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	return s.repo.GetByID(ctx, userID, id)
}
