package questionnaire

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/responses"
)

type fakeRepo struct {
	byID     map[string]models.QuestionnaireResponse
	upserted []models.QuestionnaireResponse
	getErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]models.QuestionnaireResponse{}}
}

func (r *fakeRepo) Upsert(ctx context.Context, response models.QuestionnaireResponse) error {
	r.upserted = append(r.upserted, response)
	r.byID[response.ID] = response
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, userID, id string) (models.QuestionnaireResponse, error) {
	if r.getErr != nil {
		return models.QuestionnaireResponse{}, r.getErr
	}
	response, ok := r.byID[id]
	if !ok || response.UserID != userID {
		return models.QuestionnaireResponse{}, httperror.NewHTTPError(http.StatusNotFound, "questionnaire response not found")
	}
	return response, nil
}

func testService(repo *fakeRepo) *Service {
	zapLogger, _ := zap.NewDevelopment()
	return NewService(zapadapter.NewZapEctoLogger(zapLogger, nil), repo)
}

func TestSave(t *testing.T) {
	t.Run("should save a new response with the caller's user id", func(t *testing.T) {
		repo := newFakeRepo()
		service := testService(repo)

		saved, err := service.Save(context.Background(), "user-1", models.QuestionnaireResponse{
			ID:     "q-1",
			UserID: "someone-else",
			County: "Cook",
			Answers: responses.Responses{
				"gross-monthly-salary": 5000.0,
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "user-1", saved.UserID)
		assert.Equal(t, models.QuestionnaireStatusInProgress, saved.Status)
		assert.False(t, saved.UpdatedTS.IsZero())
		require.Len(t, repo.upserted, 1)
	})

	t.Run("should preserve the created timestamp on update", func(t *testing.T) {
		created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		repo := newFakeRepo()
		repo.byID["q-1"] = models.QuestionnaireResponse{
			ID:        "q-1",
			UserID:    "user-1",
			Status:    models.QuestionnaireStatusInProgress,
			CreatedTS: created,
		}
		service := testService(repo)

		saved, err := service.Save(context.Background(), "user-1", models.QuestionnaireResponse{
			ID:     "q-1",
			Status: models.QuestionnaireStatusCompleted,
		})
		require.NoError(t, err)

		assert.Equal(t, created, saved.CreatedTS)
		assert.Equal(t, models.QuestionnaireStatusCompleted, saved.Status)
	})

	t.Run("should reject a missing id", func(t *testing.T) {
		service := testService(newFakeRepo())

		_, err := service.Save(context.Background(), "user-1", models.QuestionnaireResponse{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		service := testService(newFakeRepo())

		_, err := service.Save(context.Background(), "user-1", models.QuestionnaireResponse{
			ID:     "q-1",
			Status: "archived",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
	})

	t.Run("should propagate lookup errors that are not a missing row", func(t *testing.T) {
		repo := newFakeRepo()
		repo.getErr = httperror.NewHTTPError(http.StatusInternalServerError, "error getting questionnaire response")
		service := testService(repo)

		_, err := service.Save(context.Background(), "user-1", models.QuestionnaireResponse{ID: "q-1"})
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, httperror.GetStatusCode(err))
		assert.Empty(t, repo.upserted)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("should return the owned response", func(t *testing.T) {
		repo := newFakeRepo()
		repo.byID["q-1"] = models.QuestionnaireResponse{ID: "q-1", UserID: "user-1", County: "Cook"}
		service := testService(repo)

		response, err := service.GetByID(context.Background(), "user-1", "q-1")
		require.NoError(t, err)
		assert.Equal(t, "Cook", response.County)
	})

	t.Run("should not return another user's response", func(t *testing.T) {
		repo := newFakeRepo()
		repo.byID["q-1"] = models.QuestionnaireResponse{ID: "q-1", UserID: "someone-else"}
		service := testService(repo)

		_, err := service.GetByID(context.Background(), "user-1", "q-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))
	})

	t.Run("should require an id", func(t *testing.T) {
		service := testService(newFakeRepo())

		_, err := service.GetByID(context.Background(), "user-1", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
	})
}
