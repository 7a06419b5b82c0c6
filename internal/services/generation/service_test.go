package generation

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ramsey-B/fern/pkg/events"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/render"
	"github.com/Ramsey-B/fern/pkg/responses"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type fakeDocumentRepo struct {
	created []models.GeneratedDocument
	updated []models.GeneratedDocument
	byID    map[string]models.GeneratedDocument
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{byID: map[string]models.GeneratedDocument{}}
}

func (r *fakeDocumentRepo) Create(ctx context.Context, document models.GeneratedDocument) error {
	r.created = append(r.created, document)
	r.byID[document.ID] = document
	return nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, document models.GeneratedDocument) error {
	r.updated = append(r.updated, document)
	r.byID[document.ID] = document
	return nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, userID, id string) (models.GeneratedDocument, error) {
	document, ok := r.byID[id]
	if !ok || document.UserID != userID {
		return models.GeneratedDocument{}, httperror.NewHTTPError(http.StatusNotFound, "document not found")
	}
	return document, nil
}

func (r *fakeDocumentRepo) List(ctx context.Context, userID string) ([]models.GeneratedDocument, error) {
	documents := []models.GeneratedDocument{}
	for _, document := range r.byID {
		if document.UserID == userID {
			documents = append(documents, document)
		}
	}
	return documents, nil
}

type fakeQuestionnaireRepo struct {
	byID map[string]models.QuestionnaireResponse
}

func newFakeQuestionnaireRepo() *fakeQuestionnaireRepo {
	return &fakeQuestionnaireRepo{byID: map[string]models.QuestionnaireResponse{}}
}

func (r *fakeQuestionnaireRepo) GetByID(ctx context.Context, userID, id string) (models.QuestionnaireResponse, error) {
	response, ok := r.byID[id]
	if !ok || response.UserID != userID {
		return models.QuestionnaireResponse{}, httperror.NewHTTPError(http.StatusNotFound, "questionnaire response not found")
	}
	return response, nil
}

type fakePublisher struct {
	events []*events.DocumentEvent
}

func (p *fakePublisher) Publish(ctx context.Context, event *events.DocumentEvent) {
	p.events = append(p.events, event)
}

func (p *fakePublisher) Close() error {
	return nil
}

func testService(documents *fakeDocumentRepo, questionnaires *fakeQuestionnaireRepo, publisher *fakePublisher) *Service {
	zapLogger, _ := zap.NewDevelopment()
	logger := zapadapter.NewZapEctoLogger(zapLogger, nil)
	service := NewService(logger, documents, questionnaires, publisher)
	service.now = func() time.Time { return testNow }
	return service
}

func completedResponse(id, userID string) models.QuestionnaireResponse {
	return models.QuestionnaireResponse{
		ID:     id,
		UserID: userID,
		County: "Cook",
		Status: models.QuestionnaireStatusCompleted,
		Answers: responses.Responses{
			"gross-monthly-salary": 5000.0,
			"employer-name":        "Acme Corp",
		},
	}
}

func TestGenerate(t *testing.T) {
	t.Run("should generate and persist a summary document", func(t *testing.T) {
		documents := newFakeDocumentRepo()
		questionnaires := newFakeQuestionnaireRepo()
		questionnaires.byID["q-1"] = completedResponse("q-1", "user-1")
		publisher := &fakePublisher{}
		service := testService(documents, questionnaires, publisher)

		result, err := service.Generate(context.Background(), "user-1", GenerateRequest{
			QuestionnaireResponseID: "q-1",
			DocumentType:            "financial_affidavit",
		})
		require.NoError(t, err)

		assert.Equal(t, StrategySummary, result.Strategy)
		assert.Equal(t, "summary document generated", result.Message)
		assert.Equal(t, models.DocumentStatusReady, result.Document.Status)
		assert.Equal(t, models.MimeTypePDF, result.Document.MimeType)
		assert.Equal(t, "financial-affidavit.pdf", result.Document.FileName)
		assert.Equal(t, testNow, result.Document.GeneratedAt)
		assert.Equal(t, "q-1", result.Document.QuestionnaireResponseID)
		assert.NotEmpty(t, result.Document.ID)

		require.Len(t, documents.created, 1)
		assert.Empty(t, documents.updated)

		// content is base64 PDF bytes
		decoded, err := base64.StdEncoding.DecodeString(result.Document.Content)
		require.NoError(t, err)
		assert.Contains(t, string(decoded), "FINANCIAL AFFIDAVIT")

		require.Len(t, publisher.events, 1)
		assert.Equal(t, events.EventDocumentGenerated, publisher.events[0].Event)
		assert.Equal(t, StrategySummary, publisher.events[0].Strategy)
	})

	t.Run("should produce the official form in official mode", func(t *testing.T) {
		documents := newFakeDocumentRepo()
		questionnaires := newFakeQuestionnaireRepo()
		questionnaires.byID["q-1"] = completedResponse("q-1", "user-1")
		service := testService(documents, questionnaires, &fakePublisher{})

		result, err := service.Generate(context.Background(), "user-1", GenerateRequest{
			QuestionnaireResponseID: "q-1",
			DocumentType:            "petition",
			Mode:                    ModeOfficial,
		})
		require.NoError(t, err)

		assert.Equal(t, StrategyOfficial, result.Strategy)
		assert.Equal(t, "official court form generated", result.Message)
		assert.Equal(t, models.MimeTypePDF, result.Document.MimeType)
	})

	t.Run("should fall back to summary in official mode for types without an official form", func(t *testing.T) {
		documents := newFakeDocumentRepo()
		questionnaires := newFakeQuestionnaireRepo()
		questionnaires.byID["q-1"] = completedResponse("q-1", "user-1")
		service := testService(documents, questionnaires, &fakePublisher{})

		result, err := service.Generate(context.Background(), "user-1", GenerateRequest{
			QuestionnaireResponseID: "q-1",
			DocumentType:            "parenting_plan",
			Mode:                    ModeOfficial,
		})
		require.NoError(t, err)

		assert.Equal(t, StrategySummary, result.Strategy)
		assert.Equal(t, "summary document generated", result.Message)
	})

	t.Run("should update in place when a document id is given", func(t *testing.T) {
		documents := newFakeDocumentRepo()
		documents.byID["d-1"] = models.GeneratedDocument{ID: "d-1", UserID: "user-1"}
		questionnaires := newFakeQuestionnaireRepo()
		questionnaires.byID["q-1"] = completedResponse("q-1", "user-1")
		service := testService(documents, questionnaires, &fakePublisher{})

		result, err := service.Generate(context.Background(), "user-1", GenerateRequest{
			QuestionnaireResponseID: "q-1",
			DocumentType:            "petition",
			DocumentID:              "d-1",
		})
		require.NoError(t, err)

		assert.Equal(t, "d-1", result.Document.ID)
		assert.Empty(t, documents.created)
		require.Len(t, documents.updated, 1)
	})

	t.Run("should reject a document id owned by another user", func(t *testing.T) {
		documents := newFakeDocumentRepo()
		documents.byID["d-1"] = models.GeneratedDocument{ID: "d-1", UserID: "someone-else"}
		questionnaires := newFakeQuestionnaireRepo()
		questionnaires.byID["q-1"] = completedResponse("q-1", "user-1")
		service := testService(documents, questionnaires, &fakePublisher{})

		_, err := service.Generate(context.Background(), "user-1", GenerateRequest{
			QuestionnaireResponseID: "q-1",
			DocumentType:            "petition",
			DocumentID:              "d-1",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))
		assert.Empty(t, documents.created)
		assert.Empty(t, documents.updated)
	})

	t.Run("should reject an unknown document type", func(t *testing.T) {
		service := testService(newFakeDocumentRepo(), newFakeQuestionnaireRepo(), &fakePublisher{})

		_, err := service.Generate(context.Background(), "user-1", GenerateRequest{
			QuestionnaireResponseID: "q-1",
			DocumentType:            "deed_of_trust",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
	})

	t.Run("should reject a missing questionnaire response", func(t *testing.T) {
		service := testService(newFakeDocumentRepo(), newFakeQuestionnaireRepo(), &fakePublisher{})

		_, err := service.Generate(context.Background(), "user-1", GenerateRequest{
			QuestionnaireResponseID: "q-missing",
			DocumentType:            "petition",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))
	})

	t.Run("should reject an incomplete questionnaire response", func(t *testing.T) {
		questionnaires := newFakeQuestionnaireRepo()
		response := completedResponse("q-1", "user-1")
		response.Status = models.QuestionnaireStatusInProgress
		questionnaires.byID["q-1"] = response
		service := testService(newFakeDocumentRepo(), questionnaires, &fakePublisher{})

		_, err := service.Generate(context.Background(), "user-1", GenerateRequest{
			QuestionnaireResponseID: "q-1",
			DocumentType:            "petition",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
	})

	t.Run("should generate identical content for identical input", func(t *testing.T) {
		questionnaires := newFakeQuestionnaireRepo()
		questionnaires.byID["q-1"] = completedResponse("q-1", "user-1")
		service := testService(newFakeDocumentRepo(), questionnaires, &fakePublisher{})

		first, err := service.Generate(context.Background(), "user-1", GenerateRequest{
			QuestionnaireResponseID: "q-1",
			DocumentType:            "financial_affidavit",
		})
		require.NoError(t, err)

		second, err := service.Generate(context.Background(), "user-1", GenerateRequest{
			QuestionnaireResponseID: "q-1",
			DocumentType:            "financial_affidavit",
		})
		require.NoError(t, err)

		assert.Equal(t, first.Document.Content, second.Document.Content)
	})
}

func TestRunChain(t *testing.T) {
	data := render.CaseData{Raw: responses.Responses{"employer-name": "Acme Corp"}}
	meta := render.Metadata{UserID: "user-1", GeneratedAt: testNow}

	succeeding := strategy{
		name:     StrategyOfficial,
		mimeType: models.MimeTypePDF,
		render: func(render.CaseData, render.Metadata) ([]byte, error) {
			return []byte("pdf bytes"), nil
		},
	}
	failing := strategy{
		name:     StrategyOfficial,
		mimeType: models.MimeTypePDF,
		render: func(render.CaseData, render.Metadata) ([]byte, error) {
			return nil, assert.AnError
		},
	}
	summary := strategy{
		name:     StrategySummary,
		mimeType: models.MimeTypePDF,
		render: func(render.CaseData, render.Metadata) ([]byte, error) {
			return []byte("summary pdf"), nil
		},
	}
	failingSummary := strategy{
		name:     StrategySummary,
		mimeType: models.MimeTypePDF,
		render: func(render.CaseData, render.Metadata) ([]byte, error) {
			return nil, assert.AnError
		},
	}

	service := testService(newFakeDocumentRepo(), newFakeQuestionnaireRepo(), &fakePublisher{})

	t.Run("should use the first strategy when it succeeds", func(t *testing.T) {
		content, mimeType, producedBy, fellBack := service.runChain(context.Background(),
			[]strategy{succeeding, summary}, render.DocumentPetition, data, meta, data.Raw)

		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("pdf bytes")), content)
		assert.Equal(t, models.MimeTypePDF, mimeType)
		assert.Equal(t, StrategyOfficial, producedBy)
		assert.False(t, fellBack)
	})

	t.Run("should substitute the next strategy exactly once on failure", func(t *testing.T) {
		content, mimeType, producedBy, fellBack := service.runChain(context.Background(),
			[]strategy{failing, summary}, render.DocumentPetition, data, meta, data.Raw)

		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("summary pdf")), content)
		assert.Equal(t, models.MimeTypePDF, mimeType)
		assert.Equal(t, StrategySummary, producedBy)
		assert.True(t, fellBack)
	})

	t.Run("should fall back to plain text when every renderer fails", func(t *testing.T) {
		content, mimeType, producedBy, fellBack := service.runChain(context.Background(),
			[]strategy{failing, failingSummary}, render.DocumentPetition, data, meta, data.Raw)

		assert.Equal(t, models.MimeTypeText, mimeType)
		assert.Equal(t, StrategyText, producedBy)
		assert.True(t, fellBack)
		assert.Contains(t, content, "Employer Name:")
	})
}

func TestResultMessage(t *testing.T) {
	assert.Equal(t, "official court form generated", resultMessage(StrategyOfficial, false))
	assert.Equal(t, "summary document generated", resultMessage(StrategySummary, false))
	assert.Equal(t, "official form generation failed; summary document generated as fallback", resultMessage(StrategySummary, true))
	assert.Equal(t, "document rendering failed; plain-text fallback generated", resultMessage(StrategyText, true))
}
