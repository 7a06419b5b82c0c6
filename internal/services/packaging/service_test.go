package packaging

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"io"
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
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type fakeDocumentRepo struct {
	ready   []models.GeneratedDocument
	lastIDs []string
}

func (r *fakeDocumentRepo) ListReady(ctx context.Context, userID string, ids []string) ([]models.GeneratedDocument, error) {
	r.lastIDs = ids
	if ids == nil {
		return r.ready, nil
	}
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	matched := []models.GeneratedDocument{}
	for _, document := range r.ready {
		if wanted[document.ID] {
			matched = append(matched, document)
		}
	}
	return matched, nil
}

type fakeQuestionnaireRepo struct {
	byID map[string]models.QuestionnaireResponse
}

func (r *fakeQuestionnaireRepo) GetByID(ctx context.Context, userID, id string) (models.QuestionnaireResponse, error) {
	response, ok := r.byID[id]
	if !ok {
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

func readyDocument(id, fileName string) models.GeneratedDocument {
	return models.GeneratedDocument{
		ID:                      id,
		UserID:                  "user-1",
		Type:                    "petition",
		FileName:                fileName,
		Content:                 base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 test")),
		MimeType:                models.MimeTypePDF,
		Status:                  models.DocumentStatusReady,
		GeneratedAt:             testNow,
		QuestionnaireResponseID: "q-1",
	}
}

func archiveNames(t *testing.T, content []byte) map[string][]byte {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)
	entries := map[string][]byte{}
	for _, file := range reader.File {
		rc, err := file.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[file.Name] = data
	}
	return entries
}

func TestPackageAll(t *testing.T) {
	t.Run("should bundle every ready document with the artifacts", func(t *testing.T) {
		documents := &fakeDocumentRepo{ready: []models.GeneratedDocument{
			readyDocument("d-1", "petition.pdf"),
		}}
		questionnaires := &fakeQuestionnaireRepo{byID: map[string]models.QuestionnaireResponse{
			"q-1": {ID: "q-1", UserID: "user-1", County: "Cook"},
		}}
		publisher := &fakePublisher{}
		service := testService(documents, questionnaires, publisher)

		pkg, err := service.PackageAll(context.Background(), "user-1")
		require.NoError(t, err)

		assert.Equal(t, "freshstart-filing-package.zip", pkg.FileName)
		assert.Nil(t, documents.lastIDs)

		entries := archiveNames(t, pkg.Content)
		assert.Contains(t, entries, "00_COVER_SHEET.txt")
		assert.Contains(t, entries, "01_FILING_INSTRUCTIONS.txt")
		assert.Contains(t, entries, "02_FILING_CHECKLIST.txt")
		assert.Contains(t, entries, "documents/petition.pdf")
		assert.Equal(t, "%PDF-1.4 test", string(entries["documents/petition.pdf"]))
		assert.Contains(t, string(entries["00_COVER_SHEET.txt"]), "Cook County, Illinois")

		require.Len(t, publisher.events, 1)
		assert.Equal(t, events.EventPackageBuilt, publisher.events[0].Event)
		assert.Equal(t, 1, publisher.events[0].Documents)
	})

	t.Run("should return not found when no documents are ready", func(t *testing.T) {
		service := testService(&fakeDocumentRepo{}, &fakeQuestionnaireRepo{}, &fakePublisher{})

		_, err := service.PackageAll(context.Background(), "user-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))
	})

	t.Run("should render a placeholder when the county cannot be resolved", func(t *testing.T) {
		documents := &fakeDocumentRepo{ready: []models.GeneratedDocument{
			readyDocument("d-1", "petition.pdf"),
		}}
		service := testService(documents, &fakeQuestionnaireRepo{byID: map[string]models.QuestionnaireResponse{}}, &fakePublisher{})

		pkg, err := service.PackageAll(context.Background(), "user-1")
		require.NoError(t, err)

		entries := archiveNames(t, pkg.Content)
		assert.Contains(t, string(entries["00_COVER_SHEET.txt"]), "(not yet selected)")
	})

	t.Run("should require a user id", func(t *testing.T) {
		service := testService(&fakeDocumentRepo{}, &fakeQuestionnaireRepo{}, &fakePublisher{})

		_, err := service.PackageAll(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
	})
}

func TestPackageDocuments(t *testing.T) {
	t.Run("should bundle only the named documents", func(t *testing.T) {
		documents := &fakeDocumentRepo{ready: []models.GeneratedDocument{
			readyDocument("d-1", "petition.pdf"),
			readyDocument("d-2", "financial-affidavit.pdf"),
		}}
		questionnaires := &fakeQuestionnaireRepo{byID: map[string]models.QuestionnaireResponse{
			"q-1": {ID: "q-1", UserID: "user-1", County: "Cook"},
		}}
		service := testService(documents, questionnaires, &fakePublisher{})

		pkg, err := service.PackageDocuments(context.Background(), "user-1", []string{"d-2"})
		require.NoError(t, err)

		assert.Equal(t, []string{"d-2"}, documents.lastIDs)
		entries := archiveNames(t, pkg.Content)
		assert.Contains(t, entries, "documents/financial-affidavit.pdf")
		assert.NotContains(t, entries, "documents/petition.pdf")
	})

	t.Run("should skip documents with corrupt content and report the rest", func(t *testing.T) {
		corrupt := readyDocument("d-2", "affidavit.pdf")
		corrupt.Content = "not valid base64!!!"
		documents := &fakeDocumentRepo{ready: []models.GeneratedDocument{
			readyDocument("d-1", "petition.pdf"),
			corrupt,
		}}
		questionnaires := &fakeQuestionnaireRepo{byID: map[string]models.QuestionnaireResponse{
			"q-1": {ID: "q-1", UserID: "user-1", County: "Cook"},
		}}
		publisher := &fakePublisher{}
		service := testService(documents, questionnaires, publisher)

		pkg, err := service.PackageDocuments(context.Background(), "user-1", []string{"d-1", "d-2"})
		require.NoError(t, err)

		entries := archiveNames(t, pkg.Content)
		assert.Contains(t, entries, "documents/petition.pdf")
		assert.NotContains(t, entries, "documents/affidavit.pdf")

		require.Len(t, publisher.events, 1)
		assert.Equal(t, 1, publisher.events[0].Documents)
	})
}
