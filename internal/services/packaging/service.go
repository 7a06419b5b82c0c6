package packaging

import (
	"context"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectolinq"

	"github.com/Ramsey-B/fern/pkg/events"
	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/packaging"
	"github.com/Ramsey-B/fern/pkg/render"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

type DocumentRepository interface {
	ListReady(ctx context.Context, userID string, ids []string) ([]models.GeneratedDocument, error)
}

type QuestionnaireRepository interface {
	GetByID(ctx context.Context, userID, id string) (models.QuestionnaireResponse, error)
}

// Package is the assembled filing archive.
type Package struct {
	FileName string
	Content  []byte
}

type Service struct {
	logger         ectologger.Logger
	documents      DocumentRepository
	questionnaires QuestionnaireRepository
	publisher      events.Publisher
	now            func() time.Time
}

func NewService(logger ectologger.Logger, documents DocumentRepository, questionnaires QuestionnaireRepository, publisher events.Publisher) *Service {
	return &Service{
		logger:         logger,
		documents:      documents,
		questionnaires: questionnaires,
		publisher:      publisher,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// PackageAll bundles every ready document the user owns into a zip with the
// cover sheet, filing instructions, and checklist artifacts.
func (s *Service) PackageAll(ctx context.Context, userID string) (Package, error) {
	return s.buildPackage(ctx, userID, nil)
}

// PackageDocuments bundles only the named ready documents.
func (s *Service) PackageDocuments(ctx context.Context, userID string, documentIDs []string) (Package, error) {
	return s.buildPackage(ctx, userID, documentIDs)
}

func (s *Service) buildPackage(ctx context.Context, userID string, documentIDs []string) (Package, error) {
	ctx, span := tracing.StartSpan(ctx, "packaging.buildPackage")
	defer span.End()

	if userID == "" {
		return Package{}, httperror.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	records, err := s.documents.ListReady(ctx, userID, documentIDs)
	if err != nil {
		return Package{}, err
	}
	if len(records) == 0 {
		s.logger.WithContext(ctx).WithField("user_id", userID).Warn("no ready documents to package")
		metrics.PackagesTotal.WithLabelValues("empty").Inc()
		return Package{}, httperror.NewHTTPError(http.StatusNotFound, "no documents found")
	}

	county := s.resolveCounty(ctx, userID, records)

	documents := ectolinq.Map(records, func(record models.GeneratedDocument) packaging.Document {
		return packaging.Document{
			FileName:    record.FileName,
			DisplayName: render.DocumentType(record.Type).DisplayName(),
			MimeType:    record.MimeType,
			Content:     record.Content,
			GeneratedAt: record.GeneratedAt,
		}
	})

	now := s.now()

	content, skipped, err := packaging.BuildArchive(s.logger, documents, county, now)
	if skipped > 0 {
		metrics.PackageDocumentsSkipped.Add(float64(skipped))
	}
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithField("user_id", userID).Error("error building filing package")
		metrics.PackagesTotal.WithLabelValues("failed").Inc()
		return Package{}, httperror.NewHTTPError(http.StatusInternalServerError, "error building filing package")
	}

	metrics.PackagesTotal.WithLabelValues("success").Inc()

	s.publisher.Publish(ctx, &events.DocumentEvent{
		Event:     events.EventPackageBuilt,
		UserID:    userID,
		Documents: len(records) - skipped,
		Timestamp: now,
	})

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"user_id":   userID,
		"documents": len(records),
		"skipped":   skipped,
	}).Info("built filing package")

	return Package{
		FileName: "freshstart-filing-package.zip",
		Content:  content,
	}, nil
}

// resolveCounty reads the filing county off the questionnaire behind the
// first bundled document. Missing county just renders as a placeholder on
// the artifacts.
func (s *Service) resolveCounty(ctx context.Context, userID string, records []models.GeneratedDocument) string {
	for _, record := range records {
		if record.QuestionnaireResponseID == "" {
			continue
		}
		response, err := s.questionnaires.GetByID(ctx, userID, record.QuestionnaireResponseID)
		if err != nil {
			s.logger.WithContext(ctx).WithError(err).WithField("questionnaire_response_id", record.QuestionnaireResponseID).Warn("could not resolve county for package artifacts")
			continue
		}
		if response.County != "" {
			return response.County
		}
	}

	return ""
}
