package generation

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"

	"github.com/Ramsey-B/fern/pkg/events"
	"github.com/Ramsey-B/fern/pkg/finance"
	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/render"
	"github.com/Ramsey-B/fern/pkg/responses"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

const (
	ModeSummary  = "summary"
	ModeOfficial = "official"

	StrategyOfficial = "official"
	StrategySummary  = "summary"
	StrategyText     = "text"
)

type GenerateRequest struct {
	QuestionnaireResponseID string `json:"questionnaire_response_id" validate:"required"`
	DocumentType            string `json:"document_type" validate:"required"`
	DocumentID              string `json:"document_id"`
	Mode                    string `json:"mode" validate:"omitempty,oneof=summary official"`
	Flatten                 bool   `json:"flatten"`
}

// GenerateResult is what the route returns. Strategy names which renderer
// produced the output; Message differs per strategy so callers can tell a
// degraded result from a first-choice one.
type GenerateResult struct {
	Document models.GeneratedDocument `json:"document"`
	Strategy string                   `json:"strategy"`
	Message  string                   `json:"message"`
}

// strategy is one entry in the ordered fallback chain. The chain is data, not
// control flow: entries are tried in order and the first success wins.
type strategy struct {
	name     string
	mimeType string
	render   func(data render.CaseData, meta render.Metadata) ([]byte, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, document models.GeneratedDocument) error
	Update(ctx context.Context, document models.GeneratedDocument) error
	GetByID(ctx context.Context, userID, id string) (models.GeneratedDocument, error)
	List(ctx context.Context, userID string) ([]models.GeneratedDocument, error)
}

type QuestionnaireRepository interface {
	GetByID(ctx context.Context, userID, id string) (models.QuestionnaireResponse, error)
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

func (s *Service) Generate(ctx context.Context, userID string, req GenerateRequest) (GenerateResult, error) {
	ctx, span := tracing.StartSpan(ctx, "generation.Generate")
	defer span.End()

	start := time.Now()

	if userID == "" {
		return GenerateResult{}, httperror.NewHTTPError(http.StatusBadRequest, "user id is required")
	}
	if req.QuestionnaireResponseID == "" {
		return GenerateResult{}, httperror.NewHTTPError(http.StatusBadRequest, "questionnaire_response_id is required")
	}

	documentType := render.DocumentType(req.DocumentType)
	if !render.KnownDocumentType(documentType) {
		return GenerateResult{}, httperror.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown document type '%s'", req.DocumentType)).
			AddMetaValue("document_type", req.DocumentType)
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeSummary
	}

	response, err := s.questionnaires.GetByID(ctx, userID, req.QuestionnaireResponseID)
	if err != nil {
		return GenerateResult{}, err
	}
	if response.Status != models.QuestionnaireStatusCompleted {
		s.logger.WithContext(ctx).WithFields(map[string]any{
			"questionnaire_response_id": req.QuestionnaireResponseID,
			"status":                    response.Status,
		}).Warn("questionnaire response is not completed")
		return GenerateResult{}, httperror.NewHTTPError(http.StatusBadRequest, "questionnaire response is not completed")
	}

	// Regeneration targets must already belong to the caller.
	if req.DocumentID != "" {
		if _, err := s.documents.GetByID(ctx, userID, req.DocumentID); err != nil {
			return GenerateResult{}, err
		}
	}

	meta := render.Metadata{
		UserID:      userID,
		GeneratedAt: s.now(),
		County:      response.County,
	}
	data := render.CaseData{
		Financial: finance.Normalize(response.Answers, userID),
		Petition:  finance.PetitionFromResponses(response.Answers),
		Raw:       response.Answers,
	}

	content, mimeType, producedBy, fellBack := s.runChain(ctx, s.buildChain(mode, documentType), documentType, data, meta, response.Answers)

	result := models.GeneratedDocument{
		ID:                      req.DocumentID,
		UserID:                  userID,
		Type:                    string(documentType),
		FileName:                fileName(documentType, mimeType),
		Content:                 content,
		MimeType:                mimeType,
		Status:                  models.DocumentStatusReady,
		GeneratedAt:             meta.GeneratedAt,
		QuestionnaireResponseID: response.ID,
	}

	if result.ID == "" {
		result.ID = uuid.New().String()
		err = s.documents.Create(ctx, result)
	} else {
		err = s.documents.Update(ctx, result)
	}
	if err != nil {
		return GenerateResult{}, err
	}

	metrics.GenerationsTotal.WithLabelValues(string(documentType), mode, producedBy).Inc()
	metrics.GenerationDuration.WithLabelValues(string(documentType)).Observe(time.Since(start).Seconds())

	s.publisher.Publish(ctx, &events.DocumentEvent{
		Event:        events.EventDocumentGenerated,
		UserID:       userID,
		DocumentID:   result.ID,
		DocumentType: result.Type,
		MimeType:     result.MimeType,
		Strategy:     producedBy,
		Timestamp:    meta.GeneratedAt,
	})

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"document_id":   result.ID,
		"document_type": result.Type,
		"strategy":      producedBy,
		"mime_type":     result.MimeType,
	}).Info("generated document")

	return GenerateResult{
		Document: result,
		Strategy: producedBy,
		Message:  resultMessage(producedBy, fellBack),
	}, nil
}

// buildChain assembles the ordered strategy list for one request. Official is
// only attempted when requested and the type has an official form; the text
// strategy closes every chain and cannot fail.
func (s *Service) buildChain(mode string, documentType render.DocumentType) []strategy {
	chain := make([]strategy, 0, 3)

	if mode == ModeOfficial && render.OfficialFormSupported(documentType) {
		chain = append(chain, strategy{
			name:     StrategyOfficial,
			mimeType: models.MimeTypePDF,
			render: func(data render.CaseData, meta render.Metadata) ([]byte, error) {
				return render.RenderOfficialForm(documentType, data, meta)
			},
		})
	}

	summaryRender, _ := render.SummaryRenderer(documentType)
	chain = append(chain, strategy{
		name:     StrategySummary,
		mimeType: models.MimeTypePDF,
		render:   summaryRender,
	})

	return chain
}

func (s *Service) runChain(ctx context.Context, chain []strategy, documentType render.DocumentType, data render.CaseData, meta render.Metadata, raw responses.Responses) (content, mimeType, producedBy string, fellBack bool) {
	for i, st := range chain {
		out, err := st.render(data, meta)
		if err != nil {
			metrics.FallbacksTotal.WithLabelValues(string(documentType), st.name).Inc()
			s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
				"document_type": documentType,
				"strategy":      st.name,
			}).Warn("render strategy failed, falling back")
			continue
		}
		return base64.StdEncoding.EncodeToString(out), st.mimeType, st.name, i > 0
	}

	// Final tier: plain text assembled from the raw answers. String
	// formatting only, so it always succeeds.
	metrics.FallbacksTotal.WithLabelValues(string(documentType), StrategySummary).Inc()
	out := render.RenderTextFallback(documentType, raw, meta)
	return string(out), models.MimeTypeText, StrategyText, true
}

func resultMessage(producedBy string, fellBack bool) string {
	switch producedBy {
	case StrategyOfficial:
		return "official court form generated"
	case StrategySummary:
		if fellBack {
			return "official form generation failed; summary document generated as fallback"
		}
		return "summary document generated"
	default:
		return "document rendering failed; plain-text fallback generated"
	}
}

func fileName(documentType render.DocumentType, mimeType string) string {
	base := strings.ReplaceAll(string(documentType), "_", "-")
	if mimeType == models.MimeTypeText {
		return base + ".txt"
	}
	return base + ".pdf"
}

// GetDocument returns a single owned document record.
func (s *Service) GetDocument(ctx context.Context, userID, id string) (models.GeneratedDocument, error) {
	ctx, span := tracing.StartSpan(ctx, "generation.GetDocument")
	defer span.End()

	if id == "" {
		return models.GeneratedDocument{}, httperror.NewHTTPError(http.StatusBadRequest, "document id is required")
	}

	return s.documents.GetByID(ctx, userID, id)
}

// ListDocuments returns every document record owned by the user.
func (s *Service) ListDocuments(ctx context.Context, userID string) ([]models.GeneratedDocument, error) {
	ctx, span := tracing.StartSpan(ctx, "generation.ListDocuments")
	defer span.End()

	return s.documents.List(ctx, userID)
}
