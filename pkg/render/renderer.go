package render

import (
	"fmt"
	"time"

	"github.com/Ramsey-B/fern/pkg/finance"
	"github.com/Ramsey-B/fern/pkg/responses"
)

type DocumentType string

const (
	DocumentPetition            DocumentType = "petition"
	DocumentFinancialAffidavit  DocumentType = "financial_affidavit"
	DocumentParentingPlan       DocumentType = "parenting_plan"
	DocumentSettlementAgreement DocumentType = "settlement_agreement"
)

// KnownDocumentType reports whether the type has a summary renderer.
func KnownDocumentType(documentType DocumentType) bool {
	_, ok := summaryRenderers[documentType]
	return ok
}

// DisplayName is the human title used on cover sheets and file names.
func (t DocumentType) DisplayName() string {
	switch t {
	case DocumentPetition:
		return "Petition for Dissolution of Marriage"
	case DocumentFinancialAffidavit:
		return "Financial Affidavit"
	case DocumentParentingPlan:
		return "Parenting Plan"
	case DocumentSettlementAgreement:
		return "Marital Settlement Agreement"
	default:
		return string(t)
	}
}

// Metadata is injected into every render call. GeneratedAt is supplied by the
// caller so identical input produces byte-identical output.
type Metadata struct {
	UserID      string
	GeneratedAt time.Time
	County      string
}

// CaseData is the structured input renderers consume. Raw is retained for
// the plain-text fallback only.
type CaseData struct {
	Financial finance.FinancialData
	Petition  finance.PetitionData
	Raw       responses.Responses
}

// RenderFunc renders one document type. It must not fail on missing fields;
// absent values render as placeholders.
type RenderFunc func(data CaseData, meta Metadata) ([]byte, error)

var summaryRenderers = map[DocumentType]RenderFunc{
	DocumentPetition:            RenderPetition,
	DocumentFinancialAffidavit:  RenderFinancialAffidavit,
	DocumentParentingPlan:       RenderParentingPlan,
	DocumentSettlementAgreement: RenderSettlementAgreement,
}

// SummaryRenderer returns the summary renderer for a document type.
func SummaryRenderer(documentType DocumentType) (RenderFunc, bool) {
	fn, ok := summaryRenderers[documentType]
	return fn, ok
}

// disclaimerText ends every generated document. Compliance requirement; no
// renderer may omit it.
const disclaimerText = "This document was prepared with the assistance of FreshStart IL, an online self-help service. " +
	"It is not legal advice and FreshStart IL is not a law firm. Review all documents carefully before filing; " +
	"consult a licensed Illinois attorney if you have questions about your rights."

// writeFooter appends the disclaimer block and generation timestamp.
func writeFooter(c *Canvas, meta Metadata) {
	c.EnsureSpace(5 * lineHeight)
	c.Spacer(lineHeight)
	c.Rule()
	for _, line := range c.WrapText(disclaimerText, pageWidth-marginLeft-marginRight) {
		c.Line(line)
	}
	c.Line(fmt.Sprintf("Generated: %s", meta.GeneratedAt.UTC().Format("January 2, 2006 3:04 PM MST")))
}
