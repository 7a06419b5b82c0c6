package render

import (
	"fmt"

	"github.com/Ramsey-B/fern/pkg/errors"
	"github.com/Ramsey-B/fern/pkg/finance"
)

// officialField places one value at a fixed position on the approved form
// layout, with an optional label drawn above the fill-in rule.
type officialField struct {
	label string
	x, y  float64
	width float64
	value func(data CaseData) string
}

// officialForm is the fixed coordinate layout for one approved statewide
// form. Forms are reproduced page by page; pagination never applies.
type officialForm struct {
	title    string
	subtitle string
	fields   []officialField
}

var officialForms = map[DocumentType]officialForm{
	DocumentPetition:           petitionOfficialForm,
	DocumentFinancialAffidavit: affidavitOfficialForm,
}

// OfficialFormSupported reports whether an approved statewide form layout
// exists for the document type.
func OfficialFormSupported(documentType DocumentType) bool {
	_, ok := officialForms[documentType]
	return ok
}

// RenderOfficialForm fills the approved statewide form for the document type.
// Unlike the summary renderers this can fail: an unsupported type or a
// drawing error surfaces so the orchestrator can substitute the summary
// renderer.
func RenderOfficialForm(documentType DocumentType, data CaseData, meta Metadata) ([]byte, error) {
	form, ok := officialForms[documentType]
	if !ok {
		return nil, errors.NewRenderErrorf("no approved statewide form for document type '%s'", documentType).
			AddDocumentType(string(documentType)).AddStage("official")
	}

	c := NewCanvas(meta.GeneratedAt)

	c.CenteredTitle(form.title)
	if form.subtitle != "" {
		c.CenteredTitle(form.subtitle)
	}

	for _, field := range form.fields {
		value := field.value(data)
		if value == "" {
			value = Placeholder
		}
		c.TextAt(field.x, field.y-12, field.label)
		c.BoxAt(field.x, field.y-8, field.width, 18)
		c.TextAt(field.x+4, field.y+5, value)
	}

	writeOfficialFooter(c, meta)

	out, err := c.Output()
	if err != nil {
		return nil, errors.WrapRenderError(err).AddDocumentType(string(documentType)).AddStage("official")
	}
	return out, nil
}

func writeOfficialFooter(c *Canvas, meta Metadata) {
	c.TextAt(marginLeft, pageHeight-minMargin-14, "Approved Statewide Form - prepared via FreshStart IL")
	c.TextAt(marginLeft, pageHeight-minMargin, fmt.Sprintf("%s  |  Generated: %s", disclaimerShort, meta.GeneratedAt.UTC().Format("January 2, 2006 3:04 PM MST")))
}

// disclaimerShort is the single-line variant used on fixed layouts where the
// full disclaimer block does not fit.
const disclaimerShort = "Not legal advice. FreshStart IL is not a law firm."

var petitionOfficialForm = officialForm{
	title:    "APPROVED STATEWIDE FORM",
	subtitle: "PETITION FOR DISSOLUTION OF MARRIAGE",
	fields: []officialField{
		{"County", 72, 140, 180, func(d CaseData) string { return d.Petition.County }},
		{"Case Number", 340, 140, 180, func(d CaseData) string { return d.Petition.CaseNumber }},
		{"Petitioner Name", 72, 185, 220, func(d CaseData) string { return d.Petition.PetitionerName }},
		{"Respondent Name", 320, 185, 220, func(d CaseData) string { return d.Petition.RespondentName }},
		{"Petitioner Address", 72, 230, 468, func(d CaseData) string { return d.Petition.PetitionerAddress }},
		{"Respondent Address", 72, 275, 468, func(d CaseData) string { return d.Petition.RespondentAddress }},
		{"Date of Marriage", 72, 320, 150, func(d CaseData) string { return d.Petition.MarriageDate }},
		{"Place of Marriage", 250, 320, 290, func(d CaseData) string { return d.Petition.MarriagePlace }},
		{"Date of Separation", 72, 365, 150, func(d CaseData) string { return d.Petition.SeparationDate }},
		{"Grounds", 250, 365, 290, func(d CaseData) string { return d.Petition.Grounds }},
		{"Minor Children", 72, 410, 150, func(d CaseData) string {
			if d.Petition.HasChildren {
				return fmt.Sprintf("Yes (%d)", d.Petition.NumberOfChildren)
			}
			return "No"
		}},
		{"Illinois Residency (months)", 250, 410, 290, func(d CaseData) string {
			if d.Petition.ResidencyMonths > 0 {
				return fmt.Sprintf("%d", d.Petition.ResidencyMonths)
			}
			return ""
		}},
	},
}

var affidavitOfficialForm = officialForm{
	title:    "APPROVED STATEWIDE FORM",
	subtitle: "FINANCIAL AFFIDAVIT (FAMILY & DIVORCE CASES)",
	fields: []officialField{
		{"Name", 72, 140, 220, func(d CaseData) string { return d.Petition.PetitionerName }},
		{"County", 320, 140, 220, func(d CaseData) string { return d.Petition.County }},
		{"Form Type", 72, 185, 150, func(d CaseData) string {
			if d.Financial.FormType == finance.FormLong {
				return "Long Form"
			}
			return "Short Form"
		}},
		{"Case Number", 250, 185, 290, func(d CaseData) string { return d.Petition.CaseNumber }},
		{"Total Monthly Income", 72, 230, 150, func(d CaseData) string {
			return FormatMoney(d.Financial.TotalMonthlyIncome())
		}},
		{"Total Monthly Expenses", 250, 230, 150, func(d CaseData) string {
			return FormatMoney(d.Financial.TotalMonthlyExpenses())
		}},
		{"Net Monthly Income", 72, 275, 150, func(d CaseData) string {
			return FormatMoney(d.Financial.NetMonthlyIncome())
		}},
		{"Total Assets", 250, 275, 150, func(d CaseData) string {
			return FormatMoney(d.Financial.TotalAssets())
		}},
		{"Total Debts", 72, 320, 150, func(d CaseData) string {
			return FormatMoney(d.Financial.TotalDebts())
		}},
	},
}
