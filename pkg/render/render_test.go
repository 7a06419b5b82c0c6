package render

import (
	"strings"
	"testing"
	"time"

	"github.com/Ramsey-B/fern/pkg/finance"
	"github.com/Ramsey-B/fern/pkg/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGeneratedAt = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testMeta() Metadata {
	return Metadata{
		UserID:      "user-1",
		GeneratedAt: testGeneratedAt,
		County:      "Cook",
	}
}

func affidavitCase() CaseData {
	return CaseData{
		Financial: finance.FinancialData{
			UserID:   "user-1",
			FormType: finance.FormShort,
			Income: []finance.IncomeSource{
				{Type: finance.IncomeWages, Source: "Acme Corp", Amount: 5000, Frequency: finance.FrequencyMonthly, IsCurrent: true},
			},
			Expenses: []finance.Expense{
				{Category: finance.ExpenseHousing, Description: "Rent/Mortgage Payment", Amount: 1500, Frequency: finance.FrequencyMonthly},
			},
		},
	}
}

func TestRenderFinancialAffidavit(t *testing.T) {
	t.Run("should embed computed totals in the output", func(t *testing.T) {
		out, err := RenderFinancialAffidavit(affidavitCase(), testMeta())
		require.NoError(t, err)

		pdf := string(out)
		assert.Contains(t, pdf, "FINANCIAL AFFIDAVIT")
		assert.Contains(t, pdf, "Total Monthly Income: $5,000.00")
		assert.Contains(t, pdf, "Total Monthly Expenses: $1,500.00")
		assert.Contains(t, pdf, "Net Monthly Income: $3,500.00")
	})

	t.Run("should render identical bytes for identical input", func(t *testing.T) {
		first, err := RenderFinancialAffidavit(affidavitCase(), testMeta())
		require.NoError(t, err)

		second, err := RenderFinancialAffidavit(affidavitCase(), testMeta())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should not fail on empty financial data", func(t *testing.T) {
		out, err := RenderFinancialAffidavit(CaseData{}, testMeta())
		require.NoError(t, err)
		assert.Contains(t, string(out), "Total Monthly Income: $0.00")
	})
}

func TestRenderPetition(t *testing.T) {
	t.Run("should emit statutory boilerplate for irreconcilable differences", func(t *testing.T) {
		out, err := RenderPetition(CaseData{
			Petition: finance.PetitionData{
				PetitionerName:   "Jordan Smith",
				RespondentName:   "Casey Smith",
				County:           "Cook",
				Grounds:          "irreconcilable",
				SeparationMonths: 8,
			},
		}, testMeta())
		require.NoError(t, err)

		pdf := string(out)
		assert.Contains(t, pdf, "Irreconcilable differences")
		assert.Contains(t, pdf, "8 months")
	})

	t.Run("should print unknown grounds verbatim in brackets", func(t *testing.T) {
		out, err := RenderPetition(CaseData{
			Petition: finance.PetitionData{Grounds: "mental cruelty"},
		}, testMeta())
		require.NoError(t, err)

		assert.Contains(t, string(out), "[mental cruelty]")
	})

	t.Run("should render placeholders for missing fields", func(t *testing.T) {
		out, err := RenderPetition(CaseData{}, testMeta())
		require.NoError(t, err)

		assert.Contains(t, string(out), Placeholder)
	})
}

func TestRenderOfficialForm(t *testing.T) {
	t.Run("should render supported official forms", func(t *testing.T) {
		assert.True(t, OfficialFormSupported(DocumentPetition))
		assert.True(t, OfficialFormSupported(DocumentFinancialAffidavit))

		out, err := RenderOfficialForm(DocumentPetition, CaseData{
			Petition: finance.PetitionData{PetitionerName: "Jordan Smith"},
		}, testMeta())
		require.NoError(t, err)
		assert.Contains(t, string(out), "Jordan Smith")
	})

	t.Run("should error on unsupported document types", func(t *testing.T) {
		assert.False(t, OfficialFormSupported(DocumentParentingPlan))

		_, err := RenderOfficialForm(DocumentParentingPlan, CaseData{}, testMeta())
		assert.Error(t, err)
	})
}

func TestRenderTextFallback(t *testing.T) {
	t.Run("should list every answer with a humanized label", func(t *testing.T) {
		out := RenderTextFallback(DocumentPetition, responses.Responses{
			"employer-name":        "Acme Corp",
			"gross-monthly-salary": 5000.0,
		}, testMeta())

		text := string(out)
		assert.Contains(t, text, "Employer Name:")
		assert.Contains(t, text, "Acme Corp")
		assert.Contains(t, text, "Gross Monthly Salary:")
		assert.Contains(t, text, "5000")
	})

	t.Run("should include the disclaimer and timestamp", func(t *testing.T) {
		out := RenderTextFallback(DocumentPetition, responses.Responses{}, testMeta())

		text := string(out)
		assert.Contains(t, text, "FreshStart IL")
		assert.Contains(t, text, testGeneratedAt.Format(time.RFC1123))
	})

	t.Run("should order keys deterministically", func(t *testing.T) {
		raw := responses.Responses{"b-key": 1, "a-key": 2, "c-key": 3}

		first := RenderTextFallback(DocumentPetition, raw, testMeta())
		second := RenderTextFallback(DocumentPetition, raw, testMeta())
		assert.Equal(t, first, second)

		text := string(first)
		assert.Less(t, strings.Index(text, "A Key:"), strings.Index(text, "B Key:"))
		assert.Less(t, strings.Index(text, "B Key:"), strings.Index(text, "C Key:"))
	})
}

func TestCanvasSpace(t *testing.T) {
	t.Run("should track remaining space as the cursor advances", func(t *testing.T) {
		c := NewCanvas(testGeneratedAt)
		assert.Equal(t, pageHeight-minMargin-marginTop, c.Remaining())

		c.Line("line one")
		assert.Equal(t, pageHeight-minMargin-marginTop-lineHeight, c.Remaining())
	})

	t.Run("should keep the cursor in place when the block fits", func(t *testing.T) {
		c := NewCanvas(testGeneratedAt)
		c.Line("line one")
		before := c.Remaining()

		c.EnsureSpace(before - lineHeight)
		assert.Equal(t, before, c.Remaining())
	})

	t.Run("should paginate when the block does not fit", func(t *testing.T) {
		c := NewCanvas(testGeneratedAt)
		c.Line("line one")

		c.EnsureSpace(c.Remaining() + 1)
		assert.Equal(t, pageHeight-minMargin-marginTop, c.Remaining())
	})
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "$0.00"},
		{5000, "$5,000.00"},
		{1234567.89, "$1,234,567.89"},
		{-1500, "-$1,500.00"},
		{42.5, "$42.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatMoney(tt.input), "input: %v", tt.input)
	}
}
