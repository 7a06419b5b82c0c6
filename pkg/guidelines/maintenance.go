package guidelines

import "math"

// combinedIncomeCap is the combined gross income above which the statutory
// maintenance guidelines no longer apply and the court sets the award.
const combinedIncomeCap = 500000.0

type SpousalMaintenanceInput struct {
	PayerGrossIncome float64 `json:"payer_gross_income" validate:"gte=0"`
	PayeeGrossIncome float64 `json:"payee_gross_income" validate:"gte=0"`
	MarriageYears    float64 `json:"marriage_years" validate:"gte=0"`
}

type SpousalMaintenanceCalculation struct {
	CombinedGrossIncome float64 `json:"combined_gross_income"`
	GuidelineAmount     float64 `json:"guideline_amount"`
	MonthlyAmount       float64 `json:"monthly_amount"`
	GuidelineDuration   int     `json:"guideline_duration_months"`
	Note                string  `json:"note,omitempty"`
}

// CalculateSpousalMaintenance applies the statutory maintenance formula.
// Incomes are annual gross figures; the guideline amount is annual with a
// monthly equivalent derived for presentation.
func CalculateSpousalMaintenance(input SpousalMaintenanceInput) SpousalMaintenanceCalculation {
	combined := input.PayerGrossIncome + input.PayeeGrossIncome

	if combined > combinedIncomeCap {
		return SpousalMaintenanceCalculation{
			CombinedGrossIncome: Round2(combined),
			GuidelineAmount:     0,
			MonthlyAmount:       0,
			GuidelineDuration:   0,
			Note:                "Combined gross income exceeds $500,000; maintenance is determined by the court rather than the guideline formula.",
		}
	}

	amount := input.PayerGrossIncome*0.3333 - input.PayeeGrossIncome*0.25

	// the payee's total income (own income plus maintenance) may not exceed
	// 40% of the combined gross
	cap := combined*0.4 - input.PayeeGrossIncome
	if amount > cap {
		amount = cap
	}
	if amount < 0 {
		amount = 0
	}

	duration, note := guidelineDuration(input.MarriageYears)

	return SpousalMaintenanceCalculation{
		CombinedGrossIncome: Round2(combined),
		GuidelineAmount:     Round2(amount),
		MonthlyAmount:       Round2(amount / 12),
		GuidelineDuration:   duration,
		Note:                note,
	}
}

// guidelineDuration steps the award duration by marriage length.
func guidelineDuration(years float64) (int, string) {
	months := years * 12

	switch {
	case years < 5:
		// duration equals the marriage length
	case years < 10:
		months *= 0.6
	case years < 15:
		months *= 0.7
	case years < 20:
		months *= 0.8
	default:
		return int(math.Round(months)), "For marriages of 20 years or more the court may order maintenance for an indefinite term."
	}

	return int(math.Round(months)), ""
}
