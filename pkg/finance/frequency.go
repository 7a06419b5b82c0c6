package finance

import "math"

// Monthly multipliers used when presenting an amount on the affidavit.
// One-time amounts contribute nothing to a monthly view.
var monthlyMultipliers = map[Frequency]float64{
	FrequencyWeekly:   4.33,
	FrequencyBiweekly: 2.17,
	FrequencyMonthly:  1,
	FrequencyYearly:   1.0 / 12.0,
	FrequencyOneTime:  0,
}

// MonthlyAmount converts an amount in its native frequency to its monthly
// equivalent, rounded to the cent. Unknown frequencies are treated as monthly.
func MonthlyAmount(amount float64, frequency Frequency) float64 {
	multiplier, ok := monthlyMultipliers[frequency]
	if !ok {
		multiplier = 1
	}
	return round2(amount * multiplier)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// TotalMonthlyIncome sums the monthly equivalent of every income source.
func (d FinancialData) TotalMonthlyIncome() float64 {
	total := 0.0
	for _, source := range d.Income {
		total += MonthlyAmount(source.Amount, source.Frequency)
	}
	return round2(total)
}

// TotalMonthlyExpenses sums the monthly equivalent of every expense.
func (d FinancialData) TotalMonthlyExpenses() float64 {
	total := 0.0
	for _, expense := range d.Expenses {
		total += MonthlyAmount(expense.Amount, expense.Frequency)
	}
	return round2(total)
}

// NetMonthlyIncome is monthly income less monthly expenses.
func (d FinancialData) NetMonthlyIncome() float64 {
	return round2(d.TotalMonthlyIncome() - d.TotalMonthlyExpenses())
}

// TotalAssets sums asset values.
func (d FinancialData) TotalAssets() float64 {
	total := 0.0
	for _, asset := range d.Assets {
		total += asset.Value
	}
	return round2(total)
}

// TotalDebts sums debt balances.
func (d FinancialData) TotalDebts() float64 {
	total := 0.0
	for _, debt := range d.Debts {
		total += debt.Balance
	}
	return round2(total)
}
