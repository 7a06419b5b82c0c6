package render

import (
	"fmt"

	"github.com/Ramsey-B/fern/pkg/finance"
)

// RenderFinancialAffidavit produces the income/expense/asset/debt disclosure.
// Amounts are presented as monthly equivalents; stored amounts keep their
// native frequency.
func RenderFinancialAffidavit(data CaseData, meta Metadata) ([]byte, error) {
	c := NewCanvas(meta.GeneratedAt)
	fin := data.Financial

	formLabel := "Short Form"
	if fin.FormType == finance.FormLong {
		formLabel = "Long Form"
	}

	c.CenteredTitle("FINANCIAL AFFIDAVIT")
	c.CenteredTitle(fmt.Sprintf("(Family & Divorce Cases - %s)", formLabel))
	c.Spacer(lineHeight)

	c.KeyValue("Name:", OrPlaceholder(data.Petition.PetitionerName))
	c.KeyValue("County:", OrPlaceholder(data.Petition.County))
	c.KeyValue("Case Number:", OrPlaceholder(data.Petition.CaseNumber))
	c.Spacer(lineHeight)

	writeIncomeSection(c, fin)
	writeExpenseSection(c, fin)
	writeAssetSection(c, fin)
	writeDebtSection(c, fin)

	c.EnsureSpace(4 * lineHeight)
	c.SectionHeader("SUMMARY")
	c.KeyValue("Total Assets:", FormatMoney(fin.TotalAssets()))
	c.KeyValue("Total Debts:", FormatMoney(fin.TotalDebts()))
	c.KeyValue(fmt.Sprintf("Net Monthly Income: %s", FormatMoney(fin.NetMonthlyIncome())), "")

	c.EnsureSpace(4 * lineHeight)
	c.Spacer(lineHeight)
	c.Paragraph("I certify under penalty of perjury that the information in this affidavit is true, correct, and complete to the best of my knowledge.")
	c.Spacer(lineHeight)
	c.SignatureLine("Signature of Affiant")

	writeFooter(c, meta)

	return c.Output()
}

func writeIncomeSection(c *Canvas, fin finance.FinancialData) {
	c.EnsureSpace(headerHeight + 2*lineHeight)
	c.SectionHeader("INCOME")

	if len(fin.Income) == 0 {
		c.Line("No income sources reported.")
	}
	for _, source := range fin.Income {
		c.EnsureSpace(lineHeight)
		monthly := finance.MonthlyAmount(source.Amount, source.Frequency)
		label := fmt.Sprintf("%s - %s (%s)", incomeTypeLabel(source.Type), OrPlaceholder(source.Source), source.Frequency)
		c.KeyValue(label, fmt.Sprintf("%s/mo", FormatMoney(monthly)))
	}

	c.EnsureSpace(lineHeight)
	c.KeyValue(fmt.Sprintf("Total Monthly Income: %s", FormatMoney(fin.TotalMonthlyIncome())), "")
	c.Spacer(lineHeight / 2)
}

func writeExpenseSection(c *Canvas, fin finance.FinancialData) {
	c.EnsureSpace(headerHeight + 2*lineHeight)
	c.SectionHeader("MONTHLY EXPENSES")

	if len(fin.Expenses) == 0 {
		c.Line("No expenses reported.")
	}
	for _, expense := range fin.Expenses {
		c.EnsureSpace(lineHeight)
		monthly := finance.MonthlyAmount(expense.Amount, expense.Frequency)
		c.KeyValue(OrPlaceholder(expense.Description), fmt.Sprintf("%s/mo", FormatMoney(monthly)))
	}

	c.EnsureSpace(lineHeight)
	c.KeyValue(fmt.Sprintf("Total Monthly Expenses: %s", FormatMoney(fin.TotalMonthlyExpenses())), "")
	c.Spacer(lineHeight / 2)
}

func writeAssetSection(c *Canvas, fin finance.FinancialData) {
	c.EnsureSpace(headerHeight + 2*lineHeight)
	c.SectionHeader("ASSETS")

	if len(fin.Assets) == 0 {
		c.Line("No assets reported.")
	}
	for _, asset := range fin.Assets {
		c.EnsureSpace(lineHeight)
		label := fmt.Sprintf("%s (%s)", OrPlaceholder(asset.Description), asset.Ownership)
		c.KeyValue(label, FormatMoney(asset.Value))
	}
	c.Spacer(lineHeight / 2)
}

func writeDebtSection(c *Canvas, fin finance.FinancialData) {
	c.EnsureSpace(headerHeight + 2*lineHeight)
	c.SectionHeader("DEBTS")

	if len(fin.Debts) == 0 {
		c.Line("No debts reported.")
	}
	for _, debt := range fin.Debts {
		c.EnsureSpace(lineHeight)
		label := fmt.Sprintf("%s - %s (%s)", debtTypeLabel(debt.Type), OrPlaceholder(debt.Creditor), debt.Ownership)
		c.KeyValue(label, FormatMoney(debt.Balance))
	}
	c.Spacer(lineHeight / 2)
}

func incomeTypeLabel(t finance.IncomeType) string {
	switch t {
	case finance.IncomeWages:
		return "Wages/Salary"
	case finance.IncomeSelfEmployment:
		return "Self-Employment"
	case finance.IncomeRental:
		return "Rental Income"
	case finance.IncomeInvestment:
		return "Investment Income"
	case finance.IncomeSocialSecurity:
		return "Social Security"
	case finance.IncomePension:
		return "Pension/Retirement"
	case finance.IncomeUnemployment:
		return "Unemployment"
	default:
		return "Other Income"
	}
}

func debtTypeLabel(t finance.DebtType) string {
	switch t {
	case finance.DebtMortgage:
		return "Mortgage"
	case finance.DebtAutoLoan:
		return "Auto Loan"
	case finance.DebtCreditCard:
		return "Credit Card"
	case finance.DebtStudentLoan:
		return "Student Loan"
	case finance.DebtMedical:
		return "Medical Debt"
	case finance.DebtPersonalLoan:
		return "Personal Loan"
	case finance.DebtTax:
		return "Tax Debt"
	default:
		return "Other Debt"
	}
}
