package finance

import (
	"github.com/Ramsey-B/fern/pkg/responses"
)

// formTypeIncomeCutoff is the annualized gross income above which the long
// form financial affidavit is required.
const formTypeIncomeCutoff = 75000.0

// Normalize converts a raw questionnaire answer set into structured financial
// data. Field lookups tolerate both kebab-case and camelCase spellings and
// default to zero; entries that sum to zero are omitted so the affidavit only
// lists rows with real amounts. The field-check sequence below is fixed, so
// identical input always produces identically ordered output.
func Normalize(raw responses.Responses, userID string) FinancialData {
	r := responses.NewResolver(raw)

	data := FinancialData{
		UserID:   userID,
		FormType: deriveFormType(r),
		Income:   normalizeIncome(r),
		Expenses: normalizeExpenses(r),
		Assets:   normalizeAssets(r),
		Debts:    normalizeDebts(r),
	}

	return data
}

func deriveFormType(r *responses.Resolver) FormType {
	totalGrossAnnual := r.Float("gross-annual-income")
	if totalGrossAnnual == 0 {
		totalGrossAnnual = r.Float("gross-monthly-salary") * 12
	}

	if totalGrossAnnual < formTypeIncomeCutoff {
		return FormShort
	}
	return FormLong
}

func normalizeIncome(r *responses.Resolver) []IncomeSource {
	income := []IncomeSource{}

	add := func(incomeType IncomeType, source string, amount float64, frequency Frequency) {
		if amount <= 0 {
			return
		}
		income = append(income, IncomeSource{
			Type:      incomeType,
			Source:    source,
			Amount:    amount,
			Frequency: frequency,
			IsCurrent: true,
		})
	}

	employer := r.String("employer-name")
	if employer == "" {
		employer = "Employer"
	}

	add(IncomeWages, employer, r.Float("gross-monthly-salary", "monthly-wages"), FrequencyMonthly)
	add(IncomeSelfEmployment, "Self-Employment", r.Float("self-employment-income"), FrequencyMonthly)
	add(IncomeRental, "Rental Property", r.Float("rental-income"), FrequencyMonthly)
	add(IncomeInvestment, "Investments", r.Float("investment-income", "dividend-income"), FrequencyMonthly)
	add(IncomeSocialSecurity, "Social Security", r.Float("social-security-income"), FrequencyMonthly)
	add(IncomePension, "Pension", r.Float("pension-income", "retirement-income"), FrequencyMonthly)
	add(IncomeUnemployment, "Unemployment Benefits", r.Float("unemployment-income"), FrequencyMonthly)
	add(IncomeOther, "Other Income", r.Float("other-income"), FrequencyMonthly)

	return income
}

func normalizeExpenses(r *responses.Resolver) []Expense {
	expenses := []Expense{}

	add := func(category ExpenseCategory, description string, amount float64) {
		if amount <= 0 {
			return
		}
		expenses = append(expenses, Expense{
			Category:    category,
			Description: description,
			Amount:      amount,
			Frequency:   FrequencyMonthly,
		})
	}

	add(ExpenseHousing, "Rent/Mortgage Payment", r.Float("rent-mortgage-payment", "housing-payment"))

	// the questionnaire collects six separate utility amounts; they sum into
	// a single utilities row
	utilities := r.Float("electricity-expense") +
		r.Float("gas-expense") +
		r.Float("water-expense") +
		r.Float("trash-expense") +
		r.Float("phone-expense") +
		r.Float("internet-expense")
	add(ExpenseUtilities, "Utilities", utilities)

	add(ExpenseFood, "Groceries/Food", r.Float("food-expense", "grocery-expense"))
	add(ExpenseTransportation, "Transportation", r.Float("transportation-expense", "car-expense"))
	add(ExpenseInsurance, "Insurance Premiums", r.Float("insurance-expense")+r.Float("health-insurance-premium"))
	add(ExpenseMedical, "Medical/Dental", r.Float("medical-expense"))
	add(ExpenseChildcare, "Childcare", r.Float("childcare-expense", "daycare-expense"))
	add(ExpenseEducation, "Education", r.Float("education-expense", "tuition-expense"))
	add(ExpenseDebtPayments, "Minimum Debt Payments", r.Float("debt-payment-expense", "credit-card-payment"))
	add(ExpensePersonal, "Personal/Clothing", r.Float("personal-expense", "clothing-expense"))
	add(ExpenseOther, "Other Expenses", r.Float("other-expense", "miscellaneous-expense"))

	return expenses
}

func normalizeAssets(r *responses.Resolver) []Asset {
	assets := []Asset{}

	add := func(assetType AssetType, description string, value float64, ownership Ownership) {
		if value <= 0 {
			return
		}
		assets = append(assets, Asset{
			Type:        assetType,
			Description: description,
			Value:       value,
			Ownership:   ownership,
		})
	}

	add(AssetRealEstate, "Marital Home", r.Float("home-value", "house-value"),
		ownershipOr(r, "home-ownership", OwnershipJoint))
	add(AssetRealEstate, "Other Real Estate", r.Float("other-real-estate-value"),
		ownershipOr(r, "other-real-estate-ownership", OwnershipJoint))
	add(AssetVehicle, "Vehicle 1", r.Float("vehicle-value", "vehicle-one-value"),
		ownershipOr(r, "vehicle-ownership", OwnershipJoint))
	add(AssetVehicle, "Vehicle 2", r.Float("vehicle-two-value"),
		ownershipOr(r, "vehicle-two-ownership", OwnershipJoint))
	add(AssetBankAccount, "Checking Account", r.Float("checking-account-balance"),
		ownershipOr(r, "checking-account-ownership", OwnershipJoint))
	add(AssetBankAccount, "Savings Account", r.Float("savings-account-balance"),
		ownershipOr(r, "savings-account-ownership", OwnershipJoint))
	add(AssetInvestmentAccount, "Investment Accounts", r.Float("investment-account-value", "brokerage-value"),
		ownershipOr(r, "investment-account-ownership", OwnershipJoint))
	add(AssetRetirement, "Retirement Accounts", r.Float("retirement-account-value", "401k-value"),
		ownershipOr(r, "retirement-account-ownership", OwnershipIndividual))
	add(AssetPersonalProperty, "Personal Property", r.Float("personal-property-value"),
		ownershipOr(r, "personal-property-ownership", OwnershipIndividual))
	add(AssetBusiness, "Business Interest", r.Float("business-value", "business-interest-value"),
		ownershipOr(r, "business-ownership", OwnershipIndividual))
	add(AssetOther, "Other Assets", r.Float("other-asset-value"),
		ownershipOr(r, "other-asset-ownership", OwnershipIndividual))

	return assets
}

func normalizeDebts(r *responses.Resolver) []Debt {
	debts := []Debt{}

	add := func(debtType DebtType, creditor string, balance float64, ownership Ownership) {
		if balance <= 0 {
			return
		}
		debts = append(debts, Debt{
			Type:      debtType,
			Creditor:  creditor,
			Balance:   balance,
			Ownership: ownership,
		})
	}

	add(DebtMortgage, "Mortgage Lender", r.Float("mortgage-balance"),
		ownershipOr(r, "mortgage-ownership", OwnershipJoint))
	add(DebtAutoLoan, "Auto Lender", r.Float("auto-loan-balance", "car-loan-balance"),
		ownershipOr(r, "auto-loan-ownership", OwnershipJoint))
	add(DebtCreditCard, "Credit Card Issuers", r.Float("credit-card-debt", "credit-card-balance"),
		ownershipOr(r, "credit-card-ownership", OwnershipIndividual))
	add(DebtStudentLoan, "Student Loan Servicer", r.Float("student-loan-balance"),
		ownershipOr(r, "student-loan-ownership", OwnershipIndividual))
	add(DebtMedical, "Medical Providers", r.Float("medical-debt"),
		ownershipOr(r, "medical-debt-ownership", OwnershipIndividual))
	add(DebtPersonalLoan, "Personal Lender", r.Float("personal-loan-balance"),
		ownershipOr(r, "personal-loan-ownership", OwnershipIndividual))
	add(DebtTax, "Tax Authority", r.Float("tax-debt"),
		ownershipOr(r, "tax-debt-ownership", OwnershipJoint))
	add(DebtOther, "Other Creditors", r.Float("other-debt-balance"),
		ownershipOr(r, "other-debt-ownership", OwnershipIndividual))

	return debts
}

// ownershipOr reads an explicit ownership answer, falling back to the default
// for that asset class when absent or unrecognized.
func ownershipOr(r *responses.Resolver, canonical string, fallback Ownership) Ownership {
	switch Ownership(r.String(canonical)) {
	case OwnershipIndividual:
		return OwnershipIndividual
	case OwnershipJoint:
		return OwnershipJoint
	case OwnershipSpouse:
		return OwnershipSpouse
	default:
		return fallback
	}
}
