// Package finance holds the structured financial and petition models the
// document renderers consume, plus the normalizer that builds them from raw
// questionnaire answers.
package finance

// Frequency is the native payment cadence of an amount. Amounts are always
// stored in their native frequency; monthly equivalents are derived at
// presentation time, never stored.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
	FrequencyOneTime  Frequency = "one_time"
)

type IncomeType string

const (
	IncomeWages          IncomeType = "wages"
	IncomeSelfEmployment IncomeType = "self_employment"
	IncomeRental         IncomeType = "rental"
	IncomeInvestment     IncomeType = "investment"
	IncomeSocialSecurity IncomeType = "social_security"
	IncomePension        IncomeType = "pension"
	IncomeUnemployment   IncomeType = "unemployment"
	IncomeOther          IncomeType = "other"
)

type ExpenseCategory string

const (
	ExpenseHousing        ExpenseCategory = "housing"
	ExpenseUtilities      ExpenseCategory = "utilities"
	ExpenseFood           ExpenseCategory = "food"
	ExpenseTransportation ExpenseCategory = "transportation"
	ExpenseInsurance      ExpenseCategory = "insurance"
	ExpenseMedical        ExpenseCategory = "medical"
	ExpenseChildcare      ExpenseCategory = "childcare"
	ExpenseEducation      ExpenseCategory = "education"
	ExpenseDebtPayments   ExpenseCategory = "debt_payments"
	ExpensePersonal       ExpenseCategory = "personal"
	ExpenseOther          ExpenseCategory = "other"
)

type AssetType string

const (
	AssetRealEstate        AssetType = "real_estate"
	AssetVehicle           AssetType = "vehicle"
	AssetBankAccount       AssetType = "bank_account"
	AssetInvestmentAccount AssetType = "investment_account"
	AssetRetirement        AssetType = "retirement"
	AssetPersonalProperty  AssetType = "personal_property"
	AssetBusiness          AssetType = "business"
	AssetOther             AssetType = "other"
)

type DebtType string

const (
	DebtMortgage     DebtType = "mortgage"
	DebtAutoLoan     DebtType = "auto_loan"
	DebtCreditCard   DebtType = "credit_card"
	DebtStudentLoan  DebtType = "student_loan"
	DebtMedical      DebtType = "medical"
	DebtPersonalLoan DebtType = "personal_loan"
	DebtTax          DebtType = "tax"
	DebtOther        DebtType = "other"
)

type Ownership string

const (
	OwnershipIndividual Ownership = "individual"
	OwnershipJoint      Ownership = "joint"
	OwnershipSpouse     Ownership = "spouse"
)

type FormType string

const (
	// FormShort is the short-form financial affidavit for total annualized
	// gross income under $75,000.
	FormShort FormType = "short"
	FormLong  FormType = "long"
)

type IncomeSource struct {
	Type      IncomeType `json:"type" validate:"required"`
	Source    string     `json:"source"`
	Amount    float64    `json:"amount" validate:"gte=0"`
	Frequency Frequency  `json:"frequency" validate:"required"`
	IsCurrent bool       `json:"is_current"`
}

type Expense struct {
	Category    ExpenseCategory `json:"category" validate:"required"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount" validate:"gte=0"`
	Frequency   Frequency       `json:"frequency" validate:"required"`
}

type Asset struct {
	Type        AssetType `json:"type" validate:"required"`
	Description string    `json:"description"`
	Value       float64   `json:"value" validate:"gte=0"`
	Ownership   Ownership `json:"ownership" validate:"required"`
}

type Debt struct {
	Type      DebtType  `json:"type" validate:"required"`
	Creditor  string    `json:"creditor"`
	Balance   float64   `json:"balance" validate:"gte=0"`
	Ownership Ownership `json:"ownership" validate:"required"`
}

type FinancialData struct {
	UserID   string         `json:"user_id"`
	FormType FormType       `json:"form_type"`
	Income   []IncomeSource `json:"income"`
	Expenses []Expense      `json:"expenses"`
	Assets   []Asset        `json:"assets"`
	Debts    []Debt         `json:"debts"`
}

// GroundsType values recognized by the petition renderer. Anything else is
// rendered verbatim in brackets rather than rejected.
type GroundsType string

const (
	GroundsIrreconcilable GroundsType = "irreconcilable"
)

// PetitionData is the flat field set for the petition renderer. Every field
// is optional; absent values render as underscore placeholders.
type PetitionData struct {
	PetitionerName    string `json:"petitioner_name"`
	PetitionerAddress string `json:"petitioner_address"`
	RespondentName    string `json:"respondent_name"`
	RespondentAddress string `json:"respondent_address"`
	County            string `json:"county"`
	CaseNumber        string `json:"case_number"`
	MarriageDate      string `json:"marriage_date"`
	MarriagePlace     string `json:"marriage_place"`
	SeparationDate    string `json:"separation_date"`
	Grounds           string `json:"grounds"`
	HasChildren       bool   `json:"has_children"`
	NumberOfChildren  int    `json:"number_of_children"`
	ResidencyMonths   int    `json:"residency_months"`
	SeparationMonths  int    `json:"separation_months"`
}
