package entity

import "github.com/shopspring/decimal"

// ServiceCategory identifies one of the billable service categories.
type ServiceCategory string

const (
	CategoryBankStatement      ServiceCategory = "bank_statement"
	CategoryCreditHistory      ServiceCategory = "credit_history" // SLIK
	CategoryIncome             ServiceCategory = "income"
	CategoryKYC                ServiceCategory = "kyc"
	CategoryDocumentProcessing ServiceCategory = "document_processing" // IDP
)

// Categories lists the billable categories in invoice display order.
var Categories = []ServiceCategory{
	CategoryBankStatement,
	CategoryCreditHistory,
	CategoryIncome,
	CategoryKYC,
	CategoryDocumentProcessing,
}

// Kinds of service line.
const (
	LineKindUsage             = "usage"              // paid usage
	LineKindFreeCredit        = "free_credit"        // negative-valued credit for free usage
	LineKindMinimumCommitment = "minimum_commitment" // flat below-minimum override
)

// ServiceLine is one derived invoice line. Units may be negative (free-usage
// credit) or fixed at 1 (minimum commitment). Total is rounded to whole
// currency units independently of the other lines.
type ServiceLine struct {
	Category  ServiceCategory
	Kind      string
	Units     decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}
