package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax rounding modes for the standard withholding regime.
const (
	TaxRoundingNormal = "normalRound" // nearest whole unit, half away from zero
	TaxRoundingFloor  = "floor"       // truncate toward zero
)

// Client is the billed party as it appears on the invoice document.
type Client struct {
	Name      string
	LegalName string
	Email     string
	Address   string
	Attn      string
}

// ServiceUsage is the usage/pricing triple for one billable service category.
// FreeCount is not guaranteed to be <= UsageCount; a category may net
// negative and the engine passes that through untouched.
type ServiceUsage struct {
	UsageCount decimal.Decimal
	FreeCount  decimal.Decimal
	UnitPrice  decimal.Decimal // gross-up unit price, whole currency units by convention
}

// InvoiceInput is the strictly-typed invoice record produced by the row
// normalizer. It is constructed once at ingestion time and treated as
// immutable by every downstream component.
type InvoiceInput struct {
	InvoiceNumber string
	Status        string

	InvoiceDate     time.Time // date-only, UTC midnight
	BillingFromDate time.Time
	BillingToDate   time.Time

	Client Client
	Notes  string

	PaymentTermsDays int
	Language         string // normalized locale tag: "en" or "id"

	GrossUpPercent     decimal.Decimal
	GrossUpInAdvance   bool
	TaxRounding        string // TaxRoundingNormal or TaxRoundingFloor
	WithSignature      bool
	WithTaxCode        bool
	BelowMinimum       bool
	ShowDecimalAmounts bool

	// Usage matrix keyed by service category.
	Usage map[ServiceCategory]ServiceUsage

	// Flat amount billed instead of itemized usage when BelowMinimum is set.
	MinimumCommitmentGrossUpAmount decimal.Decimal
}

// UsageFor returns the usage triple for a category, zero-valued when the
// category is absent from the matrix.
func (in *InvoiceInput) UsageFor(cat ServiceCategory) ServiceUsage {
	if u, ok := in.Usage[cat]; ok {
		return u
	}
	return ServiceUsage{}
}

// InvoiceSummary is the reconciled financial triple. This is the only output
// the presentation layer consumes for the totals block.
type InvoiceSummary struct {
	GrossAmount decimal.Decimal
	TaxAmount   decimal.Decimal
	NetAmount   decimal.Decimal
}

// Invoice is the fully assembled record handed to the presentation layer:
// input, derived service lines, reconciled summary and resolved due date.
type Invoice struct {
	ID      string // record id, assigned at assembly
	Input   InvoiceInput
	Lines   []ServiceLine
	Summary InvoiceSummary
	DueDate time.Time
}
