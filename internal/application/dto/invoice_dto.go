package dto

import "github.com/shopspring/decimal"

// ComputeBatchRequest body for POST /api/invoices/compute.
// Rows are loosely-typed spreadsheet records; the three date overrides apply
// uniformly to every row in the batch.
type ComputeBatchRequest struct {
	InvoiceDate     string           `json:"invoice_date"`
	BillingFromDate string           `json:"billing_from_date"`
	BillingToDate   string           `json:"billing_to_date"`
	Rows            []map[string]any `json:"rows"`
}

// RenderInvoiceRequest body for POST /api/invoices/render: a single row plus
// the batch date overrides; the response is the rendered PDF.
type RenderInvoiceRequest struct {
	InvoiceDate     string         `json:"invoice_date"`
	BillingFromDate string         `json:"billing_from_date"`
	BillingToDate   string         `json:"billing_to_date"`
	RowIndex        int            `json:"row_index,omitempty"`
	Row             map[string]any `json:"row"`
}

// ClientResponse billed party in responses.
type ClientResponse struct {
	Name      string `json:"name"`
	LegalName string `json:"legal_name"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Attn      string `json:"attn,omitempty"`
}

// ServiceLineResponse one derived invoice line.
type ServiceLineResponse struct {
	Category  string          `json:"category,omitempty"`
	Kind      string          `json:"kind"`
	Units     decimal.Decimal `json:"units"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// SummaryResponse the reconciled gross/tax/net triple.
type SummaryResponse struct {
	GrossAmount decimal.Decimal `json:"gross_amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	NetAmount   decimal.Decimal `json:"net_amount"`
}

// InvoiceResponse a fully computed invoice, keyed by invoice number.
type InvoiceResponse struct {
	ID                 string                `json:"id"`
	InvoiceNumber      string                `json:"invoice_number"`
	Status             string                `json:"status,omitempty"`
	Date               string                `json:"date"`
	DueDate            string                `json:"due_date"`
	BillingFromDate    string                `json:"billing_from_date"`
	BillingToDate      string                `json:"billing_to_date"`
	Client             ClientResponse        `json:"client"`
	Language           string                `json:"language"`
	PaymentTermsDays   int                   `json:"payment_terms_days"`
	BelowMinimum       bool                  `json:"below_minimum"`
	GrossUpInAdvance   bool                  `json:"gross_up_in_advance"`
	WithSignature      bool                  `json:"with_signature"`
	WithTaxCode        bool                  `json:"with_tax_code"`
	ShowDecimalAmounts bool                  `json:"show_decimal_amounts"`
	Notes              string                `json:"notes,omitempty"`
	Lines              []ServiceLineResponse `json:"lines"`
	Summary            SummaryResponse       `json:"summary"`
}

// RowErrorResponse one failed row in a batch; the rest of the batch is
// unaffected.
type RowErrorResponse struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ComputeBatchResponse body for POST /api/invoices/compute responses.
type ComputeBatchResponse struct {
	Invoices []InvoiceResponse  `json:"invoices"`
	Errors   []RowErrorResponse `json:"errors,omitempty"`
}
