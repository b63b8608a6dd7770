package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/wyawin/fineksi-invoice/internal/domain"
	"github.com/wyawin/fineksi-invoice/internal/domain/entity"
)

// DateOverrides are the three batch-level dates applied uniformly to every
// row. They are copied into each InvoiceInput at construction, so later
// mutation of the batch configuration cannot reach already-normalized
// invoices.
type DateOverrides struct {
	InvoiceDate     time.Time
	BillingFromDate time.Time
	BillingToDate   time.Time
}

const dateLayout = "2006-01-02"

// ParseDateOverrides parses the override date strings. A malformed date here
// is fatal for the whole batch (outer-container failure), unlike per-field
// row coercion which never fails. An empty invoice date falls back to today.
func ParseDateOverrides(invoiceDate, billingFrom, billingTo string) (DateOverrides, error) {
	parse := func(name, s string) (time.Time, error) {
		if s == "" {
			return time.Time{}, nil
		}
		d, err := time.ParseInLocation(dateLayout, s, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s %q is not a YYYY-MM-DD date", domain.ErrInvalidInput, name, s)
		}
		return d, nil
	}

	var ov DateOverrides
	var err error
	if ov.InvoiceDate, err = parse("invoice_date", invoiceDate); err != nil {
		return DateOverrides{}, err
	}
	if ov.InvoiceDate.IsZero() {
		now := time.Now().UTC()
		ov.InvoiceDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if ov.BillingFromDate, err = parse("billing_from_date", billingFrom); err != nil {
		return DateOverrides{}, err
	}
	if ov.BillingToDate, err = parse("billing_to_date", billingTo); err != nil {
		return DateOverrides{}, err
	}
	return ov, nil
}

// NormalizeRow maps one loosely-typed spreadsheet row into a strictly-typed
// InvoiceInput. The policy is deliberately lenient: a missing or unparseable
// field gets its documented default (generally 0 or a placeholder) so that
// sparse spreadsheets still produce invoices. Nothing here can fail.
func NormalizeRow(row map[string]any, rowIndex int, ov DateOverrides) *entity.InvoiceInput {
	in := &entity.InvoiceInput{
		InvoiceNumber: stringField(row, "InvoiceNumber", fmt.Sprintf("%03d", rowIndex+1)),
		Status:        strings.ToLower(stringField(row, "Status", "draft")),

		InvoiceDate:     ov.InvoiceDate,
		BillingFromDate: ov.BillingFromDate,
		BillingToDate:   ov.BillingToDate,

		Client: entity.Client{
			Name:      stringField(row, "Client", "Unknown Client"),
			LegalName: stringField(row, "Legal Name", stringField(row, "Client", "Unknown Client")),
			Email:     stringField(row, "Email Sent", "client@example.com"),
			Address:   stringField(row, "Address", "Address not provided"),
			Attn:      stringField(row, "Attn", ""),
		},
		Notes: stringField(row, "Notes", ""),

		PaymentTermsDays: intField(row, "PaymentTerms", 14),
		Language:         normalizeLanguage(stringField(row, "Language", "")),

		GrossUpPercent:     decimalField(row, "GrossUp"),
		GrossUpInAdvance:   boolField(row, "GrossUpInAdvance"),
		TaxRounding:        taxRoundingField(row),
		WithSignature:      boolField(row, "WithSignature"),
		WithTaxCode:        boolField(row, "WithTaxCode"),
		BelowMinimum:       boolField(row, "Below Minimum"),
		ShowDecimalAmounts: boolField(row, "Show Decimals Items"),

		Usage: map[entity.ServiceCategory]entity.ServiceUsage{
			entity.CategoryBankStatement: {
				UsageCount: decimalField(row, "Usage Bank Statement"),
				FreeCount:  decimalField(row, "Free Bank Statement"),
				UnitPrice:  decimalField(row, "BS GU Amount"),
			},
			entity.CategoryCreditHistory: {
				UsageCount: decimalField(row, "Usage SLIK"),
				FreeCount:  decimalField(row, "Free SLIK"),
				UnitPrice:  decimalField(row, "SLIK GU Amount"),
			},
			entity.CategoryIncome: {
				UsageCount: decimalField(row, "Usage Income"),
				FreeCount:  decimalField(row, "Free Income"),
				UnitPrice:  decimalField(row, "Income GU Amount"),
			},
			entity.CategoryKYC: {
				UsageCount: decimalField(row, "Usage KYC"),
				FreeCount:  decimalField(row, "Free KYC"),
				UnitPrice:  decimalField(row, "Pefindo GU Amount"),
			},
			entity.CategoryDocumentProcessing: {
				UsageCount: decimalField(row, "Usage Invoice"),
				FreeCount:  decimalField(row, "Free Invoice"),
				UnitPrice:  decimalField(row, "IDP GU Amount"),
			},
		},

		MinimumCommitmentGrossUpAmount: decimalField(row, "GrossUp Amount"),
	}
	return in
}

// stringField coerces a cell to string. Absent, nil and empty values all
// yield the default, mirroring the source spreadsheets where an empty cell
// and a missing column are the same thing.
func stringField(row map[string]any, key, def string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return def
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	if s == "" {
		return def
	}
	return s
}

// boolField: a cell is true iff its string coercion equals exactly "true".
// "TRUE", "1", "yes" and malformed tokens are all false. This exact-match
// rule is inherited from the source system and callers rely on it.
func boolField(row map[string]any, key string) bool {
	v, ok := row[key]
	if !ok || v == nil {
		return false
	}
	return fmt.Sprintf("%v", v) == "true"
}

// decimalField parses a numeric cell, defaulting to zero on absence or
// parse failure.
func decimalField(row map[string]any, key string) decimal.Decimal {
	v, ok := row[key]
	if !ok || v == nil {
		return decimal.Zero
	}
	d, ok := parseDecimal(v)
	if !ok {
		return decimal.Zero
	}
	return d
}

func parseDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	default:
		d, err := decimal.NewFromString(strings.TrimSpace(fmt.Sprintf("%v", v)))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
}

// intField parses an integer cell; absence, parse failure or a negative
// value yield the default. An explicit 0 stays 0.
func intField(row map[string]any, key string, def int) int {
	v, ok := row[key]
	if !ok || v == nil {
		return def
	}
	d, ok := parseDecimal(v)
	if !ok {
		return def
	}
	n := int(d.IntPart())
	if n < 0 || !d.Equal(decimal.NewFromInt(int64(n))) {
		return def
	}
	return n
}

// taxRoundingField collapses the rounding token to the two supported modes;
// everything that is not exactly "normalRound" floors.
func taxRoundingField(row map[string]any) string {
	if stringField(row, "taxRounding", "") == entity.TaxRoundingNormal {
		return entity.TaxRoundingNormal
	}
	return entity.TaxRoundingFloor
}

var supportedLanguages = []language.Tag{language.English, language.Indonesian}

var languageMatcher = language.NewMatcher(supportedLanguages)

// normalizeLanguage maps the loose language names used in the spreadsheets
// ("English", "Bahasa", locale tags) to the locale tags the presentation
// layer understands. Unknown values fall back to English.
func normalizeLanguage(raw string) string {
	switch strings.ToLower(raw) {
	case "", "english":
		return "en"
	case "bahasa", "bahasa indonesia", "indonesian":
		return "id"
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "en"
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return "en"
	}
	if supportedLanguages[idx] == language.Indonesian {
		return "id"
	}
	return "en"
}
