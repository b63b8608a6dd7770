// Package pdf renders the printable invoice document.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: company name + address + email                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Bill To (legal name, attn, address) │ number/date/due date  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Description | Qty | Price | Amount                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUMMARY: gross-up / tax / total (order depends on regime)   │
//	│  PAYMENT INFO: bank account (+ tax codes when requested)     │
//	│  SIGNATURE + FOOTER: payment-due notice                      │
//	└─────────────────────────────────────────────────────────────┘
//
// Everything shown here is derived from the computed invoice record and the
// document configuration; no amounts are recomputed in this layer.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	mconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/wyawin/fineksi-invoice/internal/application/billing"
	"github.com/wyawin/fineksi-invoice/internal/domain/entity"
	"github.com/wyawin/fineksi-invoice/pkg/config"
)

// ── Color palette ────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 7, Green: 43, Blue: 164}
	colorAccent  = &props.Color{Red: 31, Green: 81, Blue: 254}
	colorGray    = &props.Color{Red: 102, Green: 102, Blue: 102}
)

// ── Generator ────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns the PDF bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	doc config.DocumentConfig,
) ([]byte, error) {
	l := labelsFor(inv.Input.Language)

	cfg := mconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.Input.InvoiceNumber, true).
		WithAuthor(doc.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(companyHeaderRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(inv, doc, l))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(l))
	for _, r := range lineRows(inv, l) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(summaryRows(inv, l)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(paymentInfoRows(inv, doc, l)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(signatureRows(inv, doc)...)
	m.AddRows(footerRow(inv, l))

	rendered, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return rendered.GetBytes(), nil
}

// ── Sections ─────────────────────────────────────────────────────────────────

// companyHeaderRow: issuer letterhead.
func companyHeaderRow(doc config.DocumentConfig) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(doc.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(doc.CompanyAddress, "—")+"  |  "+nonEmpty(doc.CompanyEmail, "—"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
	)
}

// billToRow: billed party on the left, invoice metadata on the right.
func billToRow(inv *entity.Invoice, doc config.DocumentConfig, l labels) core.Row {
	in := inv.Input
	meta := fmt.Sprintf("%s: %s\n%s: %s\n%s: %s",
		l.invoiceNumber, in.InvoiceNumber,
		l.date, formatDate(in.InvoiceDate, in.Language),
		l.dueDate, formatDate(inv.DueDate, in.Language),
	)
	if !in.BillingFromDate.IsZero() && !in.BillingToDate.IsZero() {
		meta += fmt.Sprintf("\n%s: %s - %s",
			l.billingPeriod,
			formatDate(in.BillingFromDate, in.Language),
			formatDate(in.BillingToDate, in.Language),
		)
	}

	return row.New(30).Add(
		col.New(7).Add(
			text.New(l.billTo+":", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s\n%s\n%s", in.Client.LegalName, in.Client.Attn, in.Client.Address), props.Text{
				Size: 9, Top: 8,
			}),
		),
		col.New(5).Add(
			text.New(l.invoice, props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Right, Top: 1,
			}),
			text.New(meta, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: service table header.
func tableHeaderRow(l labels) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(l.serviceType, 6, align.Left),
		h(l.usage, 2, align.Center),
		h(l.rate, 2, align.Right),
		h(l.amount, 2, align.Right),
	)
}

// lineRows: one row per service line. Unit prices honor the 2-decimal
// display request; line totals are always whole units.
func lineRows(inv *entity.Invoice, l labels) []core.Row {
	rows := make([]core.Row, 0, len(inv.Lines))
	for _, sl := range inv.Lines {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(
				l.serviceLabel(sl),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				sl.Units.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatCurrency(sl.UnitPrice, inv.Input.ShowDecimalAmounts),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatCurrency(sl.Total, false),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return rows
}

// summaryRows: the reconciled triple. Under advance gross-up the net (the
// agreed amount) leads, with gross-up and tax below it; under the standard
// regime the total closes the block.
func summaryRows(inv *entity.Invoice, l labels) []core.Row {
	sum := inv.Summary
	label := func(s string) core.Col {
		return col.New(3).Add(text.New(s+":", props.Text{
			Size: 9, Align: align.Right, Right: 2, Color: colorGray,
		}))
	}
	value := func(v decimal.Decimal) core.Col {
		return col.New(3).Add(text.New(formatCurrency(v, false), props.Text{
			Size: 9, Align: align.Right, Right: 1,
		}))
	}
	totalLabel := func(s string) core.Col {
		return col.New(3).Add(text.New(s+":", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 2, Color: colorAccent,
		}))
	}
	totalValue := func(v decimal.Decimal) core.Col {
		return col.New(3).Add(text.New(formatCurrency(v, false), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 1, Color: colorAccent,
		}))
	}
	spacer := col.New(6)

	if inv.Input.GrossUpInAdvance {
		return []core.Row{
			row.New(8).Add(spacer, totalLabel(l.totalAmount), totalValue(sum.NetAmount)),
			row.New(6).Add(col.New(6), label(l.totalAmountGrossUp), value(sum.GrossAmount)),
			row.New(6).Add(col.New(6), label(l.tax), value(sum.TaxAmount)),
		}
	}
	return []core.Row{
		row.New(6).Add(spacer, label(l.totalAmountGrossUp), value(sum.GrossAmount)),
		row.New(6).Add(col.New(6), label(l.tax), value(sum.TaxAmount)),
		row.New(8).Add(col.New(6), totalLabel(l.totalAmount), totalValue(sum.NetAmount)),
	}
}

// paymentInfoRows: bank account block, plus the tax object and billing codes
// when the invoice asks for them.
func paymentInfoRows(inv *entity.Invoice, doc config.DocumentConfig, l labels) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(l.paymentInformation+":", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(14).Add(
			col.New(7).Add(text.New(fmt.Sprintf("%s: %s\n%s: %s\n%s: %s",
				l.bankName, doc.BankName,
				l.accountNumber, doc.BankAccountNumber,
				l.accountName, doc.CompanyName,
			), props.Text{Size: 9, Top: 1})),
			taxCodeCol(inv, doc, l),
		),
	}
	return rows
}

func taxCodeCol(inv *entity.Invoice, doc config.DocumentConfig, l labels) core.Col {
	if !inv.Input.WithTaxCode {
		return col.New(5)
	}
	return col.New(5).Add(text.New(fmt.Sprintf("%s: %s\n%s: %s",
		l.taxObjectCode, doc.TaxObjectCode,
		l.billingCode, doc.BillingCode,
	), props.Text{Size: 9, Align: align.Right, Top: 1}))
}

// signatureRows: company signature block. The signer's name and role appear
// only when the invoice requests a signature; otherwise the line stays blank
// for manual signing.
func signatureRows(inv *entity.Invoice, doc config.DocumentConfig) []core.Row {
	name := ""
	if inv.Input.WithSignature {
		role := doc.SignatureRole
		if inv.Input.Language == "en" {
			role = doc.SignatureRoleEN
		}
		name = doc.SignatureName + "\n" + role
	}
	return []core.Row{
		row.New(6).Add(col.New(4).Add(
			text.New(doc.CompanyName, props.Text{Size: 9, Color: colorGray, Top: 1}),
		)),
		row.New(20),
		row.New(2).Add(col.New(4).Add(line.New(props.Line{Thickness: 0.3}))),
		row.New(10).Add(col.New(4).Add(
			text.New(name, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
	}
}

// footerRow: thank-you note and payment-due notice.
func footerRow(inv *entity.Invoice, l labels) core.Row {
	notice := fmt.Sprintf("%s %d %s", l.paymentDue, inv.Input.PaymentTermsDays, l.paymentDue2)
	return row.New(14).Add(
		col.New(12).Add(
			text.New(l.thankYou, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorAccent, Top: 2,
			}),
			text.New(notice, props.Text{
				Size: 8, Align: align.Center, Color: colorPrimary, Top: 8,
			}),
		),
	)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatCurrency renders an IDR amount with thousands separators.
// Whole units unless the invoice requested 2-decimal display.
// "1000000" -> "IDR 1,000,000"; "-70000" -> "IDR -70,000".
func formatCurrency(v decimal.Decimal, withDecimals bool) string {
	digits := 0
	if withDecimals {
		digits = 2
	}
	s := v.StringFixed(int32(digits))
	neg := ""
	if len(s) > 0 && s[0] == '-' {
		neg, s = "-", s[1:]
	}
	whole, frac := s, ""
	for i := range s {
		if s[i] == '.' {
			whole, frac = s[:i], s[i:]
			break
		}
	}
	return "IDR " + neg + groupThousands(whole) + frac
}

// groupThousands inserts comma separators into a digit string.
// "1000000" -> "1,000,000".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// formatDate renders a date-only value in the invoice locale.
func formatDate(t time.Time, lang string) string {
	if lang == "id" {
		return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
	}
	return t.Format("January 2, 2006")
}
