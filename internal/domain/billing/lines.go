package billing

import (
	"github.com/shopspring/decimal"

	"github.com/wyawin/fineksi-invoice/internal/domain/entity"
)

var one = decimal.NewFromInt(1)

// ResolveServiceLines derives the ordered billable line set for an invoice.
//
// When the client is below their minimum commitment the invoice bills the
// flat committed amount as the sole line; every usage field is ignored in
// that branch (an override, not an additive adjustment).
//
// Otherwise each category contributes up to two lines: a paid-usage line and
// a free-usage credit line at the same unit price. A line is kept iff its
// pre-negation count is strictly positive — a credit line with a positive
// free count stays visible even though its total is <= 0, so the client sees
// the credit spelled out.
//
// TODO: confirm with product that credit lines should stay visible when the
// category nets zero or negative; until then the pre-negation filter stands.
//
// Each line total is rounded to whole units independently, before summation.
func ResolveServiceLines(in *entity.InvoiceInput) []entity.ServiceLine {
	if in.BelowMinimum {
		return []entity.ServiceLine{{
			Kind:      entity.LineKindMinimumCommitment,
			Units:     one,
			UnitPrice: in.MinimumCommitmentGrossUpAmount,
			Total:     roundAmount(in.MinimumCommitmentGrossUpAmount),
		}}
	}

	lines := make([]entity.ServiceLine, 0, 2*len(entity.Categories))
	for _, cat := range entity.Categories {
		u := in.UsageFor(cat)
		if u.UsageCount.IsPositive() {
			lines = append(lines, entity.ServiceLine{
				Category:  cat,
				Kind:      entity.LineKindUsage,
				Units:     u.UsageCount,
				UnitPrice: u.UnitPrice,
				Total:     roundAmount(u.UsageCount.Mul(u.UnitPrice)),
			})
		}
		if u.FreeCount.IsPositive() {
			lines = append(lines, entity.ServiceLine{
				Category:  cat,
				Kind:      entity.LineKindFreeCredit,
				Units:     u.FreeCount.Neg(),
				UnitPrice: u.UnitPrice,
				Total:     roundAmount(u.FreeCount.Neg().Mul(u.UnitPrice)),
			})
		}
	}
	return lines
}

// SumLineTotals adds the already-rounded per-line totals. This sum — not a
// re-rounded grand total — is what feeds the tax calculator.
func SumLineTotals(lines []entity.ServiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total)
	}
	return total
}
