package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wyawin/fineksi-invoice/internal/domain"
	"github.com/wyawin/fineksi-invoice/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// TaxRegime selects one of the two mutually exclusive tax treatments.
type TaxRegime int

const (
	// RegimeStandard bills T as the gross amount and withholds tax from it.
	RegimeStandard TaxRegime = iota
	// RegimeAdvanceGrossUp treats T as the agreed net amount and back-solves
	// the gross so the client still nets T after withholding.
	RegimeAdvanceGrossUp
)

// TaxPolicy carries everything the calculator needs: the regime, the
// whole-number withholding percent and the rounding mode for the standard
// regime. Dispatch happens exactly once, in Summarize.
type TaxPolicy struct {
	Regime         TaxRegime
	GrossUpPercent decimal.Decimal
	Rounding       string // entity.TaxRoundingNormal; anything else floors
}

// PolicyFor derives the tax policy from a normalized invoice input.
func PolicyFor(in *entity.InvoiceInput) TaxPolicy {
	regime := RegimeStandard
	if in.GrossUpInAdvance {
		regime = RegimeAdvanceGrossUp
	}
	return TaxPolicy{
		Regime:         regime,
		GrossUpPercent: in.GrossUpPercent,
		Rounding:       in.TaxRounding,
	}
}

// Summarize reconciles the summed line total into the gross/tax/net triple.
//
// Advance gross-up: divider = 100 - percent, gross = round(T/divider*100),
// tax = gross - T, net = T. A percent of 100 (or more) is rejected with
// domain.ErrGrossUpDivideByZero rather than producing Inf/NaN.
//
// Standard: tax = round-or-floor(T*percent/100), net = T - tax, gross = T.
func (p TaxPolicy) Summarize(total decimal.Decimal) (entity.InvoiceSummary, error) {
	switch p.Regime {
	case RegimeAdvanceGrossUp:
		divider := hundred.Sub(p.GrossUpPercent)
		if !divider.IsPositive() {
			return entity.InvoiceSummary{}, fmt.Errorf("%w: gross-up percent %s",
				domain.ErrGrossUpDivideByZero, p.GrossUpPercent)
		}
		gross := roundAmount(total.Div(divider).Mul(hundred))
		return entity.InvoiceSummary{
			GrossAmount: gross,
			TaxAmount:   gross.Sub(total),
			NetAmount:   total,
		}, nil

	default:
		exact := total.Mul(p.GrossUpPercent).Div(hundred)
		var tax decimal.Decimal
		if p.Rounding == entity.TaxRoundingNormal {
			tax = roundAmount(exact)
		} else {
			tax = floorAmount(exact)
		}
		return entity.InvoiceSummary{
			GrossAmount: total,
			TaxAmount:   tax,
			NetAmount:   total.Sub(tax),
		}, nil
	}
}
