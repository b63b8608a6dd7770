// Package billing is the invoice financial derivation engine: it turns a
// normalized invoice input into service lines, a reconciled
// gross/tax/net summary and a due date. Everything here is pure and
// deterministic; formatting and document layout live elsewhere.
package billing

import "github.com/shopspring/decimal"

// roundAmount applies standard commercial rounding to whole currency units:
// half away from zero.
func roundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// floorAmount truncates to whole currency units. On the non-negative amounts
// tax math operates on this is truncation toward zero.
func floorAmount(d decimal.Decimal) decimal.Decimal {
	return d.Floor()
}
