package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyawin/fineksi-invoice/internal/domain/billing"
	"github.com/wyawin/fineksi-invoice/internal/domain/entity"
)

func usage(used, free int64, price float64) entity.ServiceUsage {
	return entity.ServiceUsage{
		UsageCount: decimal.NewFromInt(used),
		FreeCount:  decimal.NewFromInt(free),
		UnitPrice:  decimal.NewFromFloat(price),
	}
}

func TestResolveServiceLines_PaidAndFreePerCategory(t *testing.T) {
	in := &entity.InvoiceInput{
		Usage: map[entity.ServiceCategory]entity.ServiceUsage{
			entity.CategoryBankStatement: usage(120, 20, 3500),
			entity.CategoryCreditHistory: usage(40, 0, 9000),
		},
	}

	lines := billing.ResolveServiceLines(in)
	require.Len(t, lines, 3, "bank statement paid+free, credit history paid only")

	assert.Equal(t, entity.LineKindUsage, lines[0].Kind)
	assert.True(t, lines[0].Units.Equal(decimal.NewFromInt(120)))
	assert.True(t, lines[0].Total.Equal(decimal.NewFromInt(420_000)))

	assert.Equal(t, entity.LineKindFreeCredit, lines[1].Kind)
	assert.True(t, lines[1].Units.Equal(decimal.NewFromInt(-20)), "credit line negates the free count")
	assert.True(t, lines[1].Total.Equal(decimal.NewFromInt(-70_000)))
	assert.True(t, lines[1].UnitPrice.Equal(lines[0].UnitPrice), "credit uses the paid line's unit price")

	assert.Equal(t, entity.CategoryCreditHistory, lines[2].Category)
	assert.True(t, lines[2].Total.Equal(decimal.NewFromInt(360_000)))
}

// A category with no paid usage but positive free count still shows the
// credit line; the paid line is suppressed. The filter runs on the
// pre-negation count, never on the line total.
func TestResolveServiceLines_FreeOnlyCategory_CreditVisible(t *testing.T) {
	in := &entity.InvoiceInput{
		Usage: map[entity.ServiceCategory]entity.ServiceUsage{
			entity.CategoryIncome: usage(0, 5, 12000),
		},
	}

	lines := billing.ResolveServiceLines(in)
	require.Len(t, lines, 1)
	assert.Equal(t, entity.LineKindFreeCredit, lines[0].Kind)
	assert.True(t, lines[0].Units.Equal(decimal.NewFromInt(-5)))
	assert.True(t, lines[0].Total.Equal(decimal.NewFromInt(-60_000)))
}

// freeCount > usageCount is not clamped; the category nets negative and that
// flows into the invoice total untouched.
func TestResolveServiceLines_FreeExceedsUsage_NegativeNet(t *testing.T) {
	in := &entity.InvoiceInput{
		Usage: map[entity.ServiceCategory]entity.ServiceUsage{
			entity.CategoryKYC: usage(3, 10, 1000),
		},
	}

	lines := billing.ResolveServiceLines(in)
	require.Len(t, lines, 2)
	assert.True(t, billing.SumLineTotals(lines).Equal(decimal.NewFromInt(-7_000)))
}

func TestResolveServiceLines_ZeroUsage_NoLines(t *testing.T) {
	in := &entity.InvoiceInput{Usage: map[entity.ServiceCategory]entity.ServiceUsage{}}
	assert.Empty(t, billing.ResolveServiceLines(in))
}

// ── Below-minimum override ───────────────────────────────────────────────────

func TestResolveServiceLines_BelowMinimum_SoleLine(t *testing.T) {
	in := &entity.InvoiceInput{
		BelowMinimum:                   true,
		MinimumCommitmentGrossUpAmount: decimal.NewFromInt(5_000_000),
		// Nonzero usage everywhere; the override must ignore all of it.
		Usage: map[entity.ServiceCategory]entity.ServiceUsage{
			entity.CategoryBankStatement: usage(999, 10, 3500),
			entity.CategoryIncome:        usage(50, 0, 12000),
		},
	}

	lines := billing.ResolveServiceLines(in)
	require.Len(t, lines, 1, "below minimum bills exactly one line")
	assert.Equal(t, entity.LineKindMinimumCommitment, lines[0].Kind)
	assert.True(t, lines[0].Units.Equal(decimal.NewFromInt(1)))
	assert.True(t, lines[0].UnitPrice.Equal(decimal.NewFromInt(5_000_000)))
	assert.True(t, lines[0].Total.Equal(decimal.NewFromInt(5_000_000)))
}

// ── Rounding per line ────────────────────────────────────────────────────────

// Three lines of 10.4 each round to 10 individually (sum 30), while the
// unrounded sum 31.2 would round to 31. Per-line rounding is canonical.
func TestResolveServiceLines_RoundsPerLineNotSum(t *testing.T) {
	in := &entity.InvoiceInput{
		Usage: map[entity.ServiceCategory]entity.ServiceUsage{
			entity.CategoryBankStatement:      usage(1, 0, 10.4),
			entity.CategoryCreditHistory:      usage(1, 0, 10.4),
			entity.CategoryDocumentProcessing: usage(1, 0, 10.4),
		},
	}

	lines := billing.ResolveServiceLines(in)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.True(t, l.Total.Equal(decimal.NewFromInt(10)), "each 10.4 rounds down alone")
	}

	perLine := billing.SumLineTotals(lines)
	assert.True(t, perLine.Equal(decimal.NewFromInt(30)))

	// The unrounded sum 31.2 would round to 31; per-line rounding is the
	// canonical behavior and yields 30.
	unroundedSum := decimal.NewFromFloat(31.2)
	assert.False(t, perLine.Equal(unroundedSum.Round(0)))
}

func TestResolveServiceLines_HalfUpPerLine(t *testing.T) {
	in := &entity.InvoiceInput{
		Usage: map[entity.ServiceCategory]entity.ServiceUsage{
			entity.CategoryIncome: usage(1, 0, 10.5),
		},
	}
	lines := billing.ResolveServiceLines(in)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Total.Equal(decimal.NewFromInt(11)), "half rounds away from zero")
}

func TestResolveServiceLines_DisplayOrderStable(t *testing.T) {
	in := &entity.InvoiceInput{
		Usage: map[entity.ServiceCategory]entity.ServiceUsage{
			entity.CategoryDocumentProcessing: usage(1, 0, 100),
			entity.CategoryBankStatement:      usage(1, 0, 100),
			entity.CategoryKYC:                usage(1, 0, 100),
		},
	}
	lines := billing.ResolveServiceLines(in)
	require.Len(t, lines, 3)
	assert.Equal(t, entity.CategoryBankStatement, lines[0].Category)
	assert.Equal(t, entity.CategoryKYC, lines[1].Category)
	assert.Equal(t, entity.CategoryDocumentProcessing, lines[2].Category)
}
