package billing

import (
	"github.com/google/uuid"

	"github.com/wyawin/fineksi-invoice/internal/application/dto"
	engine "github.com/wyawin/fineksi-invoice/internal/domain/billing"
	"github.com/wyawin/fineksi-invoice/internal/domain/entity"
	"github.com/wyawin/fineksi-invoice/pkg/logger"
)

// ComputeInvoiceUseCase runs the derivation pipeline: normalize → resolve
// service lines → reconcile tax summary → resolve due date → assemble.
// It holds no state between invoices; each computation is independent and
// deterministic.
type ComputeInvoiceUseCase struct {
	log *logger.Logger
}

// NewComputeInvoiceUseCase builds the use case.
func NewComputeInvoiceUseCase(log *logger.Logger) *ComputeInvoiceUseCase {
	return &ComputeInvoiceUseCase{log: log}
}

// RowError is a failed row in a batch. The failure aborts only that row's
// invoice; the rest of the batch is computed normally.
type RowError struct {
	Row int
	Err error
}

// ComputeBatch normalizes and computes every row with the shared date
// overrides. Rows are independent: order of results follows input order,
// and a computation error on one row is collected, not propagated.
func (uc *ComputeInvoiceUseCase) ComputeBatch(rows []map[string]any, ov DateOverrides) ([]*entity.Invoice, []RowError) {
	invoices := make([]*entity.Invoice, 0, len(rows))
	var failures []RowError
	for i, row := range rows {
		in := NormalizeRow(row, i, ov)
		inv, err := uc.Compute(in)
		if err != nil {
			uc.log.Warn().Int("row", i).Str("invoice_number", in.InvoiceNumber).
				Err(err).Msg("invoice computation failed")
			failures = append(failures, RowError{Row: i, Err: err})
			continue
		}
		invoices = append(invoices, inv)
	}
	return invoices, failures
}

// Compute assembles a single invoice from a normalized input. Pure
// composition over the engine: the only failure mode is an invalid tax
// configuration. An invoice with no billable usage is a valid business
// state and comes back with zero totals.
func (uc *ComputeInvoiceUseCase) Compute(in *entity.InvoiceInput) (*entity.Invoice, error) {
	lines := engine.ResolveServiceLines(in)
	total := engine.SumLineTotals(lines)
	if total.IsNegative() {
		uc.log.Warn().Str("invoice_number", in.InvoiceNumber).
			Str("total", total.String()).
			Msg("free usage exceeds paid usage, invoice total is negative")
	}

	summary, err := engine.PolicyFor(in).Summarize(total)
	if err != nil {
		return nil, err
	}

	return &entity.Invoice{
		ID:      uuid.New().String(),
		Input:   *in,
		Lines:   lines,
		Summary: summary,
		DueDate: engine.DueDate(in.InvoiceDate, in.PaymentTermsDays),
	}, nil
}

// ToResponse maps an assembled invoice onto the HTTP response shape.
func ToResponse(inv *entity.Invoice) dto.InvoiceResponse {
	in := inv.Input
	resp := dto.InvoiceResponse{
		ID:                 inv.ID,
		InvoiceNumber:      in.InvoiceNumber,
		Status:             in.Status,
		Date:               in.InvoiceDate.Format(dateLayout),
		DueDate:            inv.DueDate.Format(dateLayout),
		Client: dto.ClientResponse{
			Name:      in.Client.Name,
			LegalName: in.Client.LegalName,
			Email:     in.Client.Email,
			Address:   in.Client.Address,
			Attn:      in.Client.Attn,
		},
		Language:           in.Language,
		PaymentTermsDays:   in.PaymentTermsDays,
		BelowMinimum:       in.BelowMinimum,
		GrossUpInAdvance:   in.GrossUpInAdvance,
		WithSignature:      in.WithSignature,
		WithTaxCode:        in.WithTaxCode,
		ShowDecimalAmounts: in.ShowDecimalAmounts,
		Notes:              in.Notes,
		Lines:              make([]dto.ServiceLineResponse, 0, len(inv.Lines)),
		Summary: dto.SummaryResponse{
			GrossAmount: inv.Summary.GrossAmount,
			TaxAmount:   inv.Summary.TaxAmount,
			NetAmount:   inv.Summary.NetAmount,
		},
	}
	if !in.BillingFromDate.IsZero() {
		resp.BillingFromDate = in.BillingFromDate.Format(dateLayout)
	}
	if !in.BillingToDate.IsZero() {
		resp.BillingToDate = in.BillingToDate.Format(dateLayout)
	}
	for _, l := range inv.Lines {
		resp.Lines = append(resp.Lines, dto.ServiceLineResponse{
			Category:  string(l.Category),
			Kind:      l.Kind,
			Units:     l.Units,
			UnitPrice: l.UnitPrice,
			Total:     l.Total,
		})
	}
	return resp
}
