package billing

import (
	"context"
	"fmt"

	"github.com/wyawin/fineksi-invoice/internal/domain"
	"github.com/wyawin/fineksi-invoice/internal/domain/entity"
	"github.com/wyawin/fineksi-invoice/pkg/config"
)

// PDFUseCase renders the document representation of a computed invoice.
type PDFUseCase struct {
	generator InvoicePDFGenerator
	doc       config.DocumentConfig
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(generator InvoicePDFGenerator, doc config.DocumentConfig) *PDFUseCase {
	return &PDFUseCase{generator: generator, doc: doc}
}

// RenderInvoicePDF renders one computed invoice.
//
// A rendering failure is reported as domain.ErrRenderFailed and does not
// touch the computed invoice: the pipeline is deterministic, so the caller
// can simply recompute and render again.
func (uc *PDFUseCase) RenderInvoicePDF(ctx context.Context, inv *entity.Invoice) (pdfBytes []byte, filename string, err error) {
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, uc.doc)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	filename = fmt.Sprintf("Invoice-%s-%s.pdf", inv.Input.InvoiceNumber, inv.Input.Client.LegalName)
	return pdfBytes, filename, nil
}
