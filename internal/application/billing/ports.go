package billing

import (
	"context"

	"github.com/wyawin/fineksi-invoice/internal/domain/entity"
	"github.com/wyawin/fineksi-invoice/pkg/config"
)

// InvoicePDFGenerator renders the document representation of a computed
// invoice. The engine only produces raw numbers, dates and a locale tag;
// all formatting lives behind this port.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, doc config.DocumentConfig) ([]byte, error)
}
