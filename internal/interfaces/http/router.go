package http

import (
	"github.com/gofiber/fiber/v2"

	appbilling "github.com/wyawin/fineksi-invoice/internal/application/billing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ComputeUC *appbilling.ComputeInvoiceUseCase
	PDFUC     *appbilling.PDFUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.ComputeUC, deps.PDFUC)
	invoices.Post("/compute", invoiceHandler.ComputeBatch)
	invoices.Post("/render", invoiceHandler.Render)
}
