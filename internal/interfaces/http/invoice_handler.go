package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	appbilling "github.com/wyawin/fineksi-invoice/internal/application/billing"
	"github.com/wyawin/fineksi-invoice/internal/application/dto"
	"github.com/wyawin/fineksi-invoice/internal/domain"
)

// InvoiceHandler handles invoice computation and rendering requests.
type InvoiceHandler struct {
	compute *appbilling.ComputeInvoiceUseCase
	pdf     *appbilling.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(compute *appbilling.ComputeInvoiceUseCase, pdf *appbilling.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{compute: compute, pdf: pdf}
}

// ComputeBatch derives invoices for a batch of spreadsheet rows.
// POST /api/invoices/compute
func (h *InvoiceHandler) ComputeBatch(c *fiber.Ctx) error {
	var in dto.ComputeBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "request body is not valid JSON"})
	}
	if len(in.Rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rows are required"})
	}
	ov, err := appbilling.ParseDateOverrides(in.InvoiceDate, in.BillingFromDate, in.BillingToDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	invoices, failures := h.compute.ComputeBatch(in.Rows, ov)

	resp := dto.ComputeBatchResponse{Invoices: make([]dto.InvoiceResponse, 0, len(invoices))}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, appbilling.ToResponse(inv))
	}
	for _, f := range failures {
		resp.Errors = append(resp.Errors, dto.RowErrorResponse{Row: f.Row, Message: f.Err.Error()})
	}
	return c.JSON(resp)
}

// Render computes a single row and responds with the invoice PDF.
// POST /api/invoices/render
func (h *InvoiceHandler) Render(c *fiber.Ctx) error {
	var in dto.RenderInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "request body is not valid JSON"})
	}
	if in.Row == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "row is required"})
	}
	ov, err := appbilling.ParseDateOverrides(in.InvoiceDate, in.BillingFromDate, in.BillingToDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	inv, err := h.compute.Compute(appbilling.NormalizeRow(in.Row, in.RowIndex, ov))
	if err != nil {
		if errors.Is(err, domain.ErrGrossUpDivideByZero) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "COMPUTATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	pdfBytes, filename, err := h.pdf.RenderInvoicePDF(c.Context(), inv)
	if err != nil {
		// The computed invoice is untouched by a render failure; the client
		// can simply retry.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER_FAILED", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
