package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/wyawin/fineksi-invoice/internal/application/billing"
	"github.com/wyawin/fineksi-invoice/internal/application/dto"
	"github.com/wyawin/fineksi-invoice/internal/domain/entity"
	apphttp "github.com/wyawin/fineksi-invoice/internal/interfaces/http"
	"github.com/wyawin/fineksi-invoice/pkg/config"
	"github.com/wyawin/fineksi-invoice/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

// stubPDFGenerator replaces the Maroto generator so handler tests stay fast
// and can force render failures.
type stubPDFGenerator struct {
	fail bool
}

func (s *stubPDFGenerator) GenerateInvoicePDF(_ context.Context, _ *entity.Invoice, _ config.DocumentConfig) ([]byte, error) {
	if s.fail {
		return nil, errors.New("boom")
	}
	return []byte("%PDF-1.7 stub"), nil
}

func buildTestApp(gen appbilling.InvoicePDFGenerator) *fiber.App {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	computeUC := appbilling.NewComputeInvoiceUseCase(log)
	pdfUC := appbilling.NewPDFUseCase(gen, config.DocumentConfig{CompanyName: "Fineksi"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{ComputeUC: computeUC, PDFUC: pdfUC})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func advanceRow(client string) map[string]any {
	return map[string]any{
		"Client":               client,
		"GrossUp":              2,
		"GrossUpInAdvance":     "true",
		"Usage Bank Statement": 280,
		"BS GU Amount":         3500,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/invoices/compute
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeBatch_AdvanceGrossUpVector(t *testing.T) {
	app := buildTestApp(&stubPDFGenerator{})
	resp := postJSON(t, app, "/api/invoices/compute", dto.ComputeBatchRequest{
		InvoiceDate:     "2024-01-25",
		BillingFromDate: "2024-01-01",
		BillingToDate:   "2024-01-31",
		Rows:            []map[string]any{advanceRow("PT Maju Jaya")},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ComputeBatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Invoices, 1)
	require.Empty(t, out.Errors)

	inv := out.Invoices[0]
	assert.Equal(t, "001", inv.InvoiceNumber, "missing number becomes padded row index")
	assert.Equal(t, "2024-02-08", inv.DueDate)
	assert.Equal(t, "980000", inv.Summary.NetAmount.String())
	assert.Equal(t, "1000000", inv.Summary.GrossAmount.String())
	assert.Equal(t, "20000", inv.Summary.TaxAmount.String())
}

// A poisoned row reports its error; the healthy rows still compute.
func TestComputeBatch_PartialFailure(t *testing.T) {
	app := buildTestApp(&stubPDFGenerator{})
	bad := advanceRow("PT Rusak")
	bad["GrossUp"] = 100

	resp := postJSON(t, app, "/api/invoices/compute", dto.ComputeBatchRequest{
		InvoiceDate: "2024-01-25",
		Rows:        []map[string]any{advanceRow("PT Sehat"), bad},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ComputeBatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Invoices, 1)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, 1, out.Errors[0].Row)
	assert.Contains(t, out.Errors[0].Message, "gross-up percent")
}

func TestComputeBatch_NoRows_Returns400(t *testing.T) {
	app := buildTestApp(&stubPDFGenerator{})
	resp := postJSON(t, app, "/api/invoices/compute", dto.ComputeBatchRequest{InvoiceDate: "2024-01-25"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestComputeBatch_MalformedDateOverride_BatchFatal(t *testing.T) {
	app := buildTestApp(&stubPDFGenerator{})
	resp := postJSON(t, app, "/api/invoices/compute", dto.ComputeBatchRequest{
		InvoiceDate: "25-01-2024",
		Rows:        []map[string]any{advanceRow("PT Maju Jaya")},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "a bad override fails the whole batch, no partial result")
}

func TestComputeBatch_InvalidBody_Returns400(t *testing.T) {
	app := buildTestApp(&stubPDFGenerator{})
	req := httptest.NewRequest(http.MethodPost, "/api/invoices/compute", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/invoices/render
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_ReturnsPDF(t *testing.T) {
	app := buildTestApp(&stubPDFGenerator{})
	resp := postJSON(t, app, "/api/invoices/render", dto.RenderInvoiceRequest{
		InvoiceDate: "2024-01-25",
		Row:         advanceRow("PT Maju Jaya"),
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Invoice-001-PT Maju Jaya.pdf")

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestRender_GrossUpFullPercent_Returns422(t *testing.T) {
	app := buildTestApp(&stubPDFGenerator{})
	row := advanceRow("PT Rusak")
	row["GrossUp"] = 100

	resp := postJSON(t, app, "/api/invoices/render", dto.RenderInvoiceRequest{
		InvoiceDate: "2024-01-25",
		Row:         row,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "COMPUTATION")
}

func TestRender_GeneratorFailure_Returns500(t *testing.T) {
	app := buildTestApp(&stubPDFGenerator{fail: true})
	resp := postJSON(t, app, "/api/invoices/render", dto.RenderInvoiceRequest{
		InvoiceDate: "2024-01-25",
		Row:         advanceRow("PT Maju Jaya"),
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "RENDER_FAILED")
}

func TestRender_MissingRow_Returns400(t *testing.T) {
	app := buildTestApp(&stubPDFGenerator{})
	resp := postJSON(t, app, "/api/invoices/render", dto.RenderInvoiceRequest{InvoiceDate: "2024-01-25"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
