package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estudio-stock/internal/application/analytics"
	"github.com/jhoicas/estudio-stock/internal/application/dto"
	"github.com/jhoicas/estudio-stock/internal/application/orders"
	"github.com/jhoicas/estudio-stock/internal/application/usecase"
	"github.com/jhoicas/estudio-stock/internal/infrastructure/memory"
	"github.com/jhoicas/estudio-stock/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/estudio-stock/internal/interfaces/http"
)

// newTestApp levanta la aplicación completa sobre el almacén en memoria.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	orderRepo := memory.NewOrderRepository(store)

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(productRepo),
		OrderUC:     orders.NewUseCase(memory.NewTxRunner(store), orderRepo),
		ReceiptUC:   orders.NewReceiptUseCase(orderRepo, pdf.NewMarotoReceiptGenerator("Estudio de Belleza")),
		DashboardUC: analytics.NewDashboardUseCase(memory.NewAnalyticsRepository(store)),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func createProduct(t *testing.T, app *fiber.App, name string, price string, stock int64) dto.ProductResponse {
	t.Helper()
	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"name":            name,
		"category":        "Maquillaje",
		"price":           price,
		"stock":           stock,
		"alert_threshold": 2,
		"usage_type":      "venta",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "cuerpo: %s", raw)

	var out dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestProductEndpoints(t *testing.T) {
	app := newTestApp(t)

	created := createProduct(t, app, "Set de Maquillaje Profesional", "240000", 2)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "bajo", created.StockStatus)

	// GET por ID
	resp, raw := doJSON(t, app, fiber.MethodGet, "/api/products/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, created.ID, got.ID)

	// GET inexistente -> 404
	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/products/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// PUT parcial
	resp, raw = doJSON(t, app, fiber.MethodPut, "/api/products/"+created.ID, fiber.Map{"stock": 10})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, "cuerpo: %s", raw)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, int64(10), got.Stock)
	assert.Equal(t, "normal", got.StockStatus)

	// Listado
	resp, raw = doJSON(t, app, fiber.MethodGet, "/api/products", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.ProductListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Len(t, list.Items, 1)

	// DELETE y 404 al repetir
	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/products/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/products/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProductCreate_Validacion(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"name":       "",
		"category":   "Maquillaje",
		"price":      "1000",
		"usage_type": "venta",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Equal(t, "el nombre es requerido", errResp.Message)
}

func TestOrderEndpoints_Venta(t *testing.T) {
	app := newTestApp(t)
	product := createProduct(t, app, "Set de Maquillaje Profesional", "240000", 2)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"customer_name": "Laura Gómez",
		"type":          "sale",
		"items":         []fiber.Map{{"product_id": product.ID, "quantity": 1}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "cuerpo: %s", raw)

	var order dto.OrderResponse
	require.NoError(t, json.Unmarshal(raw, &order))
	assert.Equal(t, "completed", order.Status)
	assert.Equal(t, "Orden #001", order.Reference)

	// El stock quedó descontado
	resp, raw = doJSON(t, app, fiber.MethodGet, "/api/products/"+product.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, int64(1), got.Stock)
}

func TestOrderEndpoints_StockInsuficiente(t *testing.T) {
	app := newTestApp(t)
	product := createProduct(t, app, "Set de Maquillaje Profesional", "240000", 2)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"customer_name": "Laura",
		"type":          "sale",
		"items":         []fiber.Map{{"product_id": product.ID, "quantity": 5}},
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)
}

func TestOrderEndpoints_ProductoInexistente(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"customer_name": "Laura",
		"type":          "sale",
		"items":         []fiber.Map{{"product_id": "fantasma", "quantity": 1}},
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "PRODUCT_NOT_FOUND", errResp.Code)
}

func TestOrderEndpoints_CompletarFlujo(t *testing.T) {
	app := newTestApp(t)
	product := createProduct(t, app, "Set de Maquillaje Profesional", "240000", 2)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"customer_name": "Laura",
		"type":          "order",
		"items":         []fiber.Map{{"product_id": product.ID, "quantity": 2}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var order dto.OrderResponse
	require.NoError(t, json.Unmarshal(raw, &order))
	require.Equal(t, "pending", order.Status)

	// Completar
	resp, raw = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/orders/%s/complete", order.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, "cuerpo: %s", raw)
	require.NoError(t, json.Unmarshal(raw, &order))
	assert.Equal(t, "completed", order.Status)

	// Completar de nuevo -> 409 ALREADY_COMPLETED
	resp, raw = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/orders/%s/complete", order.ID), nil)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "ALREADY_COMPLETED", errResp.Code)

	// Completar una orden inexistente -> 404
	resp, _ = doJSON(t, app, fiber.MethodPut, "/api/orders/no-existe/complete", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderEndpoints_ListYDelete(t *testing.T) {
	app := newTestApp(t)
	product := createProduct(t, app, "Set de Maquillaje Profesional", "240000", 10)

	var ultima dto.OrderResponse
	for i := 0; i < 2; i++ {
		resp, raw := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
			"customer_name": "Laura",
			"type":          "sale",
			"items":         []fiber.Map{{"product_id": product.ID, "quantity": 1}},
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		require.NoError(t, json.Unmarshal(raw, &ultima))
	}

	resp, raw := doJSON(t, app, fiber.MethodGet, "/api/orders", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.OrderListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, ultima.ID, list.Items[0].ID, "la más reciente encabeza la lista")

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/orders/"+ultima.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/orders/"+ultima.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderEndpoints_Receipt(t *testing.T) {
	app := newTestApp(t)
	product := createProduct(t, app, "Set de Maquillaje Profesional", "240000", 2)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"customer_name": "Laura Gómez",
		"type":          "sale",
		"items":         []fiber.Map{{"product_id": product.ID, "quantity": 1}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var order dto.OrderResponse
	require.NoError(t, json.Unmarshal(raw, &order))

	resp, raw = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/orders/%s/receipt", order.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "orden-001.pdf")
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/orders/no-existe/receipt", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	app := newTestApp(t)
	product := createProduct(t, app, "Set de Maquillaje Profesional", "240000", 5)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/orders", fiber.Map{
		"customer_name": "Laura",
		"type":          "sale",
		"items":         []fiber.Map{{"product_id": product.ID, "quantity": 2}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary dto.DashboardSummaryDTO
	require.NoError(t, json.Unmarshal(raw, &summary))
	assert.Equal(t, int64(1), summary.ProductCount)
	assert.Equal(t, int64(1), summary.CompletedCount)
	assert.True(t, summary.CompletedTotal.Equal(decimal.NewFromInt(480000)))
	require.Len(t, summary.MonthlyRevenue, 12)
}
