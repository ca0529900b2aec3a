package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/application/alerts"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stockwatch-api/internal/interfaces/http"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

var testNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

type fakeGenerator struct{}

func (fakeGenerator) GenerateLowStockPDF(_ context.Context, _ int64, _ time.Time, report *dto.LowStockAlertsResponse) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), nil
}

func buildApp(s *store, jwtSecret string) *fiber.App {
	lowStock := alerts.NewLowStockUseCase(s, changeLog{s}, alerts.DefaultPolicy()).
		WithClock(func() time.Time { return testNow })
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LowStock:       lowStock,
		Report:         alerts.NewReportUseCase(lowStock, fakeGenerator{}),
		CreateProduct:  inventory.NewCreateProductUseCase(s, s, warehouses{s}),
		RegisterChange: inventory.NewRegisterChangeUseCase(s, s, warehouses{s}),
		Logger:         logger.Nop(),
		JWTSecret:      jwtSecret,
		JWTIssuer:      testIssuer,
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// lowStockRow producto con 5 unidades (umbral por defecto 20) actualizado hoy.
func lowStockRow() repository.StockSupplierRow {
	return repository.StockSupplierRow{
		Inventory: entity.Inventory{ProductID: 100, WarehouseID: 1, Quantity: 5, LastUpdated: testNow.Add(-time.Hour)},
		Product:   entity.Product{ID: 100, Name: "Widget", SKU: "WID-001", Price: decimal.NewFromInt(10)},
		Warehouse: entity.Warehouse{ID: 1, CompanyID: testCompanyID, Name: "Principal"},
		Supplier:  entity.Supplier{ID: 9, Name: "Acme", ContactEmail: "ventas@acme.test"},
	}
}

func TestCreateProduct_Retorna201(t *testing.T) {
	s := newStore()
	app := buildApp(s, "")

	resp := postJSON(t, app, "/api/products", `{"name":"Widget","sku":"WID-001","price":"12.50","warehouse_id":1,"initial_quantity":40}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.CreateProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Product created", out.Message)
	assert.NotZero(t, out.ProductID)

	inv, _ := s.inventoryOf(context.Background(), out.ProductID, 1)
	require.NotNil(t, inv)
	assert.Equal(t, int64(40), inv.Quantity)
}

func TestCreateProduct_CampoFaltante_Retorna400(t *testing.T) {
	app := buildApp(newStore(), "")

	resp := postJSON(t, app, "/api/products", `{"name":"Widget","price":"12.50","warehouse_id":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestCreateProduct_BodegaInexistente_Retorna404(t *testing.T) {
	app := buildApp(newStore(), "")

	resp := postJSON(t, app, "/api/products", `{"name":"Widget","sku":"WID-001","price":"1","warehouse_id":99}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestCreateProduct_SKUDuplicado_Retorna400(t *testing.T) {
	app := buildApp(newStore(), "")
	body := `{"name":"Widget","sku":"WID-001","price":"1","warehouse_id":1}`

	first := postJSON(t, app, "/api/products", body)
	first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)

	resp := postJSON(t, app, "/api/products", body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_SKU", decodeError(t, resp).Code)
}

func TestCreateProduct_CuerpoInvalido_Retorna400(t *testing.T) {
	app := buildApp(newStore(), "")

	resp := postJSON(t, app, "/api/products", `{"name":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestRegisterChange_Retorna201(t *testing.T) {
	s := newStore()
	app := buildApp(s, "")
	created := postJSON(t, app, "/api/products", `{"name":"Widget","sku":"WID-001","price":"1","warehouse_id":1,"initial_quantity":10}`)
	var product dto.CreateProductResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&product))
	created.Body.Close()

	resp := postJSON(t, app, "/api/inventory/changes", `{"product_id":`+jsonInt(product.ProductID)+`,"warehouse_id":1,"change_quantity":-3,"reason":"venta"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.InventoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(7), out.Quantity)
	assert.NotEmpty(t, out.TransactionID)
	require.Len(t, s.changes, 1)
	assert.Equal(t, int64(-3), s.changes[0].ChangeQuantity)
}

func TestRegisterChange_CantidadCero_Retorna400(t *testing.T) {
	app := buildApp(newStore(), "")

	resp := postJSON(t, app, "/api/inventory/changes", `{"product_id":1,"warehouse_id":1,"change_quantity":0}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLowStockAlerts_Retorna200(t *testing.T) {
	s := newStore()
	s.rows = []repository.StockSupplierRow{lowStockRow()}
	s.changes = []entity.InventoryChange{
		{ProductID: 100, WarehouseID: 1, ChangeQuantity: -60, ChangeDate: testNow.Add(-48 * time.Hour)},
	}
	app := buildApp(s, "")

	resp := get(t, app, "/api/companies/7/alerts/low-stock", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LowStockAlertsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 1, out.TotalAlerts)
	a := out.Alerts[0]
	assert.Equal(t, int64(100), a.ProductID)
	assert.Equal(t, "WID-001", a.SKU)
	assert.Equal(t, 20, a.Threshold)
	// 60 / 30 = 2 por día → 5 / 2 = 2 días
	assert.Equal(t, int64(2), a.DaysUntilStockout)
	assert.Equal(t, "ventas@acme.test", a.Supplier.ContactEmail)
}

func TestGetLowStockAlerts_SinCoincidencias_ListaVacia(t *testing.T) {
	app := buildApp(newStore(), "")

	resp := get(t, app, "/api/companies/7/alerts/low-stock", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"alerts":[],"total_alerts":0}`, string(body))
}

func TestGetLowStockAlerts_CompanyIDNoEntero_Retorna400(t *testing.T) {
	app := buildApp(newStore(), "")

	resp := get(t, app, "/api/companies/abc/alerts/low-stock", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLowStockAlerts_FallaAlmacenamiento_Retorna500(t *testing.T) {
	s := newStore()
	s.failReads = true
	app := buildApp(s, "")

	resp := get(t, app, "/api/companies/7/alerts/low-stock", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", decodeError(t, resp).Code)
}

func TestDownloadLowStockPDF(t *testing.T) {
	s := newStore()
	s.rows = []repository.StockSupplierRow{lowStockRow()}
	app := buildApp(s, "")

	resp := get(t, app, "/api/companies/7/alerts/low-stock/report.pdf", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "stock-bajo-7-20261019.pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestRouter_ConJWT_ExigeToken(t *testing.T) {
	app := buildApp(newStore(), testJWTSecret)

	resp := get(t, app, "/api/companies/7/alerts/low-stock", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = get(t, app, "/api/companies/7/alerts/low-stock", bearer(t, testCompanyID))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/api/companies/8/alerts/low-stock", bearer(t, testCompanyID))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
