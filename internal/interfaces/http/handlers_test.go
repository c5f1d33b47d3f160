package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mueblesandina/erp-api/internal/application/billing"
	"github.com/mueblesandina/erp-api/internal/application/usecase"
	"github.com/mueblesandina/erp-api/internal/domain/entity"
	"github.com/mueblesandina/erp-api/internal/domain/repository"
	apphttp "github.com/mueblesandina/erp-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en el puerto de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	updateCalls int
	updateFound bool
	deleteFound bool
	created     *entity.Product
}

func (s *stubProductRepo) Create(_ context.Context, p *entity.Product) error {
	s.created = p
	return nil
}
func (s *stubProductRepo) GetByID(context.Context, string) (*entity.Product, error)  { return nil, nil }
func (s *stubProductRepo) GetBySKU(context.Context, string) (*entity.Product, error) { return nil, nil }
func (s *stubProductRepo) Update(_ context.Context, _ string, _ repository.ProductUpdate) (bool, error) {
	s.updateCalls++
	return s.updateFound, nil
}
func (s *stubProductRepo) Delete(context.Context, string) (bool, error) {
	return s.deleteFound, nil
}

type stubOrderRepo struct {
	markCalls int
	markFound bool
}

func (s *stubOrderRepo) GetByID(context.Context, string) (*entity.Order, error) { return nil, nil }
func (s *stubOrderRepo) MarkPOCreated(context.Context, string) (bool, error) {
	s.markCalls++
	return s.markFound, nil
}

type stubQuoteRepo struct {
	updated *entity.Quote
}

func (s *stubQuoteRepo) GetByID(context.Context, string) (*entity.Quote, error) { return nil, nil }
func (s *stubQuoteRepo) Update(_ context.Context, _ string, _ repository.QuoteUpdate) (*entity.Quote, error) {
	return s.updated, nil
}

type stubAccountingRepo struct {
	listCalls int
	mappings  []entity.AccountMapping
}

func (s *stubAccountingRepo) ListAccountMappings(context.Context, string) ([]entity.AccountMapping, error) {
	s.listCalls++
	return s.mappings, nil
}

type stubLedgerRepo struct {
	migrated int64
}

func (s *stubLedgerRepo) ReclassifyOwnerDrawings(context.Context) (int64, error) {
	return s.migrated, nil
}

type stubProcurementRepo struct {
	createCalls int
}

func (s *stubProcurementRepo) CreateImages(context.Context, []*entity.PurchaseOrderImage) error {
	s.createCalls++
	return nil
}

type stubUserRepo struct{ users []*entity.User }

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUserRepo) List(context.Context) ([]*entity.User, error) { return s.users, nil }

type stubInvoiceRepo struct{}

func (s *stubInvoiceRepo) GetByID(context.Context, string) (*entity.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceRepo) ListItems(context.Context, string) ([]entity.InvoiceItem, error) {
	return nil, nil
}

type stubPDFGenerator struct{}

func (s *stubPDFGenerator) GenerateInvoicePDF(context.Context, *entity.Invoice, []entity.InvoiceItem) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test con stubs
// ──────────────────────────────────────────────────────────────────────────────

type testDeps struct {
	products    *stubProductRepo
	orders      *stubOrderRepo
	quotes      *stubQuoteRepo
	accounting  *stubAccountingRepo
	ledger      *stubLedgerRepo
	procurement *stubProcurementRepo
	users       *stubUserRepo
}

func buildAPIApp(deps *testDeps) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:     usecase.NewProductUseCase(deps.products),
		SalesUC:       usecase.NewSalesUseCase(deps.quotes, deps.orders),
		AccountingUC:  usecase.NewAccountingUseCase(deps.accounting, deps.ledger, nil),
		ProcurementUC: usecase.NewProcurementUseCase(deps.procurement),
		UserUC:        usecase.NewUserUseCase(deps.users),
		InvoicePDF:    billing.NewPDFUseCase(&stubInvoiceRepo{}, &stubPDFGenerator{}),
		Cache:         nil,
		SessionSecret: testSecret,
		DebugRoutes:   true,
	})
	return app
}

func newTestDeps() *testDeps {
	return &testDeps{
		products:    &stubProductRepo{updateFound: true, deleteFound: true},
		orders:      &stubOrderRepo{markFound: true},
		quotes:      &stubQuoteRepo{},
		accounting:  &stubAccountingRepo{},
		ledger:      &stubLedgerRepo{},
		procurement: &stubProcurementRepo{},
		users:       &stubUserRepo{},
	}
}

func jsonRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

// PUT /api/products/:id con un solo campo responde {"success":true}.
func TestUpdateProduct_ActualizacionParcial_Success(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPut, "/api/products/123", map[string]any{"price": 499})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 1, deps.products.updateCalls, "exactamente una operación de almacenamiento")
}

func TestUpdateProduct_SinCampos_Responde400(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPut, "/api/products/123", map[string]any{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, deps.products.updateCalls, "sin campos no debe tocarse el almacenamiento")
}

func TestUpdateProduct_NoExiste_Responde404(t *testing.T) {
	deps := newTestDeps()
	deps.products.updateFound = false
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPut, "/api/products/999", map[string]any{"name": "Mesa Roble"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteProduct_Success(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodDelete, "/api/products/123", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
}

func TestCreateCustomProduct_GeneraSKU(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPost, "/api/products/createCustom", map[string]any{
		"name":     "Sofá Línea Nórdica",
		"category": "sofas",
		"price":    1200,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["sku"], "el producto a medida debe salir con SKU generado")
	require.NotNil(t, deps.products.created)
	assert.True(t, deps.products.created.IsCustom)
}

func TestCreateCustomProduct_SinNombre_Responde400(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPost, "/api/products/createCustom", map[string]any{"category": "sofas"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sales
// ──────────────────────────────────────────────────────────────────────────────

// Body {} sin orderId: 400 "Missing orderId" y cero llamadas al almacenamiento.
func TestMarkPOCreated_SinOrderID_Responde400(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPost, "/api/sales/custom-orders/mark-po-created", map[string]any{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Missing orderId", body["error"])
	assert.Equal(t, 0, deps.orders.markCalls, "la validación corta antes del almacenamiento")
}

func TestMarkPOCreated_Success(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPost, "/api/sales/custom-orders/mark-po-created",
		map[string]any{"orderId": "ord-7"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, deps.orders.markCalls)
}

// Placeholder conocido: 501 con el identificador recibido.
func TestUpdateOrderSalesRep_Responde501ConOrderID(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPut, "/api/sales/orders/abc/sales-rep", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "abc", body["orderId"], "el 501 debe devolver el identificador recibido")
}

func TestUpdateQuoteSalesRep_Responde501ConQuoteID(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPut, "/api/sales/quotes/q-9/sales-rep", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "q-9", body["quoteId"])
}

func TestUpdateQuote_SinID_Responde400(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPut, "/api/sales/quotes/update",
		map[string]any{"status": "sent"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateQuote_DevuelveRegistroActualizado(t *testing.T) {
	deps := newTestDeps()
	deps.quotes.updated = &entity.Quote{ID: "q-1", QuoteNumber: "COT-0001", Status: entity.QuoteStatusSent}
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPut, "/api/sales/quotes/update",
		map[string]any{"id": "q-1", "status": "sent"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "q-1", body["id"])
	assert.Equal(t, "sent", body["status"])
}

func TestUpdateQuote_NoExiste_Responde404(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps) // stub devuelve nil

	resp := jsonRequest(t, app, http.MethodPut, "/api/sales/quotes/update",
		map[string]any{"id": "nope"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// SKU
// ──────────────────────────────────────────────────────────────────────────────

func TestSKU_ConNombre_GeneraSKU(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPost, "/api/sku", map[string]any{"productName": "Sofa"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	sku, _ := body["sku"].(string)
	assert.NotEmpty(t, sku)
	assert.Contains(t, sku, "SOF")
}

func TestSKU_SinNombre_Responde400(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPost, "/api/sku", map[string]any{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["error"], "el 400 debe explicar qué falta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Accounting
// ──────────────────────────────────────────────────────────────────────────────

func TestAccountMapping_SinBalanceType_Responde400(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodGet, "/api/accounting/opening-balances/account-mapping", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, deps.accounting.listCalls)
}

func TestAccountMapping_TipoInvalido_Responde400(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodGet,
		"/api/accounting/opening-balances/account-mapping?balance_type=banana", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAccountMapping_TipoValido_DevuelveLista(t *testing.T) {
	deps := newTestDeps()
	deps.accounting.mappings = []entity.AccountMapping{
		{ID: "m-1", AccountCode: "1105", AccountName: "Caja", BalanceType: "asset"},
	}
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodGet,
		"/api/accounting/opening-balances/account-mapping?balance_type=asset", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "1105", list[0]["accountCode"])
}

func TestMigrateOwnerDrawings_DevuelveConteo(t *testing.T) {
	deps := newTestDeps()
	deps.ledger.migrated = 17
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPost, "/api/migrate/owner-drawings", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(17), body["migrated"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Procurement
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePOImages_SinPurchaseOrderID_Responde400(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPost, "/api/procurement/purchase_order_images",
		map[string]any{"images": []map[string]any{{"url": "https://cdn.test/a.jpg"}}})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, deps.procurement.createCalls)
}

func TestCreatePOImages_Success(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodPost, "/api/procurement/purchase_order_images",
		map[string]any{
			"purchaseOrderId": "po-1",
			"images": []map[string]any{
				{"url": "https://cdn.test/a.jpg", "filename": "a.jpg"},
				{"url": "https://cdn.test/b.jpg", "filename": "b.jpg"},
			},
		})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, deps.procurement.createCalls, "los adjuntos van en una sola inserción")

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Performance / sessions / debug / health
// ──────────────────────────────────────────────────────────────────────────────

// Con cache deshabilitado (nil) el endpoint responde enabled:false, nunca falla.
func TestCacheStats_CacheDeshabilitado(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodGet, "/api/performance/cache-stats", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["enabled"])
}

func TestDetectIP_DevuelveIP(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodGet, "/api/sessions/detect-ip", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["ip"])
}

func TestDebugUsers_SinHashDePassword(t *testing.T) {
	deps := newTestDeps()
	deps.users.users = []*entity.User{
		{ID: "u-1", Email: "admin@mueblesandina.test", Role: entity.RoleAdmin, PasswordHash: "secreto"},
	}
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodGet, "/api/debug/users", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.NotContains(t, list[0], "passwordHash", "el hash nunca sale en la respuesta")
}

func TestHealth(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodGet, "/health", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInvoicePDF_NoExiste_Responde404(t *testing.T) {
	deps := newTestDeps()
	app := buildAPIApp(deps)

	resp := jsonRequest(t, app, http.MethodGet, "/api/sales/invoices/f-404/pdf", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
