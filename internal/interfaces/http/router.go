package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mueblesandina/erp-api/internal/application/billing"
	"github.com/mueblesandina/erp-api/internal/application/usecase"
	"github.com/mueblesandina/erp-api/internal/infrastructure/cache"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	SalesUC       *usecase.SalesUseCase
	AccountingUC  *usecase.AccountingUseCase
	ProcurementUC *usecase.ProcurementUseCase
	UserUC        *usecase.UserUseCase
	InvoicePDF    *billing.PDFUseCase
	Cache         *cache.Cache
	SessionSecret string
	// DebugRoutes monta /api/debug fuera de producción.
	DebugRoutes bool
}

// Router registra las rutas de página y de API.
func Router(app *fiber.App, deps RouterDeps) {
	guard := &Guard{Secret: deps.SessionSecret}

	// Páginas: la decisión de acceso vive aquí; el contenido lo pinta el front.
	pages := NewPagesHandler(guard)
	app.Get("/", pages.Landing)
	app.Get("/login", pages.Login)
	app.Post("/logout", pages.Logout)
	app.Get("/app", guard.RequireSession, pages.App)
	app.Get("/app/accounting", guard.RequirePermission("accounting.view"), pages.App)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Accounting
	accountingHandler := NewAccountingHandler(deps.AccountingUC)
	api.Get("/accounting/opening-balances/account-mapping", accountingHandler.AccountMapping)
	api.Post("/migrate/owner-drawings", accountingHandler.MigrateOwnerDrawings)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	api.Post("/products/createCustom", productHandler.CreateCustom)
	api.Put("/products/:id", productHandler.Update)
	api.Delete("/products/:id", productHandler.Delete)

	// Sales
	salesHandler := NewSalesHandler(deps.SalesUC)
	api.Post("/sales/custom-orders/mark-po-created", salesHandler.MarkPOCreated)
	api.Put("/sales/quotes/update", salesHandler.UpdateQuote)
	api.Put("/sales/orders/:id/sales-rep", salesHandler.UpdateOrderSalesRep)
	api.Put("/sales/quotes/:id/sales-rep", salesHandler.UpdateQuoteSalesRep)

	// Invoices
	invoiceHandler := NewInvoiceHandler(deps.InvoicePDF)
	api.Get("/sales/invoices/:id/pdf", invoiceHandler.PDF)

	// Procurement
	procurementHandler := NewProcurementHandler(deps.ProcurementUC)
	api.Post("/procurement/purchase_order_images", procurementHandler.CreateImages)

	// Sessions / SKU
	api.Get("/sessions/detect-ip", NewSessionHandler().DetectIP)
	api.Post("/sku", NewSKUHandler().Generate)

	// Performance
	perfHandler := NewPerformanceHandler(deps.Cache)
	api.Get("/performance/cache-stats", perfHandler.CacheStats)
	api.Get("/performance/metrics", perfHandler.Metrics())

	// Debug (solo fuera de producción)
	if deps.DebugRoutes {
		debugHandler := NewDebugHandler(deps.UserUC)
		api.Get("/debug/users", debugHandler.Users)
	}
}
