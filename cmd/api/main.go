package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mueblesandina/erp-api/internal/application/billing"
	"github.com/mueblesandina/erp-api/internal/application/usecase"
	"github.com/mueblesandina/erp-api/internal/infrastructure/cache"
	infrapdf "github.com/mueblesandina/erp-api/internal/infrastructure/pdf"
	"github.com/mueblesandina/erp-api/internal/infrastructure/postgres"
	httpRouter "github.com/mueblesandina/erp-api/internal/interfaces/http"
	"github.com/mueblesandina/erp-api/pkg/config"
	"github.com/mueblesandina/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración incompleta")
	}

	// El handle hacia la base alojada es único y perezoso: aquí solo se valida
	// la configuración; el pool se construye en la primera operación real.
	provider, err := postgres.NewHandleProvider(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar handle de base de datos")
	}
	defer provider.Close()
	db := postgres.NewLazyQuerier(provider)

	productRepo := postgres.NewProductRepository(db)
	quoteRepo := postgres.NewQuoteRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	invoiceRepo := postgres.NewInvoiceRepository(db)
	ledgerRepo := postgres.NewLedgerRepository(db)
	accountingRepo := postgres.NewAccountingRepository(db)
	procurementRepo := postgres.NewProcurementRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Cache Redis (nil = deshabilitado; todos los usos son passthrough).
	redisCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	productUC := usecase.NewProductUseCase(productRepo)
	salesUC := usecase.NewSalesUseCase(quoteRepo, orderRepo)
	accountingUC := usecase.NewAccountingUseCase(accountingRepo, ledgerRepo, redisCache)
	procurementUC := usecase.NewProcurementUseCase(procurementRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Muebles Andina ERP API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		SalesUC:       salesUC,
		AccountingUC:  accountingUC,
		ProcurementUC: procurementUC,
		UserUC:        userUC,
		InvoicePDF:    invoicePDFUC,
		Cache:         redisCache,
		SessionSecret: cfg.Session.Secret,
		DebugRoutes:   cfg.App.Env != "production",
	})

	// Listener de cambios: invalida el cache de mapeos contables cuando la DB
	// notifica modificaciones, con la tasa topada por configuración.
	listenerCtx, stopListener := context.WithCancel(context.Background())
	defer stopListener()
	listener := postgres.NewChangeListener(provider, cfg.DB.RealtimeEventsPerSecond, log)
	listener.OnChange(func(payload string) {
		if payload == "account_mappings:update" || payload == "account_mappings:insert" ||
			payload == "account_mappings:delete" {
			accountingUC.InvalidateAccountMappings(listenerCtx)
		}
	})
	go func() {
		if err := listener.Run(listenerCtx); err != nil {
			log.Error().Err(err).Msg("listener de cambios finalizado")
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopListener()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
