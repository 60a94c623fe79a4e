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

	appanalytics "github.com/jhoicas/estudio-stock/internal/application/analytics"
	"github.com/jhoicas/estudio-stock/internal/application/orders"
	"github.com/jhoicas/estudio-stock/internal/application/usecase"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
	"github.com/jhoicas/estudio-stock/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/estudio-stock/internal/infrastructure/pdf"
	"github.com/jhoicas/estudio-stock/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/estudio-stock/internal/interfaces/http"
	"github.com/jhoicas/estudio-stock/pkg/config"
	"github.com/jhoicas/estudio-stock/pkg/logger"
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
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén: memoria (desarrollo, con seed de demo) o PostgreSQL.
	var (
		productRepo   repository.ProductRepository
		orderRepo     repository.OrderRepository
		analyticsRepo repository.AnalyticsRepository
		txRunner      orders.TxRunner
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
		orderRepo = postgres.NewOrderRepository(pool)
		analyticsRepo = postgres.NewAnalyticsRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	default:
		store := memory.NewStore()
		store.SeedDemo()
		productRepo = memory.NewProductRepository(store)
		orderRepo = memory.NewOrderRepository(store)
		analyticsRepo = memory.NewAnalyticsRepository(store)
		txRunner = memory.NewTxRunner(store)
	}

	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := orders.NewUseCase(txRunner, orderRepo)
	receiptUC := orders.NewReceiptUseCase(orderRepo, infrapdf.NewMarotoReceiptGenerator(cfg.App.Name))
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estudio Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		OrderUC:     orderUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
