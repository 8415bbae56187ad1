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
	"github.com/jhoicas/Transporte-api/internal/application/auth"
	appbalance "github.com/jhoicas/Transporte-api/internal/application/balance"
	"github.com/jhoicas/Transporte-api/internal/application/transport"
	"github.com/jhoicas/Transporte-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/Transporte-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Transporte-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Transporte-api/internal/interfaces/http"
	"github.com/jhoicas/Transporte-api/pkg/config"
	"github.com/jhoicas/Transporte-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	releaseRepo := postgres.NewReleaseRepository(pool)
	recordRepo := postgres.NewTransportRecordRepository(pool)
	balanceRepo := postgres.NewFactoryBalanceRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	transportUC := transport.NewUseCase(releaseRepo, recordRepo)
	reportUC := appbalance.NewReportUseCase(releaseRepo, recordRepo, balanceRepo)

	// PDF: la misma tabla del reporte, A4 horizontal para imprimir
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	pdfUC := appbalance.NewPDFUseCase(reportUC, pdfGenerator)

	// Sesión de edición de saldos manuales. Única para todo el servidor:
	// solo puede haber un guardado en vuelo a la vez.
	notifier := notify.NewLogNotifier(log)
	editSession := appbalance.NewEditSession(balanceRepo, notifier)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los PDFs grandes tardan
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Transporte API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		TransportUC: transportUC,
		ReportUC:    reportUC,
		PDFUC:       pdfUC,
		EditSession: editSession,
		JWTSecret:   cfg.JWT.Secret,
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
