package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Transporte-api/internal/application/auth"
	appbalance "github.com/jhoicas/Transporte-api/internal/application/balance"
	"github.com/jhoicas/Transporte-api/internal/application/transport"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	TransportUC *transport.UseCase
	ReportUC    *appbalance.ReportUseCase
	PDFUC       *appbalance.PDFUseCase
	EditSession *appbalance.EditSession
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Quién puede editar: admin y supervisor. Viewer solo consulta.
	editors := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)

	// Releases (إفراجات)
	releases := protected.Group("/releases")
	transportHandler := NewTransportHandler(deps.TransportUC)
	releases.Get("/", transportHandler.ListReleases)
	releases.Post("/", editors, transportHandler.CreateRelease)

	// Viajes
	records := protected.Group("/transport-records")
	records.Get("/", transportHandler.ListRecords)
	records.Post("/", editors, transportHandler.CreateRecord)
	records.Patch("/:id/status", editors, transportHandler.UpdateTripStatus)

	// Reporte de saldos + edición de saldos manuales
	balances := protected.Group("/balances")
	balanceHandler := NewBalanceHandler(deps.ReportUC, deps.PDFUC, deps.EditSession)
	balances.Get("/report", balanceHandler.Report)
	balances.Get("/report/pdf", balanceHandler.ReportPDF)
	balances.Put("/", editors, balanceHandler.UpsertBalance)
}
