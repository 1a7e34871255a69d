package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Armazem-api/internal/application/alerts"
	appanalytics "github.com/jhoicas/Armazem-api/internal/application/analytics"
	"github.com/jhoicas/Armazem-api/internal/application/auth"
	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/export"
	"github.com/jhoicas/Armazem-api/internal/application/movement"
	"github.com/jhoicas/Armazem-api/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	EquipmentUC *usecase.EquipmentUseCase
	VehicleUC   *usecase.VehicleUseCase
	MaterialUC  *usecase.MaterialUseCase
	LocationUC  *usecase.LocationUseCase
	SiteUC      *usecase.SiteUseCase
	UploadUC    *usecase.UploadUseCase
	Movements   *movement.Processor
	Alerts      *alerts.Service
	SummaryUC   *appanalytics.SummaryUseCase
	ReportUC    *export.ReportUseCase
	JWTSecret   string
}

// Router regista as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "Warehouse Management API"})
	})

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Uploads: carregar exige token; servir é público (usado em <img src>)
	uploadHandler := NewUploadHandler(deps.UploadUC)
	api.Post("/upload", requireAuth, uploadHandler.Upload)
	api.Get("/uploads/:filename", uploadHandler.Serve)

	// Coleções (protegido)
	NewResourceHandler[dto.EquipmentRequest, dto.EquipmentResponse](deps.EquipmentUC, "Equipamento eliminado").
		Register(api.Group("/equipamentos", requireAuth))
	NewResourceHandler[dto.VehicleRequest, dto.VehicleResponse](deps.VehicleUC, "Viatura eliminada").
		Register(api.Group("/viaturas", requireAuth))
	NewResourceHandler[dto.MaterialRequest, dto.MaterialResponse](deps.MaterialUC, "Material eliminado").
		Register(api.Group("/materiais", requireAuth))
	NewResourceHandler[dto.LocationRequest, dto.LocationResponse](deps.LocationUC, "Local eliminado").
		Register(api.Group("/locais", requireAuth))
	NewSiteHandler(deps.SiteUC).Register(api.Group("/obras", requireAuth))

	// Movimentos (protegido)
	NewMovementHandler(deps.Movements).Register(api.Group("/movimentos", requireAuth))

	// Alertas, resumo e exportação (protegido)
	alertHandler := NewAlertHandler(deps.Alerts)
	alertGroup := api.Group("/alerts", requireAuth)
	alertGroup.Get("/check", alertHandler.Check)
	alertGroup.Post("/send", alertHandler.Send)

	api.Get("/summary", requireAuth, NewSummaryHandler(deps.SummaryUC).GetSummary)

	exportHandler := NewExportHandler(deps.ReportUC)
	exportGroup := api.Group("/export", requireAuth)
	exportGroup.Get("/pdf", exportHandler.PDF)
	exportGroup.Get("/excel", exportHandler.Excel)
}
