package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Armazem-api/internal/application/alerts"
	appanalytics "github.com/jhoicas/Armazem-api/internal/application/analytics"
	"github.com/jhoicas/Armazem-api/internal/application/auth"
	"github.com/jhoicas/Armazem-api/internal/application/export"
	"github.com/jhoicas/Armazem-api/internal/application/movement"
	"github.com/jhoicas/Armazem-api/internal/application/ports"
	"github.com/jhoicas/Armazem-api/internal/application/usecase"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
	"github.com/jhoicas/Armazem-api/internal/infrastructure/memory"
	"github.com/jhoicas/Armazem-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/Armazem-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Armazem-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Armazem-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/Armazem-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Armazem-api/internal/interfaces/http"
	"github.com/jhoicas/Armazem-api/pkg/config"
	"github.com/jhoicas/Armazem-api/pkg/logger"
)

// repos agrupa os portos de persistência do backend escolhido.
type repos struct {
	users     repository.UserRepository
	equipment repository.EquipmentRepository
	vehicles  repository.VehicleRepository
	materials repository.MaterialRepository
	locations repository.LocationRepository
	sites     repository.SiteRepository
	assets    repository.AssetMovementRepository
	stock     repository.StockMovementRepository
	usage     repository.VehicleUsageRepository
	summary   repository.SummaryRepository
	tx        repository.SiteTxRunner

	movementTx repository.MovementTxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	// quantidades e stocks saem como números JSON
	decimal.MarshalJSONWithoutQuotes = true

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("a iniciar aplicação")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET obrigatório")
	}

	ctx := context.Background()

	var r repos
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		s := memory.NewStore()
		r = repos{
			users: s.Users(), equipment: s.Equipment(), vehicles: s.Vehicles(), materials: s.Materials(),
			locations: s.Locations(), sites: s.Sites(),
			assets: s.AssetMovements(), stock: s.StockMovements(), usage: s.VehicleUsages(),
			summary: s.Summary(), tx: s, movementTx: s,
		}
		log.Warn().Msg("armazenamento em memória: os dados perdem-se ao reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("ligação ao PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			users:     postgres.NewUserRepository(pool),
			equipment: postgres.NewEquipmentRepository(pool),
			vehicles:  postgres.NewVehicleRepository(pool),
			materials: postgres.NewMaterialRepository(pool),
			locations: postgres.NewLocationRepository(pool),
			sites:     postgres.NewSiteRepository(pool),
			assets:    postgres.NewAssetMovementRepository(pool),
			stock:     postgres.NewStockMovementRepository(pool),
			usage:     postgres.NewVehicleUsageRepository(pool),
			summary:   postgres.NewSummaryRepository(pool),
		}
		txRunner := postgres.NewTxRunner(pool)
		r.tx = txRunner
		r.movementTx = txRunner
	}

	photos, err := newPhotoStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("armazenamento de fotografias")
	}

	alertSvc := alerts.NewService(r.vehicles, r.materials, newDispatcher(cfg, log), cfg.Alerts.DaysBefore, log.Component("alerts"))
	summaryUC := appanalytics.NewSummaryUseCase(r.summary, alertSvc)
	reportUC := export.NewReportUseCase(summaryUC, r.equipment, r.vehicles, r.materials, map[string]ports.ReportRenderer{
		export.FormatPDF:   infrapdf.NewMarotoReportRenderer("Relatório de Inventário"),
		export.FormatExcel: spreadsheet.NewExcelReportRenderer(),
	})
	processor := movement.NewProcessor(movement.Repos{
		Assets: r.assets,
		Stock:  r.stock,
		Usage:  r.usage,
		Tx:     r.movementTx,
	}, log.Component("movimentos"))

	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Swagger UI em /docs se o ficheiro existir
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Armazem API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EquipmentUC: usecase.NewEquipmentUseCase(r.equipment),
		VehicleUC:   usecase.NewVehicleUseCase(r.vehicles),
		MaterialUC:  usecase.NewMaterialUseCase(r.materials),
		LocationUC:  usecase.NewLocationUseCase(r.locations, r.sites),
		SiteUC:      usecase.NewSiteUseCase(r.sites, r.locations, r.equipment, r.vehicles, r.materials, r.tx, log.Component("obras")),
		UploadUC:    usecase.NewUploadUseCase(photos),
		Movements:   processor,
		Alerts:      alertSvc,
		SummaryUC:   summaryUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP terminado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de paragem recebido, a fechar o servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("paragem do servidor")
	}

	log.Info().Msg("aplicação parada")
}

// newDispatcher escolhe o transporte dos alertas. Sem destinatário ou credenciais = noop.
func newDispatcher(cfg *config.Config, log *logger.Logger) ports.AlertDispatcher {
	if cfg.Alerts.Recipient == "" {
		return notify.NewNoopDispatcher(log)
	}
	switch cfg.Email.Provider {
	case config.EmailProviderSMTP:
		if cfg.Email.SMTPHost != "" {
			return notify.NewSMTPDispatcher(notify.SMTPConfig{
				Host:     cfg.Email.SMTPHost,
				Port:     cfg.Email.SMTPPort,
				User:     cfg.Email.SMTPUser,
				Password: cfg.Email.SMTPPassword,
			}, cfg.Email.Sender, cfg.Alerts.Recipient)
		}
	case config.EmailProviderResend:
		if cfg.Email.ResendAPIKey != "" {
			return notify.NewResendDispatcher(cfg.Email.ResendAPIKey, cfg.Email.Sender, cfg.Alerts.Recipient)
		}
	}
	return notify.NewNoopDispatcher(log)
}

// newPhotoStore disco local por omissão; MinIO quando UPLOAD_DRIVER=minio.
func newPhotoStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (ports.PhotoStore, error) {
	if cfg.Uploads.Driver == config.UploadDriverMinIO {
		store, err := storage.NewMinIOPhotoStore(ctx, storage.MinIOConfig{
			Endpoint:  cfg.Uploads.MinIOEndpoint,
			AccessKey: cfg.Uploads.MinIOAccessKey,
			SecretKey: cfg.Uploads.MinIOSecretKey,
			Bucket:    cfg.Uploads.MinIOBucket,
			UseSSL:    cfg.Uploads.MinIOUseSSL,
		})
		if err != nil {
			return nil, err
		}
		log.Info().Str("bucket", cfg.Uploads.MinIOBucket).Msg("fotografias em MinIO")
		return store, nil
	}
	store, err := storage.NewLocalPhotoStore(cfg.Uploads.Dir, log)
	if err != nil {
		return nil, err
	}
	return store, nil
}
