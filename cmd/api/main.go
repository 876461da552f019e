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

	"github.com/jhoicas/Metas-api/internal/application/auth"
	"github.com/jhoicas/Metas-api/internal/application/targets"
	"github.com/jhoicas/Metas-api/internal/application/usecase"
	infracache "github.com/jhoicas/Metas-api/internal/infrastructure/cache"
	infraexcel "github.com/jhoicas/Metas-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Metas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Metas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Metas-api/internal/interfaces/http"
	"github.com/jhoicas/Metas-api/pkg/config"
	"github.com/jhoicas/Metas-api/pkg/logger"
	"github.com/jhoicas/Metas-api/pkg/numfmt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Service: cfg.App.Name,
		Level:   cfg.App.LogLevel,
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

	progressCache, closeCache, err := infracache.NewProgressCache(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Error().Err(err).Msg("cerrar caché")
		}
	}()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	targetRepo := postgres.NewMonthlyTargetRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	holidayRepo := postgres.NewHolidayRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cronograma descargable: PDF con formato de moneda local y Excel con fórmulas.
	renderers := map[string]targets.ScheduleRenderer{
		"pdf":  infrapdf.NewMarotoScheduleRenderer(numfmt.New(cfg.Report.Locale, cfg.Report.Currency)),
		"xlsx": infraexcel.NewScheduleRenderer(),
	}

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Metas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CompanyUC:    companyUC,
		BranchUC:     branchUC,
		PreviewUC:    targets.NewPreviewUseCase(),
		SubmitUC:     targets.NewSubmitUseCase(txRunner, branchRepo, progressCache),
		QueryUC:      targets.NewQueryUseCase(targetRepo),
		ProgressUC:   targets.NewProgressUseCase(targetRepo, salesRepo, progressCache),
		ExportUC:     targets.NewExportUseCase(targetRepo, branchRepo, renderers),
		SuggestionUC: targets.NewSuggestionUseCase(holidayRepo, cfg.Targets.HolidayDefaultMultiplier),
		JWTSecret:    cfg.JWT.Secret,
		ServiceName:  cfg.App.Name,
		HealthCheck:  pool.Ping,
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
