package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Metas-api/internal/application/auth"
	"github.com/jhoicas/Metas-api/internal/application/targets"
	"github.com/jhoicas/Metas-api/internal/application/usecase"
	"github.com/jhoicas/Metas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	BranchUC     *usecase.BranchUseCase
	PreviewUC    *targets.PreviewUseCase
	SubmitUC     *targets.SubmitUseCase
	QueryUC      *targets.QueryUseCase
	ProgressUC   *targets.ProgressUseCase
	ExportUC     *targets.ExportUseCase
	SuggestionUC *targets.SuggestionUseCase
	JWTSecret    string
	ServiceName  string
	HealthCheck  func(ctx context.Context) error // opcional: ping a la DB
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	managers := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)

	protected.Get("/companies/me", NewCompanyHandler(deps.CompanyUC).Me)

	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Post("/", RequireRole(entity.RoleAdmin), branchHandler.Create)
	branches.Get("/:id", branchHandler.GetByID)

	// Metas mensuales: cualquier rol consulta; solo admin/supervisor guarda.
	targetHandler := NewTargetHandler(deps.PreviewUC, deps.SubmitUC, deps.QueryUC, deps.ProgressUC, deps.ExportUC, deps.SuggestionUC)
	mt := protected.Group("/monthly-targets")
	mt.Post("/preview", targetHandler.Preview)
	mt.Post("/", managers, targetHandler.Submit)
	mt.Get("/", targetHandler.List)
	mt.Get("/:id", targetHandler.GetByID)
	mt.Get("/:id/progress", targetHandler.Progress)
	mt.Get("/:id/export", targetHandler.Export)

	protected.Get("/special-days/suggestions", targetHandler.Suggestions)
}

func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.HealthCheck != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := deps.HealthCheck(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": deps.ServiceName, "error": err.Error()})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	}
}
