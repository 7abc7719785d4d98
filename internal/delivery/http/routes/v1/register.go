package v1

import (
	"log"

	"staffhub/internal/config"
	"staffhub/internal/database"
	"staffhub/internal/delivery/http/handler"
	"staffhub/internal/delivery/http/middleware"
	"staffhub/internal/domain/user"
	"staffhub/internal/infrastructure/persistence/postgres"
	"staffhub/internal/pkg/jwt"
	"staffhub/internal/repository"
	"staffhub/internal/usecase"
	"staffhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps is everything the v1 API needs beyond the router itself.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.EntityCache
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)
	adminOnly := middleware.RequireRole(user.RoleAdmin)

	userRepo := postgres.NewUserRepository(d.DB)
	skillRepo := repository.NewPostgresSkillRepository(d.DB)
	personnelRepo := repository.NewPostgresPersonnelRepository(d.DB)
	ledgerRepo := repository.NewPostgresPersonnelSkillRepository(d.DB)
	projectRepo := repository.NewPostgresProjectRepository(d.DB)
	requirementRepo := repository.NewPostgresProjectRequirementRepository(d.DB)
	analyticsRepo := repository.NewPostgresAnalyticsRepository(d.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	skillUC := usecase.NewSkillUsecase(skillRepo, d.Cache)
	personnelUC := usecase.NewPersonnelUsecase(personnelRepo, ledgerRepo, d.Cache)
	ledgerUC := usecase.NewPersonnelSkillUsecase(personnelRepo, skillRepo, ledgerRepo, d.Cache)
	projectUC := usecase.NewProjectUsecase(projectRepo, requirementRepo, skillRepo, d.Cache)
	matchingUC := usecase.NewMatchingUsecase(projectRepo, requirementRepo, personnelRepo, ledgerRepo, d.Logger)
	analyticsUC := usecase.NewAnalyticsUsecase(analyticsRepo, d.Cache)

	authHandler := handler.NewAuthHandler(authUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	personnelHandler := handler.NewPersonnelHandler(personnelUC, ledgerUC)
	projectHandler := handler.NewProjectHandler(projectUC, matchingUC)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))
	skillHandler.RegisterRoutes(protected, adminOnly)
	personnelHandler.RegisterRoutes(protected, adminOnly)
	projectHandler.RegisterRoutes(protected, adminOnly)
	analyticsHandler.RegisterRoutes(protected)

	if d.Hub != nil {
		wsHandler := ws.NewHandler(d.Hub, d.Logger)
		protected.Get("/ws", wsHandler.HandleDashboardWS)
	}
}
