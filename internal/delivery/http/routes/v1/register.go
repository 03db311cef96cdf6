package v1

import (
	"log"

	"opocentral/internal/config"
	"opocentral/internal/database"
	"opocentral/internal/delivery/http/handler"
	"opocentral/internal/delivery/http/middleware"
	"opocentral/internal/infrastructure/persistence/postgres"
	"opocentral/internal/pkg/jwt"
	"opocentral/internal/usecase"
	useruc "opocentral/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.SearchCache, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(db)
	oppRepo := postgres.NewOpportunityRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := useruc.NewService(userRepo)
	listUC := usecase.NewOpportunityListUsecase(oppRepo, cache, cfg.Redis.TTL, logger)
	createUC := usecase.NewOpportunityCreateUsecase(oppRepo, userRepo, cache)
	trackerUC := usecase.NewTrackerUsecase(oppRepo, userRepo)
	recommendUC := usecase.NewRecommendationUsecase(oppRepo, userRepo)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	oppHandler := handler.NewOpportunityHandler(listUC, createUC, trackerUC, recommendUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	oppGroup := r.Group("/opportunities")
	oppHandler.RegisterPublicRoutes(oppGroup)

	protected := r.Group("", authMw.Middleware())

	profileGroup := protected.Group("/profile")
	userHandler.RegisterRoutes(profileGroup)

	oppProtected := protected.Group("/opportunities")
	oppHandler.RegisterProtectedRoutes(oppProtected)
}
