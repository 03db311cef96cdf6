package routes

import (
	"log"

	"opocentral/internal/config"
	"opocentral/internal/database"
	"opocentral/internal/delivery/http/handler"
	"opocentral/internal/usecase"
	"opocentral/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  usecase.SearchCache
	hub    *ws.Hub
	logger *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.SearchCache, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		cache:  cache,
		hub:    hub,
		logger: logger,
		health: handler.NewHealthHandler(),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.cache, r.logger)
}

func (r *Registry) registerWS(app *fiber.App) {
	wsHandler := ws.NewHandler(r.hub, r.logger)
	app.Get("/ws/notifications", wsHandler.HandleNotificationsWS)
}
