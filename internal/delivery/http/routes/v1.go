package routes

import (
	"log"

	"opocentral/internal/config"
	"opocentral/internal/database"
	v1 "opocentral/internal/delivery/http/routes/v1"
	"opocentral/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cache usecase.SearchCache, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cache, logger)
}
