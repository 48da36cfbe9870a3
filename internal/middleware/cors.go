package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/samuraihq/samurai-backend/internal/config"
)

// CORS is deliberately permissive for this deployment; narrow it by
// setting CORS_ORIGINS. Fiber refuses credentials with a wildcard
// origin, so credentials are only enabled for explicit origins.
func CORS(cfg *config.Config) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
		AllowCredentials: cfg.CORSOrigins != "*",
	})
}
