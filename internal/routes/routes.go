package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samuraihq/samurai-backend/internal/handlers"
)

func Setup(
	app *fiber.App,
	healthHandler *handlers.HealthHandler,
	loginHandler *handlers.LoginHandler,
	reportHandler *handlers.ReportHandler,
) {
	app.Get("/health", healthHandler.Check)

	app.Get("/login", loginHandler.Login)
	app.Get("/auth/google", loginHandler.GoogleCallback)

	app.Post("/report", reportHandler.Report)
}
