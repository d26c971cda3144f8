package routes

import (
	"github.com/adamzur/lesson_tutor/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/locales/:lang", handlers.GetLocale)
}
