package routes

import (
	"github.com/adamzur/lesson_tutor/handlers"
	"github.com/adamzur/lesson_tutor/middleware"
	"github.com/gofiber/fiber/v2"
)

func RatingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	ratings := api.Group("/ratings", middleware.Protected())
	ratings.Post("", middleware.StudentRequired(), handlers.PostRating)
	ratings.Put("/:id", middleware.StudentRequired(), handlers.UpdateRating)
}
