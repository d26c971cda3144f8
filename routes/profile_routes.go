package routes

import (
	"github.com/adamzur/lesson_tutor/handlers"
	"github.com/adamzur/lesson_tutor/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
	profile.Get("/lessons-settings", handlers.GetLessonsSettings)
	profile.Put("/lessons-settings", middleware.TeacherRequired(), handlers.UpdateLessonsSettings)
	profile.Get("/available-hours", handlers.GetAvailableHours)
	profile.Put("/available-hours", middleware.TeacherRequired(), handlers.UpdateAvailableHours)
	profile.Get("/estimated-income", middleware.TeacherRequired(), handlers.GetEstimatedIncome)
}
