package routes

import (
	"github.com/adamzur/lesson_tutor/handlers"
	"github.com/adamzur/lesson_tutor/middleware"
	"github.com/gofiber/fiber/v2"
)

func LessonRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	lessons := api.Group("/lesson-requests", middleware.Protected())
	lessons.Get("", handlers.ListLessonRequests)
	lessons.Get("/statuses", handlers.GetLessonRequestStatuses)
	lessons.Get("/incoming/:year/:week", handlers.GetIncomingLessons)
	lessons.Get("/history", handlers.GetLessonsHistory)
	lessons.Get("/history/enums", handlers.GetLessonsHistoryEnums)
	lessons.Get("/:id", handlers.GetLessonRequest)
	lessons.Post("/:id", handlers.DecideLessonRequest)
	lessons.Patch("/:id/link", middleware.TeacherRequired(), handlers.SetLessonLink)
}
