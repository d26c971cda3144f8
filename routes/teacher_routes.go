package routes

import (
	"github.com/adamzur/lesson_tutor/handlers"
	"github.com/adamzur/lesson_tutor/middleware"
	"github.com/gofiber/fiber/v2"
)

func TeacherRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/teachers", handlers.ListTeachers)

	teachers := api.Group("/teachers", middleware.Protected())
	teachers.Get("/:teacherId", handlers.GetTeacherData)
	teachers.Get("/:teacherId/busy-hours/:date", handlers.GetTeacherBusyHours)
	teachers.Get("/:teacherId/ratings", handlers.GetTeacherRatings)
	teachers.Post("/:teacherId/lesson-requests", middleware.StudentRequired(), handlers.SendLessonRequest)
}
