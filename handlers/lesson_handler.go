package handlers

import (
	"strconv"

	"github.com/adamzur/lesson_tutor/database"
	"github.com/adamzur/lesson_tutor/models"
	"github.com/adamzur/lesson_tutor/notifications"
	"github.com/adamzur/lesson_tutor/services"
	"github.com/adamzur/lesson_tutor/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ListLessonRequests(c *fiber.Ctx) error {
	userID := currentUserID(c)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))

	lessons, err := services.ListLessonRequests(userID, services.LessonRequestFilter{
		Status:   c.Query("status"),
		IDSearch: c.Query("id"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(lessons)
}

func GetLessonRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson request id"})
	}

	lesson, svcErr := services.GetLessonRequest(lessonID, userID)
	if svcErr != nil {
		return serviceError(c, svcErr)
	}

	return c.JSON(fiber.Map{"lesson_request": lesson})
}

func GetLessonRequestStatuses(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": []string{models.StatusPending, models.StatusAccepted, models.StatusRejected},
	})
}

type DecideLessonRequestBody struct {
	NewStatus string `json:"new_status" validate:"required,oneof=accepted rejected"`
	Message   string `json:"message"`
}

func DecideLessonRequest(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson request id"})
	}

	var req DecideLessonRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lesson, conversation, svcErr := services.DecideLessonRequest(lessonID, actorID, req.NewStatus, req.Message)
	if svcErr != nil {
		return serviceError(c, svcErr)
	}

	notifyLessonDecision(lesson, actorID)

	response := fiber.Map{"lesson_request": lesson}
	if conversation != nil {
		response["conversation"] = conversation
	}
	return c.JSON(response)
}

func notifyLessonDecision(lesson *models.LessonRequest, actorID uuid.UUID) {
	counterparty := lesson.Student
	if actorID == lesson.StudentID {
		counterparty = lesson.Teacher
	}
	if counterparty.Email == "" {
		return
	}

	subject := "Your Lesson Request Was Accepted"
	body := "<h1>Lesson Accepted</h1><p>Your lesson on " + utils.HumanDate(lesson.Date) + " has been accepted.</p>"
	if lesson.Status == models.StatusRejected {
		subject = "Your Lesson Request Was Rejected"
		body = "<h1>Lesson Rejected</h1><p>Your lesson on " + utils.HumanDate(lesson.Date) + " has been rejected. Check the conversation for details.</p>"
	}
	go notifications.SendEmail(counterparty.Name, counterparty.Email, subject, body)
}

type SetLessonLinkBody struct {
	Link string `json:"link" validate:"required,url"`
}

func SetLessonLink(c *fiber.Ctx) error {
	actorID := currentUserID(c)
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson request id"})
	}

	var req SetLessonLinkBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lesson, svcErr := services.SetLessonLink(lessonID, actorID, req.Link)
	if svcErr != nil {
		return serviceError(c, svcErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"lesson_request": lesson})
}

func GetIncomingLessons(c *fiber.Ctx) error {
	userID := currentUserID(c)

	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil || week < 1 || week > 53 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid week"})
	}

	weekStart, weekEnd := utils.ISOWeekRange(year, week)
	grouped, svcErr := services.ListWeekLessons(userID, year, week, weekStart, weekEnd)
	if svcErr != nil {
		return serviceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"year": year,
		"week": week,
		"days": grouped,
	})
}

func GetLessonsHistory(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))

	lessons, err := services.ListLessonsHistory(&user, services.HistoryFilter{
		IDSearch: c.Query("id"),
		Name:     c.Query("name"),
		Subject:  c.Query("subject"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(lessons)
}

func GetLessonsHistoryEnums(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"subjects": models.Subjects})
}
