package handlers

import (
	"strconv"

	"github.com/adamzur/lesson_tutor/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RatingRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	Rate      int    `json:"rate" validate:"required,min=1,max=5"`
	Text      string `json:"text"`
}

func PostRating(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	teacherID, _ := uuid.Parse(req.TeacherID)

	rating, err := services.SubmitRating(studentID, teacherID, req.Rate, req.Text)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"rating": rating})
}

type UpdateRatingRequest struct {
	Rate int    `json:"rate" validate:"required,min=1,max=5"`
	Text string `json:"text"`
}

func UpdateRating(c *fiber.Ctx) error {
	studentID := currentUserID(c)
	ratingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid rating id"})
	}

	var req UpdateRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rating, svcErr := services.UpdateRating(ratingID, studentID, req.Rate, req.Text)
	if svcErr != nil {
		return serviceError(c, svcErr)
	}

	return c.JSON(fiber.Map{"rating": rating})
}

func GetTeacherRatings(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher id"})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))

	ratings, svcErr := services.TeacherRatings(teacherID, page, perPage)
	if svcErr != nil {
		return serviceError(c, svcErr)
	}

	return c.JSON(ratings)
}
