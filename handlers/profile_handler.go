package handlers

import (
	"time"

	"github.com/adamzur/lesson_tutor/database"
	"github.com/adamzur/lesson_tutor/models"
	"github.com/adamzur/lesson_tutor/services"
	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	Name                *string `json:"name"`
	Surname             *string `json:"surname"`
	Email               *string `json:"email" validate:"omitempty,email"`
	PhoneNumber         *string `json:"phone_number"`
	YourselfDescription *string `json:"yourself_description"`
	AvatarURL           *string `json:"avatar_url"`
}

func GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Preload("AvailableHours").
		Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.YourselfDescription != nil {
		user.YourselfDescription = req.YourselfDescription
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(user)
}

type LessonsSettingsRequest struct {
	Subjects        []string `json:"subjects" validate:"required,min=1,dive,oneof=math physics chemistry it biology"`
	SchoolLevels    []string `json:"school_levels" validate:"required,min=1,dive,oneof=primarySchool highSchool university"`
	LessonPlaces    []string `json:"lesson_places" validate:"required,min=1,dive,oneof=online onSite"`
	Location        *string  `json:"location"`
	LessonsPlatform *string  `json:"lessons_platform"`
	LessonMoneyRate float64  `json:"lesson_money_rate" validate:"required,gt=0"`
	LessonLength    int      `json:"lesson_length" validate:"required,gt=0"`
}

func GetLessonsSettings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"user": user,
		"enums": fiber.Map{
			"subjects":      models.Subjects,
			"school_levels": models.SchoolLevels,
			"lesson_places": models.LessonPlaces,
		},
	})
}

func UpdateLessonsSettings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req LessonsSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Subjects = req.Subjects
	user.SchoolLevels = req.SchoolLevels
	user.LessonPlaces = req.LessonPlaces
	user.Location = req.Location
	user.LessonsPlatform = req.LessonsPlatform
	user.LessonMoneyRate = req.LessonMoneyRate
	user.LessonLength = req.LessonLength

	// A place that is no longer offered drops its location/platform detail.
	if !models.ValidTag(req.LessonPlaces, models.PlaceOnSite) {
		user.Location = nil
	}
	if !models.ValidTag(req.LessonPlaces, models.PlaceOnline) {
		user.LessonsPlatform = nil
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update lessons settings"})
	}
	if err := services.RefreshVerification(database.DB, userID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(user)
}

type AvailableHoursRequest struct {
	AvailableHours []models.AvailableHourRange `json:"available_hours" validate:"required"`
}

func GetAvailableHours(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var ranges []models.AvailableHourRange
	if err := database.DB.Where("user_id = ?", userID).
		Order("weekday asc, hour_from asc, minute_from asc").
		Find(&ranges).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch available hours"})
	}

	return c.JSON(ranges)
}

func UpdateAvailableHours(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req AvailableHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := services.ReplaceAvailableHours(userID, req.AvailableHours); err != nil {
		return serviceError(c, err)
	}

	return GetAvailableHours(c)
}

func GetEstimatedIncome(c *fiber.Ctx) error {
	userID := currentUserID(c)

	estimate, err := services.EstimateMonthlyIncome(userID, time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"results": estimate})
}
