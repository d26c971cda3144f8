package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/adamzur/lesson_tutor/database"
	"github.com/adamzur/lesson_tutor/models"
	"github.com/adamzur/lesson_tutor/notifications"
	"github.com/adamzur/lesson_tutor/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TeacherListItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	Email         string    `json:"email"`
	PhoneNumber   *string   `json:"phone_number"`
	AvatarURL     *string   `json:"avatar_url"`
	OrdinalNumber int       `json:"ordinal_number"`
	Description   *string   `json:"description"`
	RatingAvg     *float64  `json:"rating_avg"`
	RatingCount   int       `json:"rating_count"`
}

func ListTeachers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	query := database.DB.Where("verified = ? AND role = ?", true, models.RoleTeacher)

	if subjects := queryList(c, "subject"); len(subjects) > 0 {
		query = query.Where("subjects && ?", pq.Array(subjects))
	}
	if levels := queryList(c, "school_level"); len(levels) > 0 {
		query = query.Where("school_levels && ?", pq.Array(levels))
	}
	if places := queryList(c, "lesson_place"); len(places) > 0 {
		query = query.Where("lesson_places && ?", pq.Array(places))
	}
	if moneyRate := c.Query("money_rate"); moneyRate != "" {
		if rate, err := strconv.ParseFloat(moneyRate, 64); err == nil {
			query = query.Where("lesson_money_rate <= ?", rate)
		}
	}
	if minLength := c.Query("min_lesson_length"); minLength != "" {
		if length, err := strconv.Atoi(minLength); err == nil {
			query = query.Where("lesson_length >= ?", length)
		}
	}
	if maxLength := c.Query("max_lesson_length"); maxLength != "" {
		if length, err := strconv.Atoi(maxLength); err == nil {
			query = query.Where("lesson_length <= ?", length)
		}
	}

	var teachers []models.User
	if err := query.Offset((page - 1) * perPage).Limit(perPage).
		Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}

	response := make([]TeacherListItem, 0, len(teachers))
	for i, teacher := range teachers {
		response = append(response, TeacherListItem{
			ID:            teacher.ID,
			Name:          teacher.Name,
			Surname:       teacher.Surname,
			Email:         teacher.Email,
			PhoneNumber:   teacher.PhoneNumber,
			AvatarURL:     teacher.AvatarURL,
			OrdinalNumber: (page-1)*perPage + i + 1,
			Description:   teacher.YourselfDescription,
			RatingAvg:     teacher.RatingAvg,
			RatingCount:   teacher.RatingCount,
		})
	}

	return c.JSON(response)
}

// queryList collects every value of a repeated query key, comma lists
// included, so ?subject=math,physics&subject=it selects all three.
func queryList(c *fiber.Ctx, key string) []string {
	var values []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

func GetTeacherData(c *fiber.Ctx) error {
	userID := currentUserID(c)
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher id"})
	}

	var teacher models.User
	if err := database.DB.Preload("AvailableHours").
		First(&teacher, "id = ? AND role = ?", teacherID, models.RoleTeacher).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	// A student may only rate a teacher after a finished accepted lesson.
	var finishedLessons int64
	database.DB.Model(&models.LessonRequest{}).
		Where("teacher_id = ? AND student_id = ? AND status = ?", teacherID, userID, models.StatusAccepted).
		Where("date + make_interval(mins => end_hour * 60 + end_minute) < ?", time.Now()).
		Count(&finishedLessons)

	var ownRating *models.Rating
	var rating models.Rating
	err = database.DB.Where("teacher_id = ? AND student_id = ?", teacherID, userID).
		First(&rating).Error
	if err == nil {
		ownRating = &rating
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"user":              teacher,
		"can_leave_comment": finishedLessons > 0,
		"rate":              ownRating,
	})
}

// GetTeacherBusyHours exposes the windows already held on a date so the
// proposal form can grey them out. Statuses are deliberately not leaked;
// a pending request blocks a slot the same as an accepted one.
func GetTeacherBusyHours(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher id"})
	}
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	windows, svcErr := services.ActiveRequestWindows(teacherID, date)
	if svcErr != nil {
		return serviceError(c, svcErr)
	}

	return c.JSON(fiber.Map{"data": windows})
}

type LessonRequestBody struct {
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Hours       services.Window `json:"hours"`
	Subject     string          `json:"subject" validate:"required,oneof=math physics chemistry it biology"`
	SchoolLevel string          `json:"school_level" validate:"required,oneof=primarySchool highSchool university"`
	LessonPlace string          `json:"lesson_place" validate:"required,oneof=online onSite"`
	Comment     string          `json:"comment"`
}

func SendLessonRequest(c *fiber.Ctx) error {
	studentID := currentUserID(c)
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher id"})
	}

	var req LessonRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.Hours.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Starting hour must precede ending hour"})
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	lesson, svcErr := services.CreateLessonRequest(services.LessonProposal{
		StudentID:   studentID,
		TeacherID:   teacherID,
		Date:        date,
		Window:      req.Hours,
		Subject:     req.Subject,
		SchoolLevel: req.SchoolLevel,
		LessonPlace: req.LessonPlace,
		Comment:     req.Comment,
	})
	if svcErr != nil {
		return serviceError(c, svcErr)
	}

	var teacher models.User
	if err := database.DB.First(&teacher, "id = ?", teacherID).Error; err == nil {
		go notifications.SendEmail(teacher.Name, teacher.Email,
			"New Lesson Request",
			"<h1>New Lesson Request</h1><p>A student has proposed a lesson. Log in to accept or reject it.</p>")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"lesson_request": lesson})
}
