package services

import (
	"errors"
	"math"

	"github.com/adamzur/lesson_tutor/database"
	"github.com/adamzur/lesson_tutor/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoundHalfUp1 rounds to one decimal place, halves up. 4.45 -> 4.5.
func RoundHalfUp1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// aggregateRates folds a set of rate values into the running aggregate:
// average rounded to one decimal (nil when empty) and count.
func aggregateRates(rates []int) (*float64, int) {
	if len(rates) == 0 {
		return nil, 0
	}
	sum := 0
	for _, r := range rates {
		sum += r
	}
	avg := RoundHalfUp1(float64(sum) / float64(len(rates)))
	return &avg, len(rates)
}

// recomputeTeacherRating rebuilds the teacher's aggregate from the full
// rating set and writes it back. Idempotent: running it twice over the
// same data yields the same two fields.
func recomputeTeacherRating(tx *gorm.DB, teacherID uuid.UUID) error {
	var rates []int
	if err := tx.Model(&models.Rating{}).
		Where("teacher_id = ?", teacherID).
		Pluck("rate", &rates).Error; err != nil {
		return err
	}

	avg, count := aggregateRates(rates)
	return tx.Model(&models.User{}).Where("id = ?", teacherID).
		Updates(map[string]interface{}{
			"rating_avg":   avg,
			"rating_count": count,
		}).Error
}

// SubmitRating creates the student's rating for a teacher, or updates it
// when one already exists for the pair. The aggregate recompute commits in
// the same transaction as the rating write.
func SubmitRating(studentID, teacherID uuid.UUID, rate int, text string) (*models.Rating, error) {
	var rating models.Rating
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var teacher models.User
		if err := tx.First(&teacher, "id = ? AND role = ?", teacherID, models.RoleTeacher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		err := tx.Where("student_id = ? AND teacher_id = ?", studentID, teacherID).
			First(&rating).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rating = models.Rating{
				StudentID: studentID,
				TeacherID: teacherID,
				Rate:      rate,
				Text:      text,
			}
			if err := tx.Create(&rating).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			rating.Rate = rate
			rating.Text = text
			if err := tx.Save(&rating).Error; err != nil {
				return err
			}
		}

		return recomputeTeacherRating(tx, teacherID)
	})
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// UpdateRating edits an existing rating by id. Author-only; the count
// never changes on edit, only the average composition does.
func UpdateRating(ratingID, studentID uuid.UUID, rate int, text string) (*models.Rating, error) {
	var rating models.Rating
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rating, "id = ?", ratingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if rating.StudentID != studentID {
			return ErrNotAuthorized
		}

		rating.Rate = rate
		rating.Text = text
		if err := tx.Save(&rating).Error; err != nil {
			return err
		}

		return recomputeTeacherRating(tx, rating.TeacherID)
	})
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// TeacherRatings pages through a teacher's ratings, newest first.
func TeacherRatings(teacherID uuid.UUID, page, perPage int) ([]models.Rating, error) {
	page, perPage = normalizePage(page, perPage)

	var ratings []models.Rating
	err := database.DB.Preload("Student").
		Where("teacher_id = ?", teacherID).
		Order("created_at desc").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&ratings).Error
	return ratings, err
}
