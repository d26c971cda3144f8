package services

import (
	"time"

	"github.com/adamzur/lesson_tutor/database"
	"github.com/adamzur/lesson_tutor/models"
	"github.com/google/uuid"
)

type IncomeEstimate struct {
	CurrentIncome   float64 `json:"current_income"`
	FutureIncome    float64 `json:"future_income"`
	EstimatedIncome float64 `json:"estimated_income"`
}

// EstimateMonthlyIncome sums the money rates of a teacher's accepted
// lessons in the current month, split into lessons that already ended and
// lessons still ahead.
func EstimateMonthlyIncome(teacherID uuid.UUID, now time.Time) (*IncomeEstimate, error) {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Second)

	var lessons []models.LessonRequest
	if err := database.DB.
		Where("teacher_id = ? AND status = ?", teacherID, models.StatusAccepted).
		Where("date BETWEEN ? AND ?", startOfMonth, endOfMonth).
		Find(&lessons).Error; err != nil {
		return nil, err
	}

	estimate := &IncomeEstimate{}
	for _, l := range lessons {
		if l.EndsAt().After(now) {
			estimate.FutureIncome += l.MoneyRate
		} else {
			estimate.CurrentIncome += l.MoneyRate
		}
	}
	estimate.EstimatedIncome = estimate.CurrentIncome + estimate.FutureIncome
	return estimate, nil
}
