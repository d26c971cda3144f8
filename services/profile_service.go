package services

import (
	"errors"

	"github.com/adamzur/lesson_tutor/database"
	"github.com/adamzur/lesson_tutor/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReplaceAvailableHours swaps a teacher's whole weekly schedule in one
// transaction. There are no partial patch semantics: the previous set is
// dropped and the new one inserted, then the verified flag is refreshed.
func ReplaceAvailableHours(userID uuid.UUID, ranges []models.AvailableHourRange) error {
	for _, r := range ranges {
		if !r.Valid() {
			return ErrAvailabilityViolation
		}
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.AvailableHourRange{}).Error; err != nil {
			return err
		}
		for i := range ranges {
			ranges[i].ID = uuid.Nil
			ranges[i].UserID = userID
			if err := tx.Create(&ranges[i]).Error; err != nil {
				return err
			}
		}
		return RefreshVerification(tx, userID)
	})
}

// RefreshVerification recomputes the teacher's verified flag from the
// current profile and availability. Called after lessons settings and
// availability updates.
func RefreshVerification(tx *gorm.DB, userID uuid.UUID) error {
	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var availabilityCount int64
	if err := tx.Model(&models.AvailableHourRange{}).
		Where("user_id = ?", userID).
		Count(&availabilityCount).Error; err != nil {
		return err
	}

	verified := user.MeetsVerificationRequirements(int(availabilityCount))
	if verified == user.Verified {
		return nil
	}
	return tx.Model(&models.User{}).Where("id = ?", userID).
		Update("verified", verified).Error
}
