package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/adamzur/lesson_tutor/database"
	"github.com/adamzur/lesson_tutor/models"
	"github.com/adamzur/lesson_tutor/notifications"
	"github.com/adamzur/lesson_tutor/utils"
)

// SendLessonReminders mails both parties of accepted lessons starting in
// roughly one hour. Runs every five minutes, so the window is five minutes
// wide to avoid double sends.
func SendLessonReminders() {
	log.Println("Running job: SendLessonReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todaysLessons []models.LessonRequest
	err := database.DB.
		Preload("Student").
		Preload("Teacher").
		Where("status = ? AND date BETWEEN ? AND ?", models.StatusAccepted, today, today.AddDate(0, 0, 1)).
		Find(&todaysLessons).Error
	if err != nil {
		log.Printf("Error checking for upcoming lessons: %v", err)
		return
	}

	for _, lesson := range todaysLessons {
		startsAt := lesson.StartsAt()
		if startsAt.Before(lowerBound) || !startsAt.Before(upperBound) {
			continue
		}

		log.Printf("Sending reminder for lesson request ID: %s", lesson.ID)

		emailSubject := "Reminder: Your Lesson Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Lesson Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your %s lesson is scheduled to start at %s.</p>",
			lesson.Subject,
			utils.HumanTimestamp(startsAt),
		)
		if lesson.LessonPlace == models.PlaceOnline && lesson.OnlineLessonLink != nil {
			emailBody += fmt.Sprintf("<p><b>Lesson Link:</b> <a href='%s'>Join Lesson</a></p>", *lesson.OnlineLessonLink)
		}

		go notifications.SendEmail(lesson.Student.Name, lesson.Student.Email, emailSubject, emailBody)
		go notifications.SendEmail(lesson.Teacher.Name, lesson.Teacher.Email, emailSubject, emailBody)
	}
}
