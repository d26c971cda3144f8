package services

import (
	"errors"
	"time"

	"github.com/adamzur/lesson_tutor/database"
	"github.com/adamzur/lesson_tutor/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LessonProposal carries everything a student submits when proposing a
// lesson. The money rate is never part of the proposal; it is snapshotted
// from the teacher's profile inside the creation transaction.
type LessonProposal struct {
	StudentID   uuid.UUID
	TeacherID   uuid.UUID
	Date        time.Time
	Window      Window
	Subject     string
	SchoolLevel string
	LessonPlace string
	Comment     string
}

type transitionRule struct {
	guard       func(l *models.LessonRequest, now time.Time) error
	opensThread bool
}

// lessonTransitions enumerates every legal status change. Anything not in
// the table fails with ErrInvalidTransition, with no partial effects.
var lessonTransitions = map[string]map[string]transitionRule{
	models.StatusPending: {
		models.StatusAccepted: {guard: acceptDeadlineGuard},
		models.StatusRejected: {opensThread: true},
	},
}

func acceptDeadlineGuard(l *models.LessonRequest, now time.Time) error {
	if l.StartsAt().Before(now) {
		return ErrTemporalViolation
	}
	return nil
}

func transitionRuleFor(current, target string) (transitionRule, error) {
	targets, ok := lessonTransitions[current]
	if !ok {
		return transitionRule{}, ErrInvalidTransition
	}
	rule, ok := targets[target]
	if !ok {
		return transitionRule{}, ErrInvalidTransition
	}
	return rule, nil
}

// decisionThreadSeed builds the messages a rejection pushes into the
// thread: the original creation comment first (authored by the student),
// then the decision message (authored by the acting party). Empty texts
// are skipped.
func decisionThreadSeed(l *models.LessonRequest, actorID uuid.UUID, message string) []models.Message {
	var seed []models.Message
	if l.Comment != "" {
		seed = append(seed, models.Message{SenderID: l.StudentID, Content: l.Comment})
	}
	if message != "" {
		seed = append(seed, models.Message{SenderID: actorID, Content: message})
	}
	return seed
}

// CreateLessonRequest runs the whole proposal pipeline: teacher lookup,
// availability coverage, future-start check and the overlap check against
// every non-rejected request on that date. The teacher row is locked for
// the duration of the transaction so two concurrent overlapping proposals
// cannot both pass the conflict check.
func CreateLessonRequest(p LessonProposal) (*models.LessonRequest, error) {
	now := time.Now()

	var lesson models.LessonRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var teacher models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&teacher, "id = ? AND role = ?", p.TeacherID, models.RoleTeacher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var ranges []models.AvailableHourRange
		if err := tx.Where("user_id = ?", teacher.ID).Find(&ranges).Error; err != nil {
			return err
		}
		if !IsWindowCovered(ranges, p.Date, p.Window) {
			return ErrAvailabilityViolation
		}

		if !StartInstant(p.Date, p.Window).After(now) {
			return ErrTemporalViolation
		}

		var conflicting int64
		if err := tx.Model(&models.LessonRequest{}).
			Where("teacher_id = ? AND date = ? AND status <> ?", teacher.ID, p.Date, models.StatusRejected).
			Where("(start_hour * 60 + start_minute) < ? AND (end_hour * 60 + end_minute) > ?",
				p.Window.EndMinutes(), p.Window.StartMinutes()).
			Count(&conflicting).Error; err != nil {
			return err
		}
		if conflicting > 0 {
			return ErrSchedulingConflict
		}

		lesson = models.LessonRequest{
			StudentID:   p.StudentID,
			TeacherID:   teacher.ID,
			Date:        p.Date,
			StartHour:   p.Window.StartHour,
			StartMinute: p.Window.StartMinute,
			EndHour:     p.Window.EndHour,
			EndMinute:   p.Window.EndMinute,
			Subject:     p.Subject,
			SchoolLevel: p.SchoolLevel,
			LessonPlace: p.LessonPlace,
			Comment:     p.Comment,
			MoneyRate:   teacher.LessonMoneyRate,
			Status:      models.StatusPending,
		}
		return tx.Create(&lesson).Error
	})
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// DecideLessonRequest applies an accept/reject decision. The status write
// is a compare-and-swap conditioned on the row still being pending, so of
// two concurrent decisions exactly one wins and the loser fails with
// ErrInvalidTransition.
func DecideLessonRequest(lessonID, actorID uuid.UUID, newStatus, message string) (*models.LessonRequest, *models.Conversation, error) {
	now := time.Now()

	var lesson models.LessonRequest
	if err := database.DB.Preload("Student").Preload("Teacher").
		First(&lesson, "id = ?", lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if !lesson.IsParty(actorID) {
		return nil, nil, ErrNotAuthorized
	}

	rule, err := transitionRuleFor(lesson.Status, newStatus)
	if err != nil {
		return nil, nil, err
	}
	if rule.guard != nil {
		if err := rule.guard(&lesson, now); err != nil {
			return nil, nil, err
		}
	}

	var conversation *models.Conversation
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.LessonRequest{}).
			Where("id = ? AND status = ?", lesson.ID, models.StatusPending).
			Update("status", newStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		lesson.Status = newStatus

		if rule.opensThread {
			conv, err := openThread(tx, &lesson, decisionThreadSeed(&lesson, actorID, message))
			if err != nil {
				return err
			}
			conversation = conv
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &lesson, conversation, nil
}

// SetLessonLink stores the meeting link. Teacher-only, online lessons
// only, independent of status.
func SetLessonLink(lessonID, actorID uuid.UUID, link string) (*models.LessonRequest, error) {
	var lesson models.LessonRequest
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if lesson.TeacherID != actorID {
		return nil, ErrNotAuthorized
	}
	if lesson.LessonPlace != models.PlaceOnline {
		return nil, ErrVenueMismatch
	}

	if err := lessonLinkWrite(database.DB, &lesson, link).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// lessonLinkWrite updates the link column and nothing else. A full-row save
// here could overwrite a status a concurrent decision just committed.
func lessonLinkWrite(db *gorm.DB, lesson *models.LessonRequest, link string) *gorm.DB {
	lesson.OnlineLessonLink = &link
	return db.Model(lesson).Update("online_lesson_link", link)
}

// GetLessonRequest returns one request, visible only to its two parties.
func GetLessonRequest(lessonID, userID uuid.UUID) (*models.LessonRequest, error) {
	var lesson models.LessonRequest
	if err := database.DB.Preload("Student").Preload("Teacher").
		First(&lesson, "id = ?", lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !lesson.IsParty(userID) {
		return nil, ErrNotAuthorized
	}
	return &lesson, nil
}

type LessonRequestFilter struct {
	Status   string
	IDSearch string
	Page     int
	PerPage  int
}

func ListLessonRequests(userID uuid.UUID, f LessonRequestFilter) ([]models.LessonRequest, error) {
	page, perPage := normalizePage(f.Page, f.PerPage)

	q := database.DB.Preload("Student").Preload("Teacher").
		Where("student_id = ? OR teacher_id = ?", userID, userID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.IDSearch != "" {
		q = q.Where("CAST(id AS TEXT) ILIKE ?", "%"+f.IDSearch+"%")
	}

	var lessons []models.LessonRequest
	err := q.Order("date asc, start_hour asc, start_minute asc").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&lessons).Error
	return lessons, err
}

// ActiveRequestWindows lists the busy windows of a teacher on a date:
// every non-rejected request holds its slot, pending ones included.
func ActiveRequestWindows(teacherID uuid.UUID, date time.Time) ([]Window, error) {
	var lessons []models.LessonRequest
	if err := database.DB.
		Where("teacher_id = ? AND date = ? AND status <> ?", teacherID, date, models.StatusRejected).
		Order("start_hour asc, start_minute asc").
		Find(&lessons).Error; err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(lessons))
	for _, l := range lessons {
		windows = append(windows, Window{
			StartHour:   l.StartHour,
			StartMinute: l.StartMinute,
			EndHour:     l.EndHour,
			EndMinute:   l.EndMinute,
		})
	}
	return windows, nil
}

type WeekDayLessons struct {
	Date    string                 `json:"date"`
	Lessons []models.LessonRequest `json:"lessons"`
}

// ListWeekLessons returns the accepted lessons of one ISO week for either
// side of the booking, grouped by date in ascending order.
func ListWeekLessons(userID uuid.UUID, isoYear, isoWeek int, weekStart, weekEnd time.Time) ([]WeekDayLessons, error) {
	var lessons []models.LessonRequest
	if err := database.DB.Preload("Student").Preload("Teacher").
		Where("status = ?", models.StatusAccepted).
		Where("student_id = ? OR teacher_id = ?", userID, userID).
		Where("date BETWEEN ? AND ?", weekStart, weekEnd).
		Order("date asc, start_hour asc, start_minute asc").
		Find(&lessons).Error; err != nil {
		return nil, err
	}

	var grouped []WeekDayLessons
	for _, l := range lessons {
		day := l.Date.Format("2006-01-02")
		if len(grouped) == 0 || grouped[len(grouped)-1].Date != day {
			grouped = append(grouped, WeekDayLessons{Date: day})
		}
		grouped[len(grouped)-1].Lessons = append(grouped[len(grouped)-1].Lessons, l)
	}
	return grouped, nil
}

type HistoryFilter struct {
	IDSearch string
	Name     string
	Subject  string
	Page     int
	PerPage  int
}

// ListLessonsHistory returns accepted lessons that already ended, newest
// first. The name filter matches the counterparty: the other side's name
// or surname.
func ListLessonsHistory(user *models.User, f HistoryFilter) ([]models.LessonRequest, error) {
	page, perPage := normalizePage(f.Page, f.PerPage)
	now := time.Now()

	q := database.DB.Preload("Student").Preload("Teacher").
		Where("lesson_requests.status = ?", models.StatusAccepted).
		Where("lesson_requests.student_id = ? OR lesson_requests.teacher_id = ?", user.ID, user.ID).
		Where("lesson_requests.date + make_interval(mins => lesson_requests.end_hour * 60 + lesson_requests.end_minute) < ?", now)

	if f.IDSearch != "" {
		q = q.Where("CAST(lesson_requests.id AS TEXT) ILIKE ?", "%"+f.IDSearch+"%")
	}
	if f.Subject != "" {
		q = q.Where("lesson_requests.subject = ?", f.Subject)
	}
	if f.Name != "" {
		pattern := "%" + f.Name + "%"
		if user.Role == models.RoleStudent {
			q = q.Joins("JOIN users ON users.id = lesson_requests.teacher_id").
				Where("users.name ILIKE ? OR users.surname ILIKE ?", pattern, pattern)
		} else {
			q = q.Joins("JOIN users ON users.id = lesson_requests.student_id").
				Where("users.name ILIKE ? OR users.surname ILIKE ?", pattern, pattern)
		}
	}

	var lessons []models.LessonRequest
	err := q.Order("lesson_requests.date desc, lesson_requests.start_hour desc").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&lessons).Error
	return lessons, err
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}
