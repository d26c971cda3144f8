package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

const (
	PlaceOnline = "online"
	PlaceOnSite = "onSite"
)

var (
	Subjects     = []string{"math", "physics", "chemistry", "it", "biology"}
	SchoolLevels = []string{"primarySchool", "highSchool", "university"}
	LessonPlaces = []string{PlaceOnline, PlaceOnSite}
)

// LessonRequest is a booking proposal from a student against a teacher's
// declared availability. Times are teacher-local wall clock at minute
// resolution, always within the single calendar Date.
type LessonRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID `gorm:"not null;index" json:"student_id"`
	TeacherID   uuid.UUID `gorm:"not null;index:idx_lesson_requests_teacher_date" json:"teacher_id"`
	Date        time.Time `gorm:"type:date;not null;index:idx_lesson_requests_teacher_date" json:"date"`
	StartHour   int       `gorm:"not null" json:"start_hour"`
	StartMinute int       `gorm:"not null" json:"start_minute"`
	EndHour     int       `gorm:"not null" json:"end_hour"`
	EndMinute   int       `gorm:"not null" json:"end_minute"`

	Subject     string `gorm:"size:50;not null" json:"subject"`
	SchoolLevel string `gorm:"size:50;not null" json:"school_level"`
	LessonPlace string `gorm:"size:20;not null" json:"lesson_place"`

	// MoneyRate is snapshotted from the teacher's profile at creation time.
	MoneyRate float64 `gorm:"type:numeric(10,2);not null" json:"money_rate"`
	Comment   string  `gorm:"type:text" json:"comment"`
	Status    string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	OnlineLessonLink *string `gorm:"size:255" json:"online_lesson_link"`

	Student User `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Teacher User `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *LessonRequest) StartMinutes() int {
	return l.StartHour*60 + l.StartMinute
}

func (l *LessonRequest) EndMinutes() int {
	return l.EndHour*60 + l.EndMinute
}

func (l *LessonRequest) StartsAt() time.Time {
	return time.Date(l.Date.Year(), l.Date.Month(), l.Date.Day(),
		l.StartHour, l.StartMinute, 0, 0, l.Date.Location())
}

func (l *LessonRequest) EndsAt() time.Time {
	return time.Date(l.Date.Year(), l.Date.Month(), l.Date.Day(),
		l.EndHour, l.EndMinute, 0, 0, l.Date.Location())
}

// IsParty reports whether the user is one of the two sides of the request.
func (l *LessonRequest) IsParty(userID uuid.UUID) bool {
	return l.StudentID == userID || l.TeacherID == userID
}

func ValidTag(allowed []string, value string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
