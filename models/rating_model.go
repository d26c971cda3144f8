package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a student's opinion on a teacher, one per pair. Edits keep the
// row; the teacher's aggregate is recomputed after every create or update.
type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"not null;uniqueIndex:idx_ratings_student_teacher" json:"student_id"`
	TeacherID uuid.UUID `gorm:"not null;uniqueIndex:idx_ratings_student_teacher" json:"teacher_id"`
	Rate      int       `gorm:"not null" json:"rate"`
	Text      string    `gorm:"type:text" json:"text"`

	Student User `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Teacher User `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
