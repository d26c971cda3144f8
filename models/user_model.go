package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name                string    `gorm:"size:255;not null" json:"name"`
	Surname             string    `gorm:"size:255;not null" json:"surname"`
	Email               string    `gorm:"size:255;not null;unique" json:"email"`
	PhoneNumber         *string   `gorm:"size:20" json:"phone_number"`
	Password            string    `gorm:"not null" json:"-"`
	Role                string    `gorm:"size:20;not null;default:'student'" json:"role"`
	YourselfDescription *string   `gorm:"type:text" json:"yourself_description"`
	Verified            bool      `gorm:"default:false" json:"verified"`
	AvatarURL           *string   `gorm:"size:255" json:"avatar_url"`

	Subjects        pq.StringArray `gorm:"type:text[]" json:"subjects,omitempty"`
	SchoolLevels    pq.StringArray `gorm:"type:text[]" json:"school_levels,omitempty"`
	LessonPlaces    pq.StringArray `gorm:"type:text[]" json:"lesson_places,omitempty"`
	Location        *string        `gorm:"size:255" json:"location"`
	LessonsPlatform *string        `gorm:"size:255" json:"lessons_platform"`
	LessonMoneyRate float64        `gorm:"type:numeric(10,2);default:0" json:"lesson_money_rate"`
	LessonLength    int            `gorm:"default:0" json:"lesson_length"`

	RatingAvg   *float64 `json:"rating_avg"`
	RatingCount int      `gorm:"default:0" json:"rating_count"`

	AvailableHours []AvailableHourRange `gorm:"foreignkey:UserID" json:"available_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MeetsVerificationRequirements reports whether the profile is complete
// enough to appear in the public teacher list. Students are always verified;
// a teacher has to finish the lessons settings and publish availability.
func (u *User) MeetsVerificationRequirements(availabilityCount int) bool {
	if u.Role == RoleStudent {
		return true
	}
	return len(u.Subjects) > 0 &&
		len(u.SchoolLevels) > 0 &&
		len(u.LessonPlaces) > 0 &&
		u.LessonMoneyRate > 0 &&
		u.LessonLength > 0 &&
		availabilityCount > 0
}
