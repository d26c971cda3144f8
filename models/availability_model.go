package models

import (
	"github.com/google/uuid"
)

// AvailableHourRange is one open interval of a teacher's standing weekly
// schedule. Weekday is ISO numbering, Monday=1 through Sunday=7. The whole
// set for a teacher is replaced wholesale on update.
type AvailableHourRange struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"not null;index" json:"-"`
	Weekday    int       `gorm:"not null" json:"weekday"`
	HourFrom   int       `gorm:"not null" json:"hour_from"`
	MinuteFrom int       `gorm:"not null" json:"minute_from"`
	HourTo     int       `gorm:"not null" json:"hour_to"`
	MinuteTo   int       `gorm:"not null" json:"minute_to"`
}

func (r AvailableHourRange) FromMinutes() int {
	return r.HourFrom*60 + r.MinuteFrom
}

func (r AvailableHourRange) ToMinutes() int {
	return r.HourTo*60 + r.MinuteTo
}

func (r AvailableHourRange) Valid() bool {
	if r.Weekday < 1 || r.Weekday > 7 {
		return false
	}
	if r.HourFrom < 0 || r.HourFrom > 23 || r.HourTo < 0 || r.HourTo > 23 {
		return false
	}
	if r.MinuteFrom < 0 || r.MinuteFrom > 59 || r.MinuteTo < 0 || r.MinuteTo > 59 {
		return false
	}
	return r.FromMinutes() < r.ToMinutes()
}
