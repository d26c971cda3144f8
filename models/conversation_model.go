package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the per-lesson-request message thread. It is created
// lazily the first time a transition needs a message exchange.
type Conversation struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LessonRequestID uuid.UUID `gorm:"not null;unique" json:"lesson_request_id"`

	LessonRequest LessonRequest `gorm:"foreignkey:LessonRequestID" json:"lesson_request,omitempty"`
	Messages      []Message     `json:"messages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
