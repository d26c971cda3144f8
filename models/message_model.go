package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ConversationID uuid.UUID `gorm:"not null;index" json:"conversation_id"`
	SenderID       uuid.UUID `gorm:"not null" json:"sender_id"`
	Content        string    `gorm:"type:text;not null" json:"content"`

	Sender User `gorm:"foreignkey:SenderID" json:"sender,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
