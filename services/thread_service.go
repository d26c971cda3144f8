package services

import (
	"errors"

	"github.com/adamzur/lesson_tutor/database"
	"github.com/adamzur/lesson_tutor/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// openThread finds or lazily creates the conversation of a lesson request
// and appends the seed messages in order. Runs inside the caller's
// transaction so a failed transition never leaves a half-written thread.
func openThread(tx *gorm.DB, lesson *models.LessonRequest, seed []models.Message) (*models.Conversation, error) {
	var conversation models.Conversation
	err := tx.Where("lesson_request_id = ?", lesson.ID).First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		conversation = models.Conversation{LessonRequestID: lesson.ID}
		if err := tx.Create(&conversation).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	for i := range seed {
		seed[i].ConversationID = conversation.ID
		if err := tx.Create(&seed[i]).Error; err != nil {
			return nil, err
		}
	}
	return &conversation, nil
}

// AppendMessage adds one message with a server-assigned timestamp. Only
// the two parties of the underlying lesson request may write.
func AppendMessage(conversationID, authorID uuid.UUID, text string) (*models.Message, error) {
	var conversation models.Conversation
	if err := database.DB.Preload("LessonRequest").
		First(&conversation, "id = ?", conversationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !conversation.LessonRequest.IsParty(authorID) {
		return nil, ErrNotAuthorized
	}

	message := models.Message{
		ConversationID: conversation.ID,
		SenderID:       authorID,
		Content:        text,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// GetConversation loads a thread with its messages re-sorted at read time.
// Concurrent appends from the two parties carry no ordering promise, so
// presentation order is created_at with the id as a stable tie-break.
func GetConversation(conversationID, userID uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := database.DB.Preload("LessonRequest").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc, id asc").Preload("Sender")
		}).
		First(&conversation, "id = ?", conversationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !conversation.LessonRequest.IsParty(userID) {
		return nil, ErrNotAuthorized
	}
	return &conversation, nil
}

// ListConversations pages through the threads the user is a party to,
// most recently touched first.
func ListConversations(userID uuid.UUID, page, perPage int) ([]models.Conversation, error) {
	page, perPage = normalizePage(page, perPage)

	var conversations []models.Conversation
	err := database.DB.Preload("LessonRequest").
		Joins("JOIN lesson_requests ON lesson_requests.id = conversations.lesson_request_id").
		Where("lesson_requests.student_id = ? OR lesson_requests.teacher_id = ?", userID, userID).
		Order("conversations.updated_at desc").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&conversations).Error
	return conversations, err
}

// ThreadParticipants resolves the two user ids behind a conversation.
func ThreadParticipants(conversationID uuid.UUID) ([]uuid.UUID, error) {
	var conversation models.Conversation
	if err := database.DB.Preload("LessonRequest").
		First(&conversation, "id = ?", conversationID).Error; err != nil {
		return nil, err
	}
	return []uuid.UUID{
		conversation.LessonRequest.StudentID,
		conversation.LessonRequest.TeacherID,
	}, nil
}
