package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/models"
)

type ConversationRepo interface {
	Log(sessionID, userMessage, response, agentType string) error
	GetBySession(sessionID string, limit int) ([]models.Conversation, error)
	CountSince(since time.Time) (int64, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) Log(sessionID, userMessage, response, agentType string) error {
	conversation := models.Conversation{
		SessionID:     sessionID,
		UserMessage:   userMessage,
		AgentResponse: response,
		AgentType:     agentType,
	}
	return r.db.Create(&conversation).Error
}

func (r *conversationRepo) GetBySession(sessionID string, limit int) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Limit(limit).
		Find(&conversations).Error
	return conversations, err
}

func (r *conversationRepo) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Conversation{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
