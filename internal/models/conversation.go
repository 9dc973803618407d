package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is an append-only audit record of one chat exchange.
// Only the text of the exchange is persisted; charts and tabular
// payloads stay in the API response.
type Conversation struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID     string    `gorm:"type:varchar(100);not null;index" json:"session_id"`
	UserMessage   string    `gorm:"type:text;not null" json:"user_message"`
	AgentResponse string    `gorm:"type:text;not null" json:"agent_response"`
	AgentType     string    `gorm:"type:varchar(50);not null" json:"agent_type"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Conversation) TableName() string {
	return "conversation_history"
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
