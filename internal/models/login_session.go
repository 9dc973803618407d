package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginSession tracks a salesperson device login. Duration is derived
// when the logout time is recorded.
type LoginSession struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SalespersonID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"salesperson_id"`
	LoginTime              time.Time  `gorm:"not null" json:"login_time"`
	LogoutTime             *time.Time `json:"logout_time"`
	SessionDurationMinutes *int       `json:"session_duration_minutes"`
	Location               string     `gorm:"type:varchar(100)" json:"location"`
	DeviceInfo             string     `gorm:"type:varchar(200)" json:"device_info"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Salesperson Salesperson `gorm:"foreignKey:SalespersonID;references:ID" json:"-"`
}

func (LoginSession) TableName() string {
	return "salesperson_login_sessions"
}

func (s *LoginSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
