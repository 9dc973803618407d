package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meeting records a salesperson visit. Outcome is free-form; observed
// values are successful, follow_up_needed and no_interest.
type Meeting struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SalespersonID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"salesperson_id"`
	DealerID        *uuid.UUID `gorm:"type:uuid;index" json:"dealer_id"`
	Notes           string     `gorm:"type:text" json:"notes"`
	Outcome         string     `gorm:"type:varchar(50)" json:"outcome"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
	Location        string     `gorm:"type:varchar(100)" json:"location"`
	DurationMinutes int        `json:"duration_minutes"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Salesperson Salesperson `gorm:"foreignKey:SalespersonID;references:ID" json:"-"`
	Dealer      *Dealer     `gorm:"foreignKey:DealerID;references:ID" json:"-"`
}

func (Meeting) TableName() string {
	return "meetings"
}

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
