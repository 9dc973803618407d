package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead is a sales prospect. Score is conventionally 0-100 but not
// enforced; status moves through new/qualified/contacted/converted.
type Lead struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string     `gorm:"type:varchar(100);not null" json:"name"`
	Company    string     `gorm:"type:varchar(100)" json:"company"`
	Phone      string     `gorm:"type:varchar(20)" json:"phone"`
	Email      string     `gorm:"type:varchar(100)" json:"email"`
	Location   string     `gorm:"type:varchar(100)" json:"location"`
	Source     string     `gorm:"type:varchar(50)" json:"source"`
	Status     string     `gorm:"type:varchar(20);default:'new'" json:"status"`
	Score      int        `gorm:"default:50" json:"score"`
	Notes      string     `gorm:"type:text" json:"notes"`
	AssignedTo *uuid.UUID `gorm:"type:uuid;index" json:"assigned_to"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`

	AssignedSalesperson *Salesperson `gorm:"foreignKey:AssignedTo;references:ID" json:"-"`
}

func (Lead) TableName() string {
	return "leads"
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
