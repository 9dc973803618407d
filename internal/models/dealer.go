package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dealer represents a dealership account. Status is one of
// active, prospect, inactive.
type Dealer struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Location      string    `gorm:"type:varchar(100)" json:"location"`
	ContactPerson string    `gorm:"type:varchar(100)" json:"contact_person"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone"`
	Email         string    `gorm:"type:varchar(100)" json:"email"`
	Status        string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Meetings []Meeting `gorm:"foreignKey:DealerID" json:"-"`
}

func (Dealer) TableName() string {
	return "dealers"
}

func (d *Dealer) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
