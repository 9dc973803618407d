package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Salesperson represents a member of the field sales team
type Salesperson struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Region        string    `gorm:"type:varchar(50);not null" json:"region"`
	GPSLocation   string    `gorm:"column:gps_location;type:varchar(100)" json:"gps_location"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone"`
	Email         string    `gorm:"type:varchar(100)" json:"email"`
	TotalRevenue  float64   `gorm:"type:numeric(12,2);default:0" json:"total_revenue"`
	MonthlyTarget float64   `gorm:"type:numeric(12,2);default:0" json:"monthly_target"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Meetings      []Meeting      `gorm:"foreignKey:SalespersonID" json:"-"`
	Leads         []Lead         `gorm:"foreignKey:AssignedTo" json:"-"`
	LoginSessions []LoginSession `gorm:"foreignKey:SalespersonID" json:"-"`
	SalesRecords  []SalesRecord  `gorm:"foreignKey:SalespersonID" json:"-"`
}

func (Salesperson) TableName() string {
	return "salespersons"
}

func (s *Salesperson) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
