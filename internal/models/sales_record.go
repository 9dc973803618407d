package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesRecord is a closed sale. CommissionAmount is computed once at
// create time from SaleAmount and CommissionRate and is not re-validated
// on later reads.
type SalesRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SalespersonID    uuid.UUID `gorm:"type:uuid;not null;index" json:"salesperson_id"`
	SaleAmount       float64   `gorm:"type:numeric(12,2);not null" json:"sale_amount"`
	ProductName      string    `gorm:"type:varchar(100);not null" json:"product_name"`
	CustomerName     string    `gorm:"type:varchar(100);not null" json:"customer_name"`
	SaleDate         time.Time `gorm:"not null" json:"sale_date"`
	CommissionRate   float64   `gorm:"type:numeric(5,4);default:0.1" json:"commission_rate"`
	CommissionAmount float64   `gorm:"type:numeric(12,2);not null" json:"commission_amount"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	Salesperson Salesperson `gorm:"foreignKey:SalespersonID;references:ID" json:"-"`
}

func (SalesRecord) TableName() string {
	return "sales_records"
}

func (r *SalesRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
