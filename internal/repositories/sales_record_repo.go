package repositories

import (
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/models"
)

type SalesRecordRepo interface {
	Create(record *models.SalesRecord) error
	List(salespersonID string) ([]models.SalesRecord, error)
}

type salesRecordRepo struct {
	db *gorm.DB
}

func NewSalesRecordRepo(db *gorm.DB) SalesRecordRepo {
	return &salesRecordRepo{db: db}
}

func (r *salesRecordRepo) Create(record *models.SalesRecord) error {
	return r.db.Create(record).Error
}

func (r *salesRecordRepo) List(salespersonID string) ([]models.SalesRecord, error) {
	query := r.db.Order("sale_date DESC")
	if salespersonID != "" {
		query = query.Where("salesperson_id = ?", salespersonID)
	}

	var records []models.SalesRecord
	err := query.Find(&records).Error
	return records, err
}
