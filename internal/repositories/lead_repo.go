package repositories

import (
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/models"
)

type LeadRepo interface {
	Create(lead *models.Lead) error
	List(status string) ([]models.Lead, error)
}

type leadRepo struct {
	db *gorm.DB
}

func NewLeadRepo(db *gorm.DB) LeadRepo {
	return &leadRepo{db: db}
}

func (r *leadRepo) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

func (r *leadRepo) List(status string) ([]models.Lead, error) {
	query := r.db.Order("score DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var leads []models.Lead
	err := query.Find(&leads).Error
	return leads, err
}
