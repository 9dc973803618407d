package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/models"
)

type DealerRepo interface {
	Create(dealer *models.Dealer) error
	GetByID(id string) (*models.Dealer, error)
	List(status string) ([]models.Dealer, error)
}

type dealerRepo struct {
	db *gorm.DB
}

func NewDealerRepo(db *gorm.DB) DealerRepo {
	return &dealerRepo{db: db}
}

func (r *dealerRepo) Create(dealer *models.Dealer) error {
	return r.db.Create(dealer).Error
}

func (r *dealerRepo) GetByID(id string) (*models.Dealer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid dealer ID: %w", err)
	}

	var dealer models.Dealer
	if err := r.db.First(&dealer, "id = ?", uid).Error; err != nil {
		return nil, err
	}
	return &dealer, nil
}

func (r *dealerRepo) List(status string) ([]models.Dealer, error) {
	query := r.db.Order("created_at ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var dealers []models.Dealer
	err := query.Find(&dealers).Error
	return dealers, err
}
