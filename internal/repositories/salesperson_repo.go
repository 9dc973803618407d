package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/models"
)

type SalespersonRepo interface {
	Create(salesperson *models.Salesperson) error
	GetByID(id string) (*models.Salesperson, error)
	List() ([]models.Salesperson, error)
	Update(salesperson *models.Salesperson) error
	Delete(id string) error
	Exists(id uuid.UUID) (bool, error)
}

type salespersonRepo struct {
	db *gorm.DB
}

func NewSalespersonRepo(db *gorm.DB) SalespersonRepo {
	return &salespersonRepo{db: db}
}

func (r *salespersonRepo) Create(salesperson *models.Salesperson) error {
	return r.db.Create(salesperson).Error
}

func (r *salespersonRepo) GetByID(id string) (*models.Salesperson, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid salesperson ID: %w", err)
	}

	var salesperson models.Salesperson
	if err := r.db.First(&salesperson, "id = ?", uid).Error; err != nil {
		return nil, err
	}
	return &salesperson, nil
}

func (r *salespersonRepo) List() ([]models.Salesperson, error) {
	var salespersons []models.Salesperson
	err := r.db.Order("created_at ASC").Find(&salespersons).Error
	return salespersons, err
}

func (r *salespersonRepo) Update(salesperson *models.Salesperson) error {
	return r.db.Save(salesperson).Error
}

func (r *salespersonRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid salesperson ID: %w", err)
	}
	return r.db.Delete(&models.Salesperson{}, "id = ?", uid).Error
}

func (r *salespersonRepo) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Salesperson{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
