package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/models"
)

type LoginSessionRepo interface {
	Create(session *models.LoginSession) error
	GetByID(id string) (*models.LoginSession, error)
	List(salespersonID string) ([]models.LoginSession, error)
	Update(session *models.LoginSession) error
	ListOpenBefore(cutoff time.Time) ([]models.LoginSession, error)
}

type loginSessionRepo struct {
	db *gorm.DB
}

func NewLoginSessionRepo(db *gorm.DB) LoginSessionRepo {
	return &loginSessionRepo{db: db}
}

func (r *loginSessionRepo) Create(session *models.LoginSession) error {
	return r.db.Create(session).Error
}

func (r *loginSessionRepo) GetByID(id string) (*models.LoginSession, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid login session ID: %w", err)
	}

	var session models.LoginSession
	if err := r.db.First(&session, "id = ?", uid).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *loginSessionRepo) List(salespersonID string) ([]models.LoginSession, error) {
	query := r.db.Order("login_time DESC")
	if salespersonID != "" {
		query = query.Where("salesperson_id = ?", salespersonID)
	}

	var sessions []models.LoginSession
	err := query.Find(&sessions).Error
	return sessions, err
}

func (r *loginSessionRepo) Update(session *models.LoginSession) error {
	return r.db.Save(session).Error
}

func (r *loginSessionRepo) ListOpenBefore(cutoff time.Time) ([]models.LoginSession, error) {
	var sessions []models.LoginSession
	err := r.db.Where("logout_time IS NULL AND login_time < ?", cutoff).Find(&sessions).Error
	return sessions, err
}
