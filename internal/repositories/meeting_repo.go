package repositories

import (
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/models"
)

type MeetingRepo interface {
	Create(meeting *models.Meeting) error
	List(salespersonID string) ([]models.Meeting, error)
}

type meetingRepo struct {
	db *gorm.DB
}

func NewMeetingRepo(db *gorm.DB) MeetingRepo {
	return &meetingRepo{db: db}
}

func (r *meetingRepo) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

func (r *meetingRepo) List(salespersonID string) ([]models.Meeting, error) {
	query := r.db.Order("created_at DESC")
	if salespersonID != "" {
		query = query.Where("salesperson_id = ?", salespersonID)
	}

	var meetings []models.Meeting
	err := query.Find(&meetings).Error
	return meetings, err
}
