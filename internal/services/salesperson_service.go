package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/repositories"
	"github.com/fieldforce/sales-agent-api/internal/utils"
)

var ErrStoreUnavailable = errors.New("database unavailable")

// SalespersonService covers roster CRUD. Listing degrades to a fixed
// demo roster whenever the store is unreachable, so the endpoint always
// answers.
type SalespersonService struct {
	repo repositories.SalespersonRepo
}

// NewSalespersonService accepts a nil repo; the service then serves the
// fallback roster only.
func NewSalespersonService(repo repositories.SalespersonRepo) *SalespersonService {
	return &SalespersonService{repo: repo}
}

func (s *SalespersonService) Create(req *models.CreateSalespersonRequest) (*models.Salesperson, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	if req.Name == "" {
		return nil, errors.New("salesperson name is required")
	}
	if req.Region == "" {
		return nil, errors.New("salesperson region is required")
	}

	salesperson := &models.Salesperson{
		Name:          req.Name,
		Region:        req.Region,
		GPSLocation:   req.GPSLocation,
		Phone:         req.Phone,
		Email:         req.Email,
		TotalRevenue:  req.TotalRevenue,
		MonthlyTarget: req.MonthlyTarget,
		IsActive:      true,
	}
	if req.IsActive != nil {
		salesperson.IsActive = *req.IsActive
	}

	if err := s.repo.Create(salesperson); err != nil {
		return nil, fmt.Errorf("failed to create salesperson: %w", err)
	}
	return salesperson, nil
}

func (s *SalespersonService) Get(id string) (*models.Salesperson, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.GetByID(id)
}

// List returns the persisted roster, or the fallback roster when the
// store is missing or the query fails.
func (s *SalespersonService) List() []models.Salesperson {
	if s.repo == nil {
		return FallbackSalespersons()
	}

	salespersons, err := s.repo.List()
	if err != nil {
		utils.LogWarn("salesperson query failed, serving fallback roster", map[string]interface{}{
			"error": err.Error(),
		})
		return FallbackSalespersons()
	}
	return salespersons
}

// ContactQR renders a salesperson's contact card as a QR code PNG,
// delivered as a data URI like the analytics charts.
func (s *SalespersonService) ContactQR(id string) (string, error) {
	if s.repo == nil {
		return "", ErrStoreUnavailable
	}

	salesperson, err := s.repo.GetByID(id)
	if err != nil {
		return "", err
	}

	vcard := fmt.Sprintf("BEGIN:VCARD\nVERSION:3.0\nFN:%s\nTEL:%s\nEMAIL:%s\nNOTE:Region %s\nEND:VCARD",
		salesperson.Name, salesperson.Phone, salesperson.Email, salesperson.Region)

	png, err := qrcode.Encode(vcard, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func (s *SalespersonService) Update(id string, req *models.CreateSalespersonRequest) (*models.Salesperson, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}

	salesperson, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	salesperson.Name = req.Name
	salesperson.Region = req.Region
	salesperson.GPSLocation = req.GPSLocation
	salesperson.Phone = req.Phone
	salesperson.Email = req.Email
	salesperson.TotalRevenue = req.TotalRevenue
	salesperson.MonthlyTarget = req.MonthlyTarget
	if req.IsActive != nil {
		salesperson.IsActive = *req.IsActive
	}

	if err := s.repo.Update(salesperson); err != nil {
		return nil, err
	}
	return salesperson, nil
}

func (s *SalespersonService) IsUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

func (s *SalespersonService) NotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// FallbackSalespersons is the static roster served when no database is
// reachable. The numbers line up with the sample analytics series.
func FallbackSalespersons() []models.Salesperson {
	now := time.Now()
	return []models.Salesperson{
		{
			ID:            uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Name:          "Alice Johnson",
			Region:        "North",
			GPSLocation:   "12.9716,77.5946",
			Phone:         "+1-555-0101",
			Email:         "alice@company.com",
			TotalRevenue:  45000,
			MonthlyTarget: 15000,
			IsActive:      true,
			CreatedAt:     now,
		},
		{
			ID:            uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Name:          "Bob Smith",
			Region:        "South",
			GPSLocation:   "13.0827,80.2707",
			Phone:         "+1-555-0102",
			Email:         "bob@company.com",
			TotalRevenue:  38500,
			MonthlyTarget: 12000,
			IsActive:      true,
			CreatedAt:     now,
		},
		{
			ID:            uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			Name:          "Carol Williams",
			Region:        "East",
			GPSLocation:   "22.5726,88.3639",
			Phone:         "+1-555-0103",
			Email:         "carol@company.com",
			TotalRevenue:  52000,
			MonthlyTarget: 18000,
			IsActive:      true,
			CreatedAt:     now,
		},
		{
			ID:            uuid.MustParse("00000000-0000-0000-0000-000000000004"),
			Name:          "David Brown",
			Region:        "West",
			GPSLocation:   "19.0760,72.8777",
			Phone:         "+1-555-0104",
			Email:         "david@company.com",
			TotalRevenue:  29000,
			MonthlyTarget: 10000,
			IsActive:      false,
			CreatedAt:     now,
		},
		{
			ID:            uuid.MustParse("00000000-0000-0000-0000-000000000005"),
			Name:          "Emily Davis",
			Region:        "Central",
			GPSLocation:   "23.2599,77.4126",
			Phone:         "+1-555-0105",
			Email:         "emily@company.com",
			TotalRevenue:  61000,
			MonthlyTarget: 20000,
			IsActive:      true,
			CreatedAt:     now,
		},
		{
			ID:            uuid.MustParse("00000000-0000-0000-0000-000000000006"),
			Name:          "Frank Miller",
			Region:        "Northeast",
			GPSLocation:   "26.1445,91.7362",
			Phone:         "+1-555-0106",
			Email:         "frank@company.com",
			TotalRevenue:  33500,
			MonthlyTarget: 14000,
			IsActive:      true,
			CreatedAt:     now,
		},
	}
}
