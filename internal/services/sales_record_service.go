package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/repositories"
)

const defaultCommissionRate = 0.1

// SalesRecordService records closed sales. The commission amount is
// derived once here, at write time.
type SalesRecordService struct {
	records      repositories.SalesRecordRepo
	salespersons repositories.SalespersonRepo
}

func NewSalesRecordService(records repositories.SalesRecordRepo, salespersons repositories.SalespersonRepo) *SalesRecordService {
	return &SalesRecordService{
		records:      records,
		salespersons: salespersons,
	}
}

func (s *SalesRecordService) Create(req *models.CreateSalesRecordRequest) (*models.SalesRecord, error) {
	if s.records == nil {
		return nil, ErrStoreUnavailable
	}

	salespersonID, err := uuid.Parse(req.SalespersonID)
	if err != nil {
		return nil, fmt.Errorf("invalid salesperson ID: %w", err)
	}

	exists, err := s.salespersons.Exists(salespersonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.New("salesperson not found")
	}

	if req.SaleAmount <= 0 {
		return nil, errors.New("sale amount must be positive")
	}
	if req.ProductName == "" {
		return nil, errors.New("product name is required")
	}

	rate := defaultCommissionRate
	if req.CommissionRate != nil {
		rate = *req.CommissionRate
	}

	record := &models.SalesRecord{
		SalespersonID:    salespersonID,
		SaleAmount:       req.SaleAmount,
		ProductName:      req.ProductName,
		CustomerName:     req.CustomerName,
		SaleDate:         req.SaleDate,
		CommissionRate:   rate,
		CommissionAmount: req.SaleAmount * rate,
	}

	if err := s.records.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create sales record: %w", err)
	}
	return record, nil
}

func (s *SalesRecordService) List(salespersonID string) ([]models.SalesRecord, error) {
	if s.records == nil {
		return nil, ErrStoreUnavailable
	}
	return s.records.List(salespersonID)
}
