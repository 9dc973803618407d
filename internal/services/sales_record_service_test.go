package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldforce/sales-agent-api/internal/models"
)

type fakeSalesRecordRepo struct {
	records []*models.SalesRecord
}

func (f *fakeSalesRecordRepo) Create(r *models.SalesRecord) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.records = append(f.records, r)
	return nil
}

func (f *fakeSalesRecordRepo) List(salespersonID string) ([]models.SalesRecord, error) {
	out := make([]models.SalesRecord, 0, len(f.records))
	for _, r := range f.records {
		if salespersonID == "" || r.SalespersonID.String() == salespersonID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func newSalesRecordFixture(t *testing.T) (*SalesRecordService, *models.Salesperson) {
	t.Helper()
	salespersons := newFakeSalespersonRepo()
	sp := &models.Salesperson{Name: "Carol Williams", Region: "East"}
	require.NoError(t, salespersons.Create(sp))
	return NewSalesRecordService(&fakeSalesRecordRepo{}, salespersons), sp
}

func TestSalesRecordService_Create(t *testing.T) {
	svc, sp := newSalesRecordFixture(t)

	t.Run("commission computed at write time", func(t *testing.T) {
		rate := 0.15
		record, err := svc.Create(&models.CreateSalesRecordRequest{
			SalespersonID:  sp.ID.String(),
			SaleAmount:     12000,
			ProductName:    "ERP System",
			CustomerName:   "SuperMart",
			SaleDate:       time.Now(),
			CommissionRate: &rate,
		})
		require.NoError(t, err)
		assert.Equal(t, 0.15, record.CommissionRate)
		assert.Equal(t, 1800.0, record.CommissionAmount)
	})

	t.Run("default commission rate", func(t *testing.T) {
		record, err := svc.Create(&models.CreateSalesRecordRequest{
			SalespersonID: sp.ID.String(),
			SaleAmount:    5000,
			ProductName:   "CRM Software",
			CustomerName:  "Health Plus",
			SaleDate:      time.Now(),
		})
		require.NoError(t, err)
		assert.Equal(t, 0.1, record.CommissionRate)
		assert.Equal(t, 500.0, record.CommissionAmount)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, err := svc.Create(&models.CreateSalesRecordRequest{
			SalespersonID: sp.ID.String(),
			SaleAmount:    0,
			ProductName:   "CRM Software",
		})
		assert.Error(t, err)
	})

	t.Run("missing product name rejected", func(t *testing.T) {
		_, err := svc.Create(&models.CreateSalesRecordRequest{
			SalespersonID: sp.ID.String(),
			SaleAmount:    5000,
		})
		assert.Error(t, err)
	})

	t.Run("unknown salesperson rejected", func(t *testing.T) {
		_, err := svc.Create(&models.CreateSalesRecordRequest{
			SalespersonID: uuid.NewString(),
			SaleAmount:    5000,
			ProductName:   "CRM Software",
		})
		assert.Error(t, err)
	})

	t.Run("nil repo", func(t *testing.T) {
		svc := NewSalesRecordService(nil, nil)
		_, err := svc.Create(&models.CreateSalesRecordRequest{})
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestSalesRecordService_List(t *testing.T) {
	svc, sp := newSalesRecordFixture(t)

	_, err := svc.Create(&models.CreateSalesRecordRequest{
		SalespersonID: sp.ID.String(),
		SaleAmount:    5000,
		ProductName:   "CRM Software",
		CustomerName:  "SuperMart",
		SaleDate:      time.Now(),
	})
	require.NoError(t, err)

	records, err := svc.List(sp.ID.String())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = svc.List(uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, records)
}
