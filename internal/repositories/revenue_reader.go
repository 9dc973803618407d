package repositories

import (
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/core/analytics"
)

// revenueReader is the GORM-backed implementation of
// analytics.RevenueReader: accumulated revenue per salesperson, top
// earner first.
type revenueReader struct {
	db *gorm.DB
}

func NewRevenueReader(db *gorm.DB) analytics.RevenueReader {
	return &revenueReader{db: db}
}

func (r *revenueReader) FetchRevenueSeries() ([]analytics.Point, error) {
	var series []analytics.Point
	err := r.db.Table("salespersons").
		Select("name, total_revenue AS value").
		Order("total_revenue DESC").
		Scan(&series).Error
	if err != nil {
		return nil, err
	}
	return series, nil
}
