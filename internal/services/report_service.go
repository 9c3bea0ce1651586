package services

import (
	"gorm.io/gorm"

	apperrors "github.com/avikravi/card-inventory-app/internal/errors"
	"github.com/avikravi/card-inventory-app/internal/models"
	"github.com/avikravi/card-inventory-app/internal/pagination"
)

// reportService aggregates the sale ledger. Read-only; it reflects only
// committed ledger rows.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// Summarize totals the ledger: net profit, fees (marketplace plus
// advertising), and sale count. An empty ledger yields zeros.
func (s *reportService) Summarize() (*SalesSummary, error) {
	var summary SalesSummary
	err := s.db.Model(&models.SaleRecord{}).
		Select("COALESCE(SUM(net_profit), 0) AS total_net_profit, " +
			"COALESCE(SUM(marketplace_fee + advertising_fee), 0) AS total_fees, " +
			"COUNT(*) AS total_sale_count").
		Scan(&summary).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Some drivers hand aggregate results back as floats; re-round so
	// the totals stay exact 2-place decimals.
	summary.TotalNetProfit = summary.TotalNetProfit.Round(2)
	summary.TotalFees = summary.TotalFees.Round(2)

	return &summary, nil
}

// ListSales returns a paginated list of ledger entries, newest first.
func (s *reportService) ListSales(page pagination.PageRequest) (*pagination.PageResponse[models.SaleRecord], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.SaleRecord{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.SaleRecord
	if err := s.db.Order("created_at DESC").
		Scopes(pagination.Paginate(page)).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}
