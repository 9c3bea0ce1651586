package services

import (
	"github.com/shopspring/decimal"

	"github.com/avikravi/card-inventory-app/internal/models"
	"github.com/avikravi/card-inventory-app/internal/pagination"
)

// CreateAssetInput holds the fields accepted when intaking a new asset.
// The asset identifier is allocated by the service, never by the caller.
type CreateAssetInput struct {
	Category        string
	Name            string
	FirstName       string
	LastName        string
	Year            int
	SetName         string
	CardNumber      string
	IsRookie        bool
	ImageURL        string
	ListingURL      string
	AcquisitionCost decimal.Decimal
}

// UpdateAssetInput holds the optional fields for a partial asset update.
// Nil fields are left untouched. Sale state (is_sold, sold_price,
// sold_date) is deliberately absent: the only route to a sale is
// SaleServicer.RecordSale.
type UpdateAssetInput struct {
	Name       *string
	FirstName  *string
	LastName   *string
	Year       *int
	SetName    *string
	CardNumber *string
	IsRookie   *bool
	ImageURL   *string
	ListingURL *string
}

// AssetServicer defines the contract for asset-related business logic.
type AssetServicer interface {
	CreateAsset(input CreateAssetInput) (*models.Asset, error)
	ListAssets() ([]models.Asset, error)
	GetAssetByID(assetID string) (*models.Asset, error)
	UpdateAssetFields(assetID string, input UpdateAssetInput) (*models.Asset, error)
}

// SaleServicer defines the contract for recording sales. RecordSale is
// the only operation that transitions an asset from held to sold.
type SaleServicer interface {
	RecordSale(assetID string, grossSalePrice, advertisingFee, shippingCost, packagingCost decimal.Decimal) (*models.SaleRecord, error)
}

// SalesSummary aggregates the sale ledger. TotalFees is the sum of
// marketplace and advertising fees across all recorded sales.
type SalesSummary struct {
	TotalNetProfit decimal.Decimal `json:"total_net_profit"`
	TotalFees      decimal.Decimal `json:"total_fees"`
	TotalSaleCount int64           `json:"total_sale_count"`
}

// ReportServicer defines the contract for ledger reporting.
type ReportServicer interface {
	Summarize() (*SalesSummary, error)
	ListSales(page pagination.PageRequest) (*pagination.PageResponse[models.SaleRecord], error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
