package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Monetary fields serialize as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Asset represents one physical collectible card in the vault.
//
// AssetID is a human-readable, category-coded identifier
// (e.g. "BSB-00000042") assigned once at creation and never changed.
// IsSold and SoldPrice are only ever written by the sale service,
// inside the same transaction that appends the matching SaleRecord.
type Asset struct {
	AssetID  string `gorm:"column:asset_id;primaryKey" json:"asset_id"`
	Category string `gorm:"not null;index" json:"category"`

	// Descriptive attributes, freely editable via PATCH.
	Name       string `gorm:"not null" json:"name"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Year       int    `json:"year"`
	SetName    string `json:"set_name"`
	CardNumber string `json:"card_number"`
	IsRookie   bool   `gorm:"not null;default:false" json:"is_rookie"`
	ImageURL   string `json:"image_url"`
	ListingURL string `json:"listing_url"`

	AcquisitionCost decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"acquisition_cost"`

	IsSold    bool                `gorm:"not null;default:false" json:"is_sold"`
	SoldPrice decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"sold_price"`
	SoldDate  *time.Time          `json:"sold_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
