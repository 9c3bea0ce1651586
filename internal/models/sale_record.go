package models

import "github.com/shopspring/decimal"

// SaleRecord is one immutable row of the sale ledger, created exactly
// once per completed sale and never updated or deleted afterward. The
// ledger is the source of truth for realized-gain accounting; asset
// flags are derived state kept consistent by the sale service.
//
// The schema does not forbid multiple records per asset; the sale
// service's guarded unsold-to-sold transition guarantees at most one.
type SaleRecord struct {
	Base
	AssetID        string          `gorm:"not null;index" json:"asset_id"`
	GrossSalePrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"gross_sale_price"`
	MarketplaceFee decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"marketplace_fee"`
	AdvertisingFee decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"advertising_fee"`
	ShippingCost   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"shipping_cost"`
	PackagingCost  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"packaging_cost"`
	NetProfit      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"net_profit"`
}
