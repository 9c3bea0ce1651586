package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/avikravi/card-inventory-app/internal/assetid"
	"github.com/avikravi/card-inventory-app/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal, failing the test on malformed input.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal literal %q: %v", s, err)
	}
	return d
}

// CreateTestAsset creates an unsold Baseball asset with the given acquisition cost.
func CreateTestAsset(t *testing.T, db *gorm.DB, acquisitionCost decimal.Decimal) *models.Asset {
	t.Helper()
	return CreateTestAssetInCategory(t, db, "Baseball", acquisitionCost)
}

// CreateTestAssetInCategory creates an unsold asset in the given category.
// Identifiers use the fixture counter, so they never collide with each
// other; tests that assert on allocated identifiers should create assets
// through the asset service instead.
func CreateTestAssetInCategory(t *testing.T, db *gorm.DB, category string, acquisitionCost decimal.Decimal) *models.Asset {
	t.Helper()

	code, ok := assetid.Code(category)
	if !ok {
		t.Fatalf("unknown test category %q", category)
	}

	n := nextID()
	asset := &models.Asset{
		AssetID:         assetid.Format(code, n),
		Category:        category,
		Name:            fmt.Sprintf("Test Card %d", n),
		Year:            1989,
		SetName:         "Test Set",
		CardNumber:      fmt.Sprintf("%d", n),
		AcquisitionCost: acquisitionCost,
		IsSold:          false,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestSaleRecord appends a ledger row directly, bypassing the sale
// service. The caller is responsible for keeping the asset flags consistent.
func CreateTestSaleRecord(t *testing.T, db *gorm.DB, assetID string, gross, marketplaceFee, advertisingFee, netProfit decimal.Decimal) *models.SaleRecord {
	t.Helper()

	record := &models.SaleRecord{
		AssetID:        assetID,
		GrossSalePrice: gross,
		MarketplaceFee: marketplaceFee,
		AdvertisingFee: advertisingFee,
		ShippingCost:   decimal.Zero,
		PackagingCost:  decimal.Zero,
		NetProfit:      netProfit,
	}
	record.CreatedAt = time.Now()
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test sale record: %v", err)
	}
	return record
}
