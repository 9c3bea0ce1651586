package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/avikravi/card-inventory-app/internal/models"
	"github.com/avikravi/card-inventory-app/internal/testutil"
)

func TestRecordSale(t *testing.T) {
	t.Run("fee_and_profit_computation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSaleService(db)
		asset := testutil.CreateTestAsset(t, db, testutil.Dec(t, "10.00"))

		record, err := svc.RecordSale(asset.AssetID,
			testutil.Dec(t, "100.00"), testutil.Dec(t, "5"), testutil.Dec(t, "4"), testutil.Dec(t, "0.5"))
		testutil.AssertNoError(t, err)

		// marketplace_fee = round(100*0.1325 + 0.30, 2) = 13.55
		testutil.AssertDecimalEqual(t, "13.55", record.MarketplaceFee)
		// net_profit = 100 - 13.55 - 5 - 4 - 0.5 - 10 = 66.95
		testutil.AssertDecimalEqual(t, "66.95", record.NetProfit)
		testutil.AssertDecimalEqual(t, "100.00", record.GrossSalePrice)
		if record.ID == "" {
			t.Fatal("expected ledger record to get an ID")
		}

		var updated models.Asset
		testutil.AssertNoError(t, db.First(&updated, "asset_id = ?", asset.AssetID).Error)
		if !updated.IsSold {
			t.Error("expected asset to be marked sold")
		}
		if !updated.SoldPrice.Valid {
			t.Fatal("expected sold_price to be set")
		}
		testutil.AssertDecimalEqual(t, "100.00", updated.SoldPrice.Decimal)
		if updated.SoldDate == nil {
			t.Error("expected sold_date to be set")
		}
	})

	t.Run("optional_costs_default_to_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSaleService(db)
		asset := testutil.CreateTestAsset(t, db, testutil.Dec(t, "5.00"))

		record, err := svc.RecordSale(asset.AssetID,
			testutil.Dec(t, "20.00"), decimal.Zero, decimal.Zero, decimal.Zero)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, "2.95", record.MarketplaceFee)
		testutil.AssertDecimalEqual(t, "12.05", record.NetProfit)
		testutil.AssertDecimalEqual(t, "0", record.AdvertisingFee)
		testutil.AssertDecimalEqual(t, "0", record.ShippingCost)
		testutil.AssertDecimalEqual(t, "0", record.PackagingCost)
	})

	t.Run("negative_profit_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSaleService(db)
		asset := testutil.CreateTestAsset(t, db, testutil.Dec(t, "50.00"))

		record, err := svc.RecordSale(asset.AssetID,
			testutil.Dec(t, "10.00"), decimal.Zero, decimal.Zero, decimal.Zero)
		testutil.AssertNoError(t, err)

		// 10 - 1.63 - 50 = -41.63
		testutil.AssertDecimalEqual(t, "-41.63", record.NetProfit)
	})

	t.Run("double_sale_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSaleService(db)
		asset := testutil.CreateTestAsset(t, db, testutil.Dec(t, "10.00"))

		_, err := svc.RecordSale(asset.AssetID,
			testutil.Dec(t, "100.00"), decimal.Zero, decimal.Zero, decimal.Zero)
		testutil.AssertNoError(t, err)

		_, err = svc.RecordSale(asset.AssetID,
			testutil.Dec(t, "250.00"), decimal.Zero, decimal.Zero, decimal.Zero)
		testutil.AssertAppError(t, err, "ASSET_ALREADY_SOLD")

		// The losing call must not have added a ledger row or touched the price.
		var ledgerCount int64
		db.Model(&models.SaleRecord{}).Where("asset_id = ?", asset.AssetID).Count(&ledgerCount)
		if ledgerCount != 1 {
			t.Errorf("expected exactly 1 ledger record, got %d", ledgerCount)
		}

		var updated models.Asset
		testutil.AssertNoError(t, db.First(&updated, "asset_id = ?", asset.AssetID).Error)
		testutil.AssertDecimalEqual(t, "100.00", updated.SoldPrice.Decimal)
	})

	t.Run("asset_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSaleService(db)

		_, err := svc.RecordSale("NONEXISTENT-ID",
			testutil.Dec(t, "10.00"), decimal.Zero, decimal.Zero, decimal.Zero)
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")

		var ledgerCount int64
		db.Model(&models.SaleRecord{}).Count(&ledgerCount)
		if ledgerCount != 0 {
			t.Errorf("expected empty ledger, got %d records", ledgerCount)
		}
	})

	t.Run("rejects_non_positive_price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSaleService(db)
		asset := testutil.CreateTestAsset(t, db, testutil.Dec(t, "10.00"))

		_, err := svc.RecordSale(asset.AssetID, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.RecordSale(asset.AssetID, testutil.Dec(t, "-5"), decimal.Zero, decimal.Zero, decimal.Zero)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		var updated models.Asset
		testutil.AssertNoError(t, db.First(&updated, "asset_id = ?", asset.AssetID).Error)
		if updated.IsSold {
			t.Error("rejected sale must not mark the asset sold")
		}
	})

	t.Run("rejects_negative_costs", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSaleService(db)
		asset := testutil.CreateTestAsset(t, db, testutil.Dec(t, "10.00"))

		_, err := svc.RecordSale(asset.AssetID,
			testutil.Dec(t, "20.00"), testutil.Dec(t, "-1"), decimal.Zero, decimal.Zero)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("ledger_failure_rolls_back_asset_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSaleService(db)
		asset := testutil.CreateTestAsset(t, db, testutil.Dec(t, "10.00"))

		// Force the ledger append to fail after the asset update succeeds.
		if err := db.Migrator().DropTable(&models.SaleRecord{}); err != nil {
			t.Fatalf("failed to drop ledger table: %v", err)
		}

		_, err := svc.RecordSale(asset.AssetID,
			testutil.Dec(t, "100.00"), decimal.Zero, decimal.Zero, decimal.Zero)
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")

		// The transaction must have rolled back: the asset is still held.
		var updated models.Asset
		testutil.AssertNoError(t, db.First(&updated, "asset_id = ?", asset.AssetID).Error)
		if updated.IsSold {
			t.Error("expected asset to remain unsold after failed ledger append")
		}
		if updated.SoldPrice.Valid {
			t.Error("expected sold_price to remain unset after rollback")
		}
	})
}
