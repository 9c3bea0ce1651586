package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/avikravi/card-inventory-app/internal/errors"
	"github.com/avikravi/card-inventory-app/internal/fees"
	"github.com/avikravi/card-inventory-app/internal/models"
)

// saleService records sales: the held-to-sold transition on an asset
// and the matching ledger append, committed as one unit.
type saleService struct {
	db *gorm.DB
}

// NewSaleService creates a new SaleServicer.
func NewSaleService(db *gorm.DB) SaleServicer {
	return &saleService{db: db}
}

// RecordSale marks an asset sold and appends the sale to the ledger.
//
// The asset flags and the ledger row are written inside one database
// transaction: either both become visible or neither does. The asset
// update is guarded by `is_sold = false` and re-checked via its
// affected-row count inside the transaction, so of two concurrent
// sales of the same asset exactly one commits and the other observes
// ErrAssetAlreadySold. Sales of different assets never block each
// other. There is no automatic retry; a failed call leaves the asset
// held and the ledger untouched.
func (s *saleService) RecordSale(assetID string, grossSalePrice, advertisingFee, shippingCost, packagingCost decimal.Decimal) (*models.SaleRecord, error) {
	if grossSalePrice.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "sold_price must be greater than zero")
	}
	if advertisingFee.Sign() < 0 || shippingCost.Sign() < 0 || packagingCost.Sign() < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "fees and costs must not be negative")
	}

	var asset models.Asset
	if err := s.db.First(&asset, "asset_id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if asset.IsSold {
		return nil, apperrors.ErrAssetAlreadySold
	}

	gross := grossSalePrice.Round(2)
	marketplaceFee := fees.MarketplaceFee(gross)
	record := &models.SaleRecord{
		AssetID:        assetID,
		GrossSalePrice: gross,
		MarketplaceFee: marketplaceFee,
		AdvertisingFee: advertisingFee.Round(2),
		ShippingCost:   shippingCost.Round(2),
		PackagingCost:  packagingCost.Round(2),
	}
	record.NetProfit = fees.NetProfit(gross, marketplaceFee,
		record.AdvertisingFee, record.ShippingCost, record.PackagingCost, asset.AcquisitionCost)

	soldDate := time.Now()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Asset{}).
			Where("asset_id = ? AND is_sold = ?", assetID, false).
			Updates(map[string]interface{}{
				"is_sold":    true,
				"sold_price": gross,
				"sold_date":  soldDate,
			})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		// Zero rows means another sale won between our precondition
		// read and this update.
		if res.RowsAffected == 0 {
			return apperrors.ErrAssetAlreadySold
		}

		if txErr := tx.Create(record).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
