package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/avikravi/card-inventory-app/internal/assetid"
	apperrors "github.com/avikravi/card-inventory-app/internal/errors"
	"github.com/avikravi/card-inventory-app/internal/models"
)

// assetService handles asset-related business logic.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// CreateAsset intakes a new asset into the vault. The asset identifier
// is allocated from the category's sequence inside the same transaction
// that persists the row, so the count the sequence derives from cannot
// miss a commit from this connection. Two creates racing in the same
// category without a stronger lock can still collide on the identifier;
// the primary key keeps that from corrupting data.
func (s *assetService) CreateAsset(input CreateAssetInput) (*models.Asset, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "asset name is required")
	}
	code, ok := assetid.Code(input.Category)
	if !ok {
		return nil, apperrors.ErrUnknownCategory
	}
	if input.AcquisitionCost.Sign() < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "acquisition_cost must not be negative")
	}

	asset := &models.Asset{
		Category:        input.Category,
		Name:            input.Name,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Year:            input.Year,
		SetName:         input.SetName,
		CardNumber:      input.CardNumber,
		IsRookie:        input.IsRookie,
		ImageURL:        input.ImageURL,
		ListingURL:      input.ListingURL,
		AcquisitionCost: input.AcquisitionCost.Round(2),
		IsSold:          false,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if txErr := tx.Model(&models.Asset{}).Where("category = ?", input.Category).Count(&existing).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		asset.AssetID = assetid.Format(code, existing+1)

		if txErr := tx.Create(asset).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// ListAssets returns all assets ordered by identifier.
func (s *assetService) ListAssets() ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.db.Order("asset_id").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// GetAssetByID returns a single asset by its identifier.
func (s *assetService) GetAssetByID(assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.First(&asset, "asset_id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// UpdateAssetFields overwrites only the provided descriptive fields and
// returns the full updated record. Sale state and the identifier cannot
// be changed through this path.
func (s *assetService) UpdateAssetFields(assetID string, input UpdateAssetInput) (*models.Asset, error) {
	asset, err := s.GetAssetByID(assetID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "asset name must not be empty")
		}
		updates["name"] = *input.Name
	}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Year != nil {
		updates["year"] = *input.Year
	}
	if input.SetName != nil {
		updates["set_name"] = *input.SetName
	}
	if input.CardNumber != nil {
		updates["card_number"] = *input.CardNumber
	}
	if input.IsRookie != nil {
		updates["is_rookie"] = *input.IsRookie
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.ListingURL != nil {
		updates["listing_url"] = *input.ListingURL
	}

	if len(updates) == 0 {
		return asset, nil
	}

	if err := s.db.Model(asset).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetAssetByID(assetID)
}
