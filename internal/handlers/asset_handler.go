package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/avikravi/card-inventory-app/internal/errors"
	"github.com/avikravi/card-inventory-app/internal/services"
)

// AssetHandler handles asset-related requests.
type AssetHandler struct {
	assetService services.AssetServicer
	saleService  services.SaleServicer
	auditService services.AuditServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer, saleService services.SaleServicer, auditService services.AuditServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService, saleService: saleService, auditService: auditService}
}

// CreateAssetRequest represents the request payload for intaking a new asset.
// Monetary fields are validated in the service so they stay decimals end to end.
type CreateAssetRequest struct {
	Category        string          `json:"category" binding:"required,asset_category"`
	Name            string          `json:"name" binding:"required,min=1,max=200"`
	FirstName       string          `json:"first_name" binding:"max=100"`
	LastName        string          `json:"last_name" binding:"max=100"`
	Year            int             `json:"year" binding:"omitempty,gte=1800,lte=2100"`
	SetName         string          `json:"set_name" binding:"max=200"`
	CardNumber      string          `json:"card_number" binding:"max=50"`
	IsRookie        bool            `json:"is_rookie"`
	ImageURL        string          `json:"image_url" binding:"max=2000"`
	ListingURL      string          `json:"listing_url" binding:"max=2000"`
	AcquisitionCost decimal.Decimal `json:"acquisition_cost"`
}

// UpdateAssetRequest represents a partial update of an asset's descriptive
// fields. Sale state is deliberately not bindable here; the only route to
// a sale is PUT /assets/{asset_id}.
type UpdateAssetRequest struct {
	Name       *string `json:"name"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Year       *int    `json:"year" binding:"omitempty,gte=1800,lte=2100"`
	SetName    *string `json:"set_name"`
	CardNumber *string `json:"card_number"`
	IsRookie   *bool   `json:"is_rookie"`
	ImageURL   *string `json:"image_url"`
	ListingURL *string `json:"listing_url"`
}

// RecordSaleRequest represents the request payload for recording a sale.
type RecordSaleRequest struct {
	SoldPrice      decimal.Decimal `json:"sold_price"`
	AdvertisingFee decimal.Decimal `json:"advertising_fee"`
	ShippingCost   decimal.Decimal `json:"shipping_cost"`
	PackagingCost  decimal.Decimal `json:"packaging_cost"`
}

// ListAssets handles listing all assets.
// @Summary     List assets
// @Description List all assets in the vault, ordered by identifier
// @Tags        assets
// @Produce     json
// @Success     200 {object} map[string][]models.Asset "All assets"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.ListAssets()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": assets})
}

// CreateAsset handles intaking a new asset.
// @Summary     Create asset
// @Description Intake a new asset; its identifier is allocated from the category sequence
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Created asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(services.CreateAssetInput{
		Category:        req.Category,
		Name:            req.Name,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Year:            req.Year,
		SetName:         req.SetName,
		CardNumber:      req.CardNumber,
		IsRookie:        req.IsRookie,
		ImageURL:        req.ImageURL,
		ListingURL:      req.ListingURL,
		AcquisitionCost: req.AcquisitionCost,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_ASSET", "asset", asset.AssetID, c.ClientIP(),
		map[string]interface{}{"category": asset.Category, "name": asset.Name})

	c.JSON(http.StatusCreated, asset)
}

// UpdateAsset handles a partial update of an asset's descriptive fields.
// @Summary     Update asset fields
// @Description Overwrite only the provided descriptive fields; sale state cannot be changed here
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       asset_id path  string             true "Asset ID"
// @Param       request  body  UpdateAssetRequest true "Fields to update"
// @Success     200 {object} models.Asset "Updated asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{asset_id} [patch]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	assetID := c.Param("asset_id")

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAssetFields(assetID, services.UpdateAssetInput{
		Name:       req.Name,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Year:       req.Year,
		SetName:    req.SetName,
		CardNumber: req.CardNumber,
		IsRookie:   req.IsRookie,
		ImageURL:   req.ImageURL,
		ListingURL: req.ListingURL,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_ASSET", "asset", asset.AssetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, asset)
}

// RecordSale handles the held-to-sold transition of an asset.
// @Summary     Record sale
// @Description Mark an asset sold and append the sale to the accounting ledger in one transaction
// @Tags        sales
// @Accept      json
// @Produce     json
// @Param       asset_id path  string            true "Asset ID"
// @Param       request  body  RecordSaleRequest true "Sale price and cost breakdown"
// @Success     201 {object} models.SaleRecord "Ledger entry"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Asset already sold"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{asset_id} [put]
func (h *AssetHandler) RecordSale(c *gin.Context) {
	assetID := c.Param("asset_id")

	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.saleService.RecordSale(assetID, req.SoldPrice, req.AdvertisingFee, req.ShippingCost, req.PackagingCost)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("RECORD_SALE", "sale_record", record.ID, c.ClientIP(),
		map[string]interface{}{"asset_id": record.AssetID, "gross_sale_price": record.GrossSalePrice.String()})

	c.JSON(http.StatusCreated, record)
}
