// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/avikravi/card-inventory-app/internal/assetid"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_category", validateAssetCategory)
	}
}

func validateAssetCategory(fl validator.FieldLevel) bool {
	return assetid.IsValidCategory(fl.Field().String())
}
