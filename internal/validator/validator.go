// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"penny/internal/diffscore"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("granularity", validateGranularity)
		_ = v.RegisterValidation("forecast_kind", validateForecastKind)
		_ = v.RegisterValidation("expansion_tier", validateExpansionTier)
		_ = v.RegisterValidation("category_score", validateCategoryScore)
	}
}

func validateGranularity(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "weekly", "monthly":
		return true
	}
	return false
}

func validateForecastKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "spending", "income", "all":
		return true
	}
	return false
}

func validateExpansionTier(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "primary", "secondary":
		return true
	}
	return false
}

func validateCategoryScore(fl validator.FieldLevel) bool {
	cs, ok := fl.Field().Interface().(diffscore.CategoryScore)
	if !ok {
		return false
	}
	return cs.Score >= 0 && cs.Score <= 1
}
