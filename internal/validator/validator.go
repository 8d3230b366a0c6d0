// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// purchaseDateRegex checks the YYYY-MM-DD shape only; calendar validity is
// not checked.
var purchaseDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("purchase_date", validatePurchaseDate)
		_ = v.RegisterValidation("ticker", validateTicker)
	}
}

// IsPurchaseDate reports whether s has the accepted purchase date shape.
func IsPurchaseDate(s string) bool {
	return purchaseDateRegex.MatchString(s)
}

func validatePurchaseDate(fl validator.FieldLevel) bool {
	return IsPurchaseDate(fl.Field().String())
}

func validateTicker(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
