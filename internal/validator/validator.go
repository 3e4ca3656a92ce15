// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"moneybook/internal/models"
	"moneybook/internal/period"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("period_unit", validatePeriodUnit)
	}
}

// transaction_type accepts INCOME or EXPENSE in any case.
func validateTransactionType(fl validator.FieldLevel) bool {
	_, err := models.ParseTransactionType(fl.Field().String())
	return err == nil
}

// period_unit accepts DAYS, WEEKS, MONTHS or YEARS in any case. Pair it with
// omitempty when the unit is optional.
func validatePeriodUnit(fl validator.FieldLevel) bool {
	u, err := period.ParseUnit(fl.Field().String())
	return err == nil && u != ""
}
