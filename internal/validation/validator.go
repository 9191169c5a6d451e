package validation

import (
	"reflect"
	"strings"

	"family-budget-api/internal/categories"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	_ = v.RegisterValidation("income_source", validateIncomeSource)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("budget_month", validateBudgetMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateExpenseCategory validates that a category is part of the taxonomy
func validateExpenseCategory(fl validator.FieldLevel) bool {
	return categories.IsValid(fl.Field().String())
}

// validateIncomeSource validates that an income source is a known one
func validateIncomeSource(fl validator.FieldLevel) bool {
	return categories.IsValidIncomeSource(fl.Field().String())
}

// validateMoneyAmount validates that a string amount parses as a positive
// decimal with at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	if !amount.IsPositive() {
		return false
	}

	return amount.Exponent() >= -2
}

// validateBudgetMonth validates that a month value is in the 1-12 range
func validateBudgetMonth(fl validator.FieldLevel) bool {
	month := fl.Field().Int()
	return month >= 1 && month <= 12
}
