package dto

import (
	"family-budget-api/internal/models"
)

// Income Request DTOs

// CreateIncomeRequest represents the request payload for recording income
type CreateIncomeRequest struct {
	Source      string `json:"source" validate:"required,income_source"`
	Amount      string `json:"amount" validate:"required,money_amount"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	IncomeDate  string `json:"income_date" validate:"required,datetime=2006-01-02"`
}

// Income Response DTOs

// IncomeListResponse represents a paginated list of income records
type IncomeListResponse struct {
	Records []models.Income `json:"records"`
	Total   int64           `json:"total"`
	Offset  int             `json:"offset"`
	Limit   int             `json:"limit"`
}
