package dto

import (
	"family-budget-api/internal/models"
)

// Budget Request DTOs

// SetBudgetEntryRequest represents the request payload for planning one
// budget slot. Posting the same slot again replaces the planned amount.
type SetBudgetEntryRequest struct {
	Category      string `json:"category" validate:"required,expense_category"`
	Subcategory   string `json:"subcategory" validate:"omitempty,max=100"`
	PlannedAmount string `json:"planned_amount" validate:"required"`
	Month         int    `json:"month" validate:"required,min=1,max=12"`
	Year          int    `json:"year" validate:"required,min=2000,max=2100"`
}

// CopyBudgetRequest represents the request payload for copying a budget plan
// into another month
type CopyBudgetRequest struct {
	FromMonth int `json:"from_month" validate:"required,min=1,max=12"`
	FromYear  int `json:"from_year" validate:"required,min=2000,max=2100"`
	ToMonth   int `json:"to_month" validate:"required,min=1,max=12"`
	ToYear    int `json:"to_year" validate:"required,min=2000,max=2100"`
}

// Budget Response DTOs

// BudgetListResponse represents the budget plan for one period
type BudgetListResponse struct {
	Entries []models.BudgetEntry `json:"entries"`
	Month   int                  `json:"month"`
	Year    int                  `json:"year"`
}

// CopyBudgetResponse represents the outcome of a budget copy
type CopyBudgetResponse struct {
	Copied  int64  `json:"copied"`
	Message string `json:"message"`
}
