package dto

import (
	"family-budget-api/internal/models"
)

// Expense Request DTOs

// CreateExpenseRequest represents the request payload for recording an expense
type CreateExpenseRequest struct {
	Category    string `json:"category" validate:"required,expense_category"`
	Subcategory string `json:"subcategory" validate:"omitempty,max=100"`
	Amount      string `json:"amount" validate:"required,money_amount"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Tags        string `json:"tags" validate:"omitempty,max=255"`
	ExpenseDate string `json:"expense_date" validate:"required,datetime=2006-01-02"`
}

// UpdateExpenseRequest represents the request payload for editing an expense
type UpdateExpenseRequest struct {
	Category    string `json:"category" validate:"omitempty,expense_category"`
	Subcategory string `json:"subcategory" validate:"omitempty,max=100"`
	Amount      string `json:"amount" validate:"omitempty,money_amount"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Tags        string `json:"tags" validate:"omitempty,max=255"`
	ExpenseDate string `json:"expense_date" validate:"omitempty,datetime=2006-01-02"`
}

// Expense Response DTOs

// ExpenseListResponse represents a paginated list of expenses
type ExpenseListResponse struct {
	Expenses []models.Expense `json:"expenses"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
