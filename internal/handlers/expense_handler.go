package handlers

import (
	"net/http"
	"time"

	"family-budget-api/internal/categories"
	"family-budget-api/internal/dto"
	"family-budget-api/internal/errors"
	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories"
	"family-budget-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	dateLayout       = "2006-01-02"
)

// ExpenseHandler handles expense CRUD endpoints
type ExpenseHandler struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	metrics     services.MetricsRecorderInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	expenseRepo repositories.ExpenseRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseRepo: expenseRepo,
		metrics:     metrics,
	}
}

// CreateExpense records a new expense for the authenticated user
//
// Method: POST /api/v1/expenses
// Authentication: Required
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.Subcategory != "" && !categories.IsValidSubcategory(req.Category, req.Subcategory) {
		return SendError(c, errors.ValidationInvalidCategory,
			errors.WithDetails("Subcategory does not belong to the category"))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return SendError(c, errors.ValidationInvalidAmount)
	}

	expenseDate, err := time.Parse(dateLayout, req.ExpenseDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	expense := &models.Expense{
		UserID:      userID,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Amount:      amount,
		Description: req.Description,
		Tags:        req.Tags,
		ExpenseDate: expenseDate,
	}

	if err := h.expenseRepo.Create(expense); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("expense_recorded", map[string]string{"category": expense.Category})

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    expense,
		Message: "Expense recorded successfully",
	})
}

// ListExpenses retrieves paginated expenses for the authenticated user
//
// Method: GET /api/v1/expenses
// Authentication: Required
//
// Query parameters:
//   - offset: Pagination offset (default: 0)
//   - limit: Number of results per page (default: 20, max: 100)
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntQueryParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	limit := getIntQueryParam(c, "limit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	expenses, total, err := h.expenseRepo.GetByUserID(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses: expenses,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

// UpdateExpense edits an existing expense owned by the authenticated user
//
// Method: PUT /api/v1/expenses/:id
// Authentication: Required
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseRepo.GetByID(expenseID)
	if err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	if expense.UserID != userID {
		return SendError(c, errors.ExpenseNotOwned)
	}

	if req.Category != "" {
		expense.Category = req.Category
		expense.Subcategory = ""
	}
	if req.Subcategory != "" {
		if !categories.IsValidSubcategory(expense.Category, req.Subcategory) {
			return SendError(c, errors.ValidationInvalidCategory,
				errors.WithDetails("Subcategory does not belong to the category"))
		}
		expense.Subcategory = req.Subcategory
	}
	if req.Amount != "" {
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil || !amount.IsPositive() {
			return SendError(c, errors.ValidationInvalidAmount)
		}
		expense.Amount = amount
	}
	if req.Description != "" {
		expense.Description = req.Description
	}
	if req.Tags != "" {
		expense.Tags = req.Tags
	}
	if req.ExpenseDate != "" {
		expenseDate, err := time.Parse(dateLayout, req.ExpenseDate)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate)
		}
		expense.ExpenseDate = expenseDate
	}

	if err := h.expenseRepo.Update(expense); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    expense,
		Message: "Expense updated successfully",
	})
}

// DeleteExpense removes an expense owned by the authenticated user
//
// Method: DELETE /api/v1/expenses/:id
// Authentication: Required
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	if err := h.expenseRepo.Delete(expenseID, userID); err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted successfully"})
}
