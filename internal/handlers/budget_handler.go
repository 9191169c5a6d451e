package handlers

import (
	"fmt"
	"net/http"

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

// BudgetHandler handles budget planning endpoints
type BudgetHandler struct {
	budgetRepo repositories.BudgetRepositoryInterface
	metrics    services.MetricsRecorderInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetRepo: budgetRepo,
		metrics:    metrics,
	}
}

// SetBudgetEntry plans or replaces one budget slot for a period
//
// Method: POST /api/v1/budget
// Authentication: Required
//
// Posting the same (category, subcategory, month, year) slot again replaces
// the planned amount.
func (h *BudgetHandler) SetBudgetEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SetBudgetEntryRequest
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

	plannedAmount, err := decimal.NewFromString(req.PlannedAmount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount,
			errors.WithDetails("Planned amount must be a decimal number"))
	}
	if plannedAmount.IsNegative() {
		return SendError(c, errors.BudgetNegativeAmount)
	}

	entry := &models.BudgetEntry{
		UserID:        userID,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		PlannedAmount: plannedAmount,
		Month:         req.Month,
		Year:          req.Year,
	}

	if err := h.budgetRepo.Upsert(entry); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("budget_entry_upserted", map[string]string{"category": entry.Category})

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    entry,
		Message: "Budget entry saved successfully",
	})
}

// GetBudget retrieves the budget plan for a period
//
// Method: GET /api/v1/budget
// Authentication: Required
//
// Query parameters:
//   - month: Budget month (default: current month)
//   - year: Budget year (default: current year)
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month, year, err := getPeriodParams(c)
	if err != nil {
		return SendError(c, errors.BudgetInvalidPeriod, errors.WithDetails(err.Error()))
	}

	entries, err := h.budgetRepo.GetByPeriod(userID, month, year)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetListResponse{
		Entries: entries,
		Month:   month,
		Year:    year,
	})
}

// DeleteBudgetEntry removes one budget slot owned by the authenticated user
//
// Method: DELETE /api/v1/budget/:id
// Authentication: Required
func (h *BudgetHandler) DeleteBudgetEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget entry ID"))
	}

	if err := h.budgetRepo.Delete(entryID, userID); err != nil {
		if err == repositories.ErrBudgetEntryNotFound {
			return SendError(c, errors.BudgetEntryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget entry deleted successfully"})
}

// CopyBudget copies the budget plan of one period into another
//
// Method: POST /api/v1/budget/copy
// Authentication: Required
//
// Slots already planned in the target period are left untouched.
func (h *BudgetHandler) CopyBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CopyBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.FromMonth == req.ToMonth && req.FromYear == req.ToYear {
		return SendError(c, errors.BudgetInvalidPeriod,
			errors.WithDetails("Source and target periods must differ"))
	}

	copied, err := h.budgetRepo.CopyToPeriod(userID, req.FromMonth, req.FromYear, req.ToMonth, req.ToYear)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CopyBudgetResponse{
		Copied: copied,
		Message: fmt.Sprintf("Copied %d budget entries from %d-%02d to %d-%02d",
			copied, req.FromYear, req.FromMonth, req.ToYear, req.ToMonth),
	})
}
