package handlers

import (
	"net/http"
	"time"

	"family-budget-api/internal/dto"
	"family-budget-api/internal/errors"
	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories"
	"family-budget-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// IncomeHandler handles income CRUD endpoints
type IncomeHandler struct {
	incomeRepo repositories.IncomeRepositoryInterface
	metrics    services.MetricsRecorderInterface
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(
	incomeRepo repositories.IncomeRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *IncomeHandler {
	return &IncomeHandler{
		incomeRepo: incomeRepo,
		metrics:    metrics,
	}
}

// CreateIncome records a new income entry for the authenticated user
//
// Method: POST /api/v1/income
// Authentication: Required
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return SendError(c, errors.ValidationInvalidAmount)
	}

	incomeDate, err := time.Parse(dateLayout, req.IncomeDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	income := &models.Income{
		UserID:      userID,
		Source:      req.Source,
		Amount:      amount,
		Description: req.Description,
		IncomeDate:  incomeDate,
	}

	if err := h.incomeRepo.Create(income); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("income_recorded", map[string]string{"source": income.Source})

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    income,
		Message: "Income recorded successfully",
	})
}

// ListIncome retrieves paginated income records for the authenticated user
//
// Method: GET /api/v1/income
// Authentication: Required
func (h *IncomeHandler) ListIncome(c echo.Context) error {
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

	records, total, err := h.incomeRepo.GetByUserID(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.IncomeListResponse{
		Records: records,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	})
}

// DeleteIncome removes an income record owned by the authenticated user
//
// Method: DELETE /api/v1/income/:id
// Authentication: Required
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.IncomeInvalidID)
	}

	if err := h.incomeRepo.Delete(incomeID, userID); err != nil {
		if err == repositories.ErrIncomeNotFound {
			return SendError(c, errors.IncomeNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Income record deleted successfully"})
}
