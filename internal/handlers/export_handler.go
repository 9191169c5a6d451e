package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"family-budget-api/internal/errors"
	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const exportPageSize = 500

// ExportHandler handles data export and backup endpoints
type ExportHandler struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	incomeRepo  repositories.IncomeRepositoryInterface
	budgetRepo  repositories.BudgetRepositoryInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(
	expenseRepo repositories.ExpenseRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
) *ExportHandler {
	return &ExportHandler{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		budgetRepo:  budgetRepo,
	}
}

// backupPayload is the JSON structure of a full account backup
type backupPayload struct {
	ExportedAt time.Time            `json:"exported_at"`
	Expenses   []models.Expense     `json:"expenses"`
	Income     []models.Income      `json:"income"`
	Budgets    []models.BudgetEntry `json:"budgets"`
}

// ExportExpensesCSV streams all expenses of the authenticated user as CSV
//
// Method: GET /api/v1/export/expenses
// Authentication: Required
func (h *ExportHandler) ExportExpensesCSV(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenses, err := h.collectExpenses(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "category", "subcategory", "amount", "description", "tags", "expense_date"}); err != nil {
		return SendSystemError(c, err)
	}

	for i := range expenses {
		e := &expenses[i]
		record := []string{
			e.ID.String(),
			e.Category,
			e.Subcategory,
			e.Amount.StringFixed(2),
			e.Description,
			e.Tags,
			e.ExpenseDate.Format(dateLayout),
		}
		if err := w.Write(record); err != nil {
			return SendSystemError(c, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return SendSystemError(c, err)
	}

	filename := fmt.Sprintf("expenses-%s.csv", time.Now().Format(dateLayout))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportBackupJSON returns a full JSON backup of the authenticated user's data
//
// Method: GET /api/v1/export/backup
// Authentication: Required
//
// The backup covers expenses, income records and the budget plans of the
// current and previous twelve months.
func (h *ExportHandler) ExportBackupJSON(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenses, err := h.collectExpenses(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	income, err := h.collectIncome(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	budgets := make([]models.BudgetEntry, 0)
	period := time.Now()
	for i := 0; i < 13; i++ {
		entries, err := h.budgetRepo.GetByPeriod(userID, int(period.Month()), period.Year())
		if err != nil {
			return SendSystemError(c, err)
		}
		budgets = append(budgets, entries...)
		period = period.AddDate(0, -1, 0)
	}

	payload := backupPayload{
		ExportedAt: time.Now().UTC(),
		Expenses:   expenses,
		Income:     income,
		Budgets:    budgets,
	}

	filename := fmt.Sprintf("budget-backup-%s.json", time.Now().Format(dateLayout))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.JSON(http.StatusOK, payload)
}

// collectExpenses pages through the full expense history
func (h *ExportHandler) collectExpenses(userID uuid.UUID) ([]models.Expense, error) {
	all := make([]models.Expense, 0)
	offset := 0
	for {
		page, total, err := h.expenseRepo.GetByUserID(userID, offset, exportPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		offset += len(page)
		if len(page) == 0 || int64(offset) >= total {
			return all, nil
		}
	}
}

// collectIncome pages through the full income history
func (h *ExportHandler) collectIncome(userID uuid.UUID) ([]models.Income, error) {
	all := make([]models.Income, 0)
	offset := 0
	for {
		page, total, err := h.incomeRepo.GetByUserID(userID, offset, exportPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		offset += len(page)
		if len(page) == 0 || int64(offset) >= total {
			return all, nil
		}
	}
}
