package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExportHandler(t *testing.T) {
	suite.Run(t, new(ExportHandlerSuite))
}

type ExportHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	expenseRepo *repository_mocks.MockExpenseRepositoryInterface
	incomeRepo  *repository_mocks.MockIncomeRepositoryInterface
	budgetRepo  *repository_mocks.MockBudgetRepositoryInterface
	handler     *ExportHandler
	e           *echo.Echo
	userID      uuid.UUID
}

func (s *ExportHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.incomeRepo = repository_mocks.NewMockIncomeRepositoryInterface(s.ctrl)
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.handler = NewExportHandler(s.expenseRepo, s.incomeRepo, s.budgetRepo)
	s.e = echo.New()
	s.userID = uuid.New()
}

func (s *ExportHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExportHandlerSuite) newContext(path string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return rec, c
}

func (s *ExportHandlerSuite) TestExportExpensesCSV() {
	expenses := []models.Expense{
		{
			ID:          uuid.New(),
			UserID:      s.userID,
			Category:    "Food",
			Subcategory: "Groceries",
			Amount:      decimal.RequireFromString("45.50"),
			Description: "weekly shop",
			ExpenseDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	s.expenseRepo.EXPECT().GetByUserID(s.userID, 0, exportPageSize).Return(expenses, int64(1), nil)

	rec, c := s.newContext("/export/expenses")

	s.NoError(s.handler.ExportExpensesCSV(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "attachment")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	s.Len(lines, 2)
	s.Equal("id,category,subcategory,amount,description,tags,expense_date", lines[0])
	s.Contains(lines[1], "Food")
	s.Contains(lines[1], "45.50")
	s.Contains(lines[1], "2026-08-10")
}

func (s *ExportHandlerSuite) TestExportExpensesCSV_PagesThroughHistory() {
	firstPage := make([]models.Expense, exportPageSize)
	for i := range firstPage {
		firstPage[i] = models.Expense{
			ID:          uuid.New(),
			UserID:      s.userID,
			Category:    "Food",
			Amount:      decimal.NewFromInt(10),
			ExpenseDate: time.Now(),
		}
	}
	secondPage := []models.Expense{
		{ID: uuid.New(), UserID: s.userID, Category: "Pets", Amount: decimal.NewFromInt(5), ExpenseDate: time.Now()},
	}
	total := int64(exportPageSize + 1)

	s.expenseRepo.EXPECT().GetByUserID(s.userID, 0, exportPageSize).Return(firstPage, total, nil)
	s.expenseRepo.EXPECT().GetByUserID(s.userID, exportPageSize, exportPageSize).Return(secondPage, total, nil)

	rec, c := s.newContext("/export/expenses")

	s.NoError(s.handler.ExportExpensesCSV(c))
	s.Equal(http.StatusOK, rec.Code)

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	s.Len(lines, exportPageSize+2) // header plus every expense
}

func (s *ExportHandlerSuite) TestExportBackupJSON() {
	expenses := []models.Expense{
		{ID: uuid.New(), UserID: s.userID, Category: "Food", Amount: decimal.NewFromInt(20), ExpenseDate: time.Now()},
	}
	income := []models.Income{
		{ID: uuid.New(), UserID: s.userID, Source: "Salary", Amount: decimal.NewFromInt(4000), IncomeDate: time.Now()},
	}
	budget := []models.BudgetEntry{
		{ID: uuid.New(), UserID: s.userID, Category: "Food", PlannedAmount: decimal.NewFromInt(450), Month: 8, Year: 2026},
	}

	s.expenseRepo.EXPECT().GetByUserID(s.userID, 0, exportPageSize).Return(expenses, int64(1), nil)
	s.incomeRepo.EXPECT().GetByUserID(s.userID, 0, exportPageSize).Return(income, int64(1), nil)
	first := s.budgetRepo.EXPECT().GetByPeriod(s.userID, gomock.Any(), gomock.Any()).Return(budget, nil)
	s.budgetRepo.EXPECT().GetByPeriod(s.userID, gomock.Any(), gomock.Any()).Return([]models.BudgetEntry{}, nil).Times(12).After(first)

	rec, c := s.newContext("/export/backup")

	s.NoError(s.handler.ExportBackupJSON(c))
	s.Equal(http.StatusOK, rec.Code)

	var payload backupPayload
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	s.Len(payload.Expenses, 1)
	s.Len(payload.Income, 1)
	s.Len(payload.Budgets, 1)
	s.False(payload.ExportedAt.IsZero())
}
