package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"family-budget-api/internal/dto"
	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories"
	"family-budget-api/internal/repositories/repository_mocks"
	"family-budget-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExpenseHandler(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerSuite))
}

type ExpenseHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	expenseRepo *repository_mocks.MockExpenseRepositoryInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	handler     *ExpenseHandler
	e           *echo.Echo
	userID      uuid.UUID
}

func (s *ExpenseHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.handler = NewExpenseHandler(s.expenseRepo, s.metrics)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *ExpenseHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExpenseHandlerSuite) newContext(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var req *http.Request
	if body != nil {
		data, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(data))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return rec, c
}

func (s *ExpenseHandlerSuite) TestCreateExpense_Success() {
	s.expenseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Expense) error {
		s.Equal(s.userID, e.UserID)
		s.Equal("Food", e.Category)
		s.Equal("Groceries", e.Subcategory)
		s.True(e.Amount.Equal(decimal.RequireFromString("45.50")))
		return nil
	})

	rec, c := s.newContext(http.MethodPost, "/expenses", map[string]string{
		"category":     "Food",
		"subcategory":  "Groceries",
		"amount":       "45.50",
		"expense_date": "2026-08-10",
	})

	s.NoError(s.handler.CreateExpense(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ExpenseHandlerSuite) TestCreateExpense_UnknownCategory() {
	_, c := s.newContext(http.MethodPost, "/expenses", map[string]string{
		"category":     "Yachts",
		"amount":       "45.50",
		"expense_date": "2026-08-10",
	})

	s.Error(s.handler.CreateExpense(c))
}

func (s *ExpenseHandlerSuite) TestCreateExpense_MismatchedSubcategory() {
	rec, c := s.newContext(http.MethodPost, "/expenses", map[string]string{
		"category":     "Food",
		"subcategory":  "Cinema",
		"amount":       "45.50",
		"expense_date": "2026-08-10",
	})

	s.NoError(s.handler.CreateExpense(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("VALIDATION_005", errorResp.Error.Code)
}

func (s *ExpenseHandlerSuite) TestCreateExpense_NegativeAmount() {
	_, c := s.newContext(http.MethodPost, "/expenses", map[string]string{
		"category":     "Food",
		"amount":       "-10.00",
		"expense_date": "2026-08-10",
	})

	// The money_amount rule rejects non-positive amounts at validation time
	s.Error(s.handler.CreateExpense(c))
}

func (s *ExpenseHandlerSuite) TestListExpenses() {
	expenses := []models.Expense{
		{ID: uuid.New(), UserID: s.userID, Category: "Food", Amount: decimal.NewFromInt(20), ExpenseDate: time.Now()},
	}

	s.expenseRepo.EXPECT().GetByUserID(s.userID, 0, 20).Return(expenses, int64(1), nil)

	rec, c := s.newContext(http.MethodGet, "/expenses", nil)

	s.NoError(s.handler.ListExpenses(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ExpenseListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Expenses, 1)
	s.Equal(int64(1), response.Total)
	s.Equal(20, response.Limit)
}

func (s *ExpenseHandlerSuite) TestListExpenses_ClampsLimit() {
	s.expenseRepo.EXPECT().GetByUserID(s.userID, 0, maxPageLimit).Return([]models.Expense{}, int64(0), nil)

	rec, c := s.newContext(http.MethodGet, "/expenses?limit=5000", nil)

	s.NoError(s.handler.ListExpenses(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerSuite) TestUpdateExpense_NotOwned() {
	expenseID := uuid.New()
	other := &models.Expense{
		ID:          expenseID,
		UserID:      uuid.New(),
		Category:    "Food",
		Amount:      decimal.NewFromInt(20),
		ExpenseDate: time.Now(),
	}

	s.expenseRepo.EXPECT().GetByID(expenseID).Return(other, nil)

	rec, c := s.newContext(http.MethodPut, "/expenses/"+expenseID.String(), map[string]string{
		"amount": "30.00",
	})
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	s.NoError(s.handler.UpdateExpense(c))
	s.Equal(http.StatusForbidden, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("EXPENSE_003", errorResp.Error.Code)
}

func (s *ExpenseHandlerSuite) TestUpdateExpense_Success() {
	expenseID := uuid.New()
	existing := &models.Expense{
		ID:          expenseID,
		UserID:      s.userID,
		Category:    "Food",
		Subcategory: "Groceries",
		Amount:      decimal.NewFromInt(20),
		ExpenseDate: time.Now(),
	}

	s.expenseRepo.EXPECT().GetByID(expenseID).Return(existing, nil)
	s.expenseRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(e *models.Expense) error {
		s.True(e.Amount.Equal(decimal.NewFromInt(30)))
		return nil
	})

	rec, c := s.newContext(http.MethodPut, "/expenses/"+expenseID.String(), map[string]string{
		"amount": "30.00",
	})
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	s.NoError(s.handler.UpdateExpense(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerSuite) TestDeleteExpense_NotFound() {
	expenseID := uuid.New()
	s.expenseRepo.EXPECT().Delete(expenseID, s.userID).Return(repositories.ErrExpenseNotFound)

	rec, c := s.newContext(http.MethodDelete, "/expenses/"+expenseID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	s.NoError(s.handler.DeleteExpense(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ExpenseHandlerSuite) TestDeleteExpense_InvalidID() {
	rec, c := s.newContext(http.MethodDelete, "/expenses/not-a-uuid", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.DeleteExpense(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ExpenseHandlerSuite) TestMissingUserContext() {
	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.ListExpenses(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
