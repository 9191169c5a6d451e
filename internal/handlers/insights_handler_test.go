package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"family-budget-api/internal/dto"
	"family-budget-api/internal/models"
	"family-budget-api/internal/services"
	"family-budget-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestInsightsHandler(t *testing.T) {
	suite.Run(t, new(InsightsHandlerSuite))
}

type InsightsHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	aggregation    *service_mocks.MockAggregationServiceInterface
	forecast       *service_mocks.MockForecastServiceInterface
	anomaly        *service_mocks.MockAnomalyServiceInterface
	comparison     *service_mocks.MockComparisonServiceInterface
	recommendation *service_mocks.MockRecommendationServiceInterface
	balance        *service_mocks.MockBalanceServiceInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	handler        *InsightsHandler
	e              *echo.Echo
	userID         uuid.UUID
}

func (s *InsightsHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.aggregation = service_mocks.NewMockAggregationServiceInterface(s.ctrl)
	s.forecast = service_mocks.NewMockForecastServiceInterface(s.ctrl)
	s.anomaly = service_mocks.NewMockAnomalyServiceInterface(s.ctrl)
	s.comparison = service_mocks.NewMockComparisonServiceInterface(s.ctrl)
	s.recommendation = service_mocks.NewMockRecommendationServiceInterface(s.ctrl)
	s.balance = service_mocks.NewMockBalanceServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.handler = NewInsightsHandler(
		s.aggregation, s.forecast, s.anomaly, s.comparison, s.recommendation, s.balance, s.metrics,
	)
	s.e = echo.New()
	s.userID = uuid.New()
}

func (s *InsightsHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InsightsHandlerSuite) newContext(path string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return rec, c
}

func (s *InsightsHandlerSuite) TestGetForecast_Success() {
	forecast := &models.ExpenseForecast{
		Predictions: map[string]models.CategoryForecast{
			"Food": {
				PredictedAmount:   decimal.NewFromInt(1200),
				Confidence:        78.8,
				HistoricalAverage: decimal.NewFromInt(1100),
				Trend:             services.TrendIncreasing,
				MonthsAnalyzed:    3,
			},
		},
		TotalPredicted: decimal.NewFromInt(1200),
	}

	s.forecast.EXPECT().Forecast(s.userID, "Food").Return(forecast, nil)

	rec, c := s.newContext("/insights/forecast?category=Food")

	s.NoError(s.handler.GetForecast(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ForecastResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.Success)
	s.NotNil(response.Forecast)
	s.Contains(response.Forecast.Predictions, "Food")
}

func (s *InsightsHandlerSuite) TestGetForecast_InsufficientHistory() {
	s.forecast.EXPECT().Forecast(s.userID, "").Return(nil, services.ErrInsufficientHistory)

	rec, c := s.newContext("/insights/forecast")

	s.NoError(s.handler.GetForecast(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ForecastResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.False(response.Success)
	s.NotEmpty(response.Message)
	s.Nil(response.Forecast)
}

func (s *InsightsHandlerSuite) TestGetAnomalies_Success() {
	anomalies := []models.Anomaly{
		{
			TransactionID: uuid.New(),
			Category:      "Food",
			Amount:        decimal.NewFromInt(900),
			Date:          time.Now(),
			Deviation:     3.46,
			Severity:      services.SeverityHigh,
		},
	}

	s.anomaly.EXPECT().DetectAnomalies(s.userID, 2.5).Return(anomalies, nil)

	rec, c := s.newContext("/insights/anomalies?threshold=2.5")

	s.NoError(s.handler.GetAnomalies(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.AnomalyResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.Success)
	s.Len(response.Anomalies, 1)
	s.Equal(2.5, response.Threshold)
}

func (s *InsightsHandlerSuite) TestGetAnomalies_DefaultThreshold() {
	s.anomaly.EXPECT().DetectAnomalies(s.userID, 0.0).Return([]models.Anomaly{}, nil)

	rec, c := s.newContext("/insights/anomalies")

	s.NoError(s.handler.GetAnomalies(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *InsightsHandlerSuite) TestGetAnomalies_InvalidThreshold() {
	rec, c := s.newContext("/insights/anomalies?threshold=abc")

	s.NoError(s.handler.GetAnomalies(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("ANALYTICS_003", errorResp.Error.Code)
}

func (s *InsightsHandlerSuite) TestGetAnomalies_NoTransactions() {
	s.anomaly.EXPECT().DetectAnomalies(s.userID, 0.0).Return(nil, services.ErrNoTransactions)

	rec, c := s.newContext("/insights/anomalies")

	s.NoError(s.handler.GetAnomalies(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.AnomalyResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.False(response.Success)
	s.NotEmpty(response.Message)
	s.Empty(response.Anomalies)
}

func (s *InsightsHandlerSuite) TestGetComparison() {
	rows := []models.ComparisonRow{
		{
			Category:      "Food",
			Subcategory:   "Groceries",
			PlannedAmount: decimal.NewFromInt(500),
			ActualAmount:  decimal.NewFromInt(600),
			Difference:    decimal.NewFromInt(-100),
			Percentage:    120,
			Status:        services.StatusOverBudget,
		},
	}

	s.comparison.EXPECT().Compare(s.userID, 8, 2026).Return(rows, nil)

	rec, c := s.newContext("/insights/comparison?month=8&year=2026")

	s.NoError(s.handler.GetComparison(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ComparisonResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.Success)
	s.Len(response.Rows, 1)
	s.Equal(services.StatusOverBudget, response.Rows[0].Status)
}

func (s *InsightsHandlerSuite) TestGetComparison_ByCategory() {
	s.comparison.EXPECT().CompareByCategory(s.userID, 8, 2026).Return([]models.ComparisonRow{}, nil)

	rec, c := s.newContext("/insights/comparison?month=8&year=2026&by_category=true")

	s.NoError(s.handler.GetComparison(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *InsightsHandlerSuite) TestGetRecommendations_Success() {
	report := &models.RecommendationReport{
		Recommendations: []models.Recommendation{
			{
				Category:        "Food",
				Kind:            services.RecommendationBudgetAlert,
				Priority:        services.PriorityMedium,
				SuggestedAmount: decimal.NewFromInt(50),
			},
		},
		TotalPotentialSavings: decimal.NewFromInt(140),
		CurrentSavingsRate:    15,
	}

	s.recommendation.EXPECT().Recommend(s.userID, 8, 2026).Return(report, nil)

	rec, c := s.newContext("/insights/recommendations?month=8&year=2026")

	s.NoError(s.handler.GetRecommendations(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.RecommendationResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.Success)
	s.Len(response.Report.Recommendations, 1)
}

func (s *InsightsHandlerSuite) TestGetRecommendations_NoBudget() {
	s.recommendation.EXPECT().Recommend(s.userID, 8, 2026).Return(nil, services.ErrNoBudgetConfigured)

	rec, c := s.newContext("/insights/recommendations?month=8&year=2026")

	s.NoError(s.handler.GetRecommendations(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.RecommendationResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.False(response.Success)
	s.NotEmpty(response.Message)
	s.Nil(response.Report)
}

func (s *InsightsHandlerSuite) TestGetBalance() {
	balance := &models.MonthlyBalance{
		Month:        8,
		Year:         2026,
		IncomeTotal:  decimal.NewFromInt(4000),
		ExpenseTotal: decimal.NewFromInt(3400),
		Balance:      decimal.NewFromInt(600),
		SavingsRate:  15,
	}

	s.balance.EXPECT().GetMonthlyBalance(s.userID, 8, 2026).Return(balance, nil)

	rec, c := s.newContext("/insights/balance?month=8&year=2026")

	s.NoError(s.handler.GetBalance(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.BalanceResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(15.0, response.Balance.SavingsRate)
}

func (s *InsightsHandlerSuite) TestGetMonthlySeries_ClampsMonths() {
	s.aggregation.EXPECT().MonthlySeries(s.userID, "", maxSeriesMonths).Return(models.MonthlySeries{}, nil)

	rec, c := s.newContext("/insights/series?months=100")

	s.NoError(s.handler.GetMonthlySeries(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.MonthlySeriesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(maxSeriesMonths, response.Months)
}

func (s *InsightsHandlerSuite) TestMissingUserContext() {
	req := httptest.NewRequest(http.MethodGet, "/insights/forecast", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.GetForecast(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
