package handlers

import (
	"net/http"
	"strconv"
	"time"

	"family-budget-api/internal/dto"
	"family-budget-api/internal/errors"
	"family-budget-api/internal/models"
	"family-budget-api/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeriesMonths = 6
	maxSeriesMonths     = 36
)

// InsightsHandler handles the analytics endpoints: forecast, anomaly
// detection, budget comparison, recommendations and monthly balance.
//
// Degenerate-data outcomes (not enough history, no budget, no transactions)
// are not errors: they return 200 with success=false and a message so the
// client can render the explanation inline.
type InsightsHandler struct {
	aggregationService    services.AggregationServiceInterface
	forecastService       services.ForecastServiceInterface
	anomalyService        services.AnomalyServiceInterface
	comparisonService     services.ComparisonServiceInterface
	recommendationService services.RecommendationServiceInterface
	balanceService        services.BalanceServiceInterface
	metrics               services.MetricsRecorderInterface
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(
	aggregationService services.AggregationServiceInterface,
	forecastService services.ForecastServiceInterface,
	anomalyService services.AnomalyServiceInterface,
	comparisonService services.ComparisonServiceInterface,
	recommendationService services.RecommendationServiceInterface,
	balanceService services.BalanceServiceInterface,
	metrics services.MetricsRecorderInterface,
) *InsightsHandler {
	return &InsightsHandler{
		aggregationService:    aggregationService,
		forecastService:       forecastService,
		anomalyService:        anomalyService,
		comparisonService:     comparisonService,
		recommendationService: recommendationService,
		balanceService:        balanceService,
		metrics:               metrics,
	}
}

// GetForecast predicts next-month spending
//
// Method: GET /api/v1/insights/forecast
// Authentication: Required
//
// Query parameters:
//   - category: Restrict the forecast to one category (default: all)
func (h *InsightsHandler) GetForecast(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	category := c.QueryParam("category")

	start := time.Now()
	forecast, err := h.forecastService.Forecast(userID, category)
	h.metrics.RecordProcessingTime("forecast", time.Since(start))

	if err != nil {
		if err == services.ErrInsufficientHistory {
			h.metrics.IncrementCounter("forecast_request", map[string]string{"status": "insufficient_history"})
			return c.JSON(http.StatusOK, dto.ForecastResponse{
				Success: false,
				Message: errors.GetErrorMessage(errors.AnalyticsInsufficientHistory),
			})
		}
		h.metrics.IncrementCounter("forecast_request", map[string]string{"status": "error"})
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("forecast_request", map[string]string{"status": "ok"})

	return c.JSON(http.StatusOK, dto.ForecastResponse{
		Success:  true,
		Forecast: forecast,
	})
}

// GetAnomalies flags statistically unusual recent transactions
//
// Method: GET /api/v1/insights/anomalies
// Authentication: Required
//
// Query parameters:
//   - threshold: Z-score threshold (default: configured value)
func (h *InsightsHandler) GetAnomalies(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	threshold := 0.0
	if thresholdStr := c.QueryParam("threshold"); thresholdStr != "" {
		threshold, err = strconv.ParseFloat(thresholdStr, 64)
		if err != nil {
			return SendError(c, errors.AnalyticsInvalidThreshold)
		}
	}

	start := time.Now()
	anomalies, err := h.anomalyService.DetectAnomalies(userID, threshold)
	h.metrics.RecordProcessingTime("anomaly_detection", time.Since(start))
	h.metrics.IncrementCounter("anomaly_scan", nil)

	if err != nil {
		if err == services.ErrNoTransactions {
			return c.JSON(http.StatusOK, dto.AnomalyResponse{
				Success:   false,
				Message:   errors.GetErrorMessage(errors.AnalyticsNoTransactions),
				Anomalies: []models.Anomaly{},
				Threshold: threshold,
			})
		}
		return SendSystemError(c, err)
	}

	for range anomalies {
		h.metrics.IncrementCounter("anomaly_flagged", nil)
	}

	return c.JSON(http.StatusOK, dto.AnomalyResponse{
		Success:   true,
		Anomalies: anomalies,
		Threshold: threshold,
	})
}

// GetComparison compares the budget plan against actual spending
//
// Method: GET /api/v1/insights/comparison
// Authentication: Required
//
// Query parameters:
//   - month, year: Period (default: current)
//   - by_category: Roll subcategory slots up to whole categories
func (h *InsightsHandler) GetComparison(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month, year, err := getPeriodParams(c)
	if err != nil {
		return SendError(c, errors.BudgetInvalidPeriod, errors.WithDetails(err.Error()))
	}

	compare := h.comparisonService.Compare
	if c.QueryParam("by_category") == "true" {
		compare = h.comparisonService.CompareByCategory
	}

	start := time.Now()
	rows, err := compare(userID, month, year)
	h.metrics.RecordProcessingTime("budget_comparison", time.Since(start))

	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ComparisonResponse{
		Success: true,
		Rows:    rows,
		Month:   month,
		Year:    year,
	})
}

// GetRecommendations derives savings recommendations for a period
//
// Method: GET /api/v1/insights/recommendations
// Authentication: Required
func (h *InsightsHandler) GetRecommendations(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month, year, err := getPeriodParams(c)
	if err != nil {
		return SendError(c, errors.BudgetInvalidPeriod, errors.WithDetails(err.Error()))
	}

	start := time.Now()
	report, err := h.recommendationService.Recommend(userID, month, year)
	h.metrics.RecordProcessingTime("recommendation", time.Since(start))
	h.metrics.IncrementCounter("recommendation_request", nil)

	if err != nil {
		if err == services.ErrNoBudgetConfigured {
			return c.JSON(http.StatusOK, dto.RecommendationResponse{
				Success: false,
				Message: errors.GetErrorMessage(errors.BudgetNotConfigured),
			})
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RecommendationResponse{
		Success: true,
		Report:  report,
	})
}

// GetBalance returns the monthly income/expense balance
//
// Method: GET /api/v1/insights/balance
// Authentication: Required
func (h *InsightsHandler) GetBalance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month, year, err := getPeriodParams(c)
	if err != nil {
		return SendError(c, errors.BudgetInvalidPeriod, errors.WithDetails(err.Error()))
	}

	balance, err := h.balanceService.GetMonthlyBalance(userID, month, year)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BalanceResponse{Balance: *balance})
}

// GetMonthlySeries returns the aggregated per-category monthly series
//
// Method: GET /api/v1/insights/series
// Authentication: Required
//
// Query parameters:
//   - months: Trailing window size (default: 6, max: 36)
//   - category: Restrict to one category (default: all)
func (h *InsightsHandler) GetMonthlySeries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	months := getIntQueryParam(c, "months", defaultSeriesMonths)
	if months < 1 {
		months = 1
	}
	if months > maxSeriesMonths {
		months = maxSeriesMonths
	}

	series, err := h.aggregationService.MonthlySeries(userID, c.QueryParam("category"), months)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MonthlySeriesResponse{
		Series: series,
		Months: months,
	})
}
