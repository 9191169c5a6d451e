package services

import (
	"errors"
	"log/slog"

	"family-budget-api/internal/config"
	"family-budget-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
)

var (
	ErrInsufficientHistory = errors.New("not enough monthly history for forecasting")
)

type forecastService struct {
	aggregation AggregationServiceInterface
	cfg         config.AnalyticsConfig
}

// NewForecastService creates the next-month forecasting service
func NewForecastService(aggregation AggregationServiceInterface, cfg config.AnalyticsConfig) ForecastServiceInterface {
	return &forecastService{
		aggregation: aggregation,
		cfg:         cfg,
	}
}

// Forecast predicts next-month spending per category from the trailing
// lookback window. A single-category scope and the all-categories scope run
// through the same per-category computation; only the scope differs.
func (s *forecastService) Forecast(userID uuid.UUID, category string) (*models.ExpenseForecast, error) {
	series, err := s.aggregation.MonthlySeries(userID, category, s.cfg.ForecastLookbackMonths)
	if err != nil {
		return nil, err
	}

	// Fewer than 3 distinct months in scope cannot support a trend fit.
	if len(series.Periods()) < s.cfg.ForecastMinMonths {
		return nil, ErrInsufficientHistory
	}

	singleCategory := category != ""

	forecast := &models.ExpenseForecast{
		Predictions:    make(map[string]models.CategoryForecast),
		TotalPredicted: decimal.Zero,
	}

	for _, cat := range series.Categories() {
		points := series.ForCategory(cat)

		if singleCategory && len(points) < s.cfg.ForecastMinMonths {
			return nil, ErrInsufficientHistory
		}
		// Sparse categories are skipped from the all-categories result
		// rather than failing the whole forecast.
		if !singleCategory && len(points) < 2 {
			continue
		}

		prediction := s.forecastCategory(points)
		forecast.Predictions[cat] = prediction
		forecast.TotalPredicted = forecast.TotalPredicted.Add(prediction.PredictedAmount)
	}

	slog.Info("expense forecast generated",
		"user_id", userID,
		"category", category,
		"categories_predicted", len(forecast.Predictions),
		"total_predicted", forecast.TotalPredicted)

	return forecast, nil
}

// forecastCategory runs the moving-average-plus-trend model over one
// category's monthly totals, ordered period ascending.
func (s *forecastService) forecastCategory(points models.MonthlySeries) models.CategoryForecast {
	amounts := make([]float64, len(points))
	for i, p := range points {
		amounts[i] = p.TotalAmount.InexactFloat64()
	}

	recent := amounts
	if len(recent) > s.cfg.ForecastRecentMonths {
		recent = recent[len(recent)-s.cfg.ForecastRecentMonths:]
	}

	movingAverage := mean(recent)
	slope := olsSlope(amounts)
	predicted := movingAverage + slope

	// MA of zero means a flat all-zero baseline; confidence in any
	// prediction off that baseline is none.
	confidence := 0.0
	if movingAverage != 0 {
		confidence = clampFloat(100-(populationVariance(amounts)/movingAverage)*20, 0, 100)
	}

	trend := TrendDecreasing
	if slope > 0 {
		trend = TrendIncreasing
	}

	return models.CategoryForecast{
		PredictedAmount:   decimal.NewFromFloat(predicted).Round(2),
		Confidence:        confidence,
		HistoricalAverage: decimal.NewFromFloat(movingAverage).Round(2),
		Trend:             trend,
		MonthsAnalyzed:    len(points),
	}
}
