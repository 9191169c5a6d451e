package services

import (
	"testing"

	"family-budget-api/internal/config"
	"family-budget-api/internal/models"
	"family-budget-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func testAnalyticsConfig() config.AnalyticsConfig {
	return config.AnalyticsConfig{
		ForecastLookbackMonths: 6,
		ForecastRecentMonths:   3,
		ForecastMinMonths:      3,
		AnomalyWindowMonths:    3,
		AnomalyMinSampleSize:   5,
		AnomalyThreshold:       2.0,
		SavingsRateTarget:      10.0,
		OptimizationTopN:       3,
		OptimizationReduction:  0.15,
		EssentialCategories:    []string{"Housing", "Insurance", "Loans"},
	}
}

type ForecastServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAggregation *service_mocks.MockAggregationServiceInterface
	service         ForecastServiceInterface
	userID          uuid.UUID
}

func (s *ForecastServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAggregation = service_mocks.NewMockAggregationServiceInterface(s.ctrl)
	s.service = NewForecastService(s.mockAggregation, testAnalyticsConfig())
	s.userID = uuid.New()
}

func (s *ForecastServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestForecastServiceSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}

func seriesPoint(period, category string, amount float64) models.MonthlyPoint {
	return models.MonthlyPoint{
		Period:      period,
		Category:    category,
		TotalAmount: decimal.NewFromFloat(amount),
		Count:       1,
	}
}

func (s *ForecastServiceTestSuite) TestForecast_SingleCategory_MovingAveragePlusTrend() {
	series := models.MonthlySeries{
		seriesPoint("2026-05", "Housing", 1000),
		seriesPoint("2026-06", "Housing", 1100),
		seriesPoint("2026-07", "Housing", 1200),
	}
	s.mockAggregation.EXPECT().
		MonthlySeries(s.userID, "Housing", 6).
		Return(series, nil)

	forecast, err := s.service.Forecast(s.userID, "Housing")
	s.NoError(err)
	s.Len(forecast.Predictions, 1)

	prediction := forecast.Predictions["Housing"]
	s.True(prediction.PredictedAmount.Equal(decimal.NewFromInt(1200)), "got %s", prediction.PredictedAmount)
	s.True(prediction.HistoricalAverage.Equal(decimal.NewFromInt(1100)))
	s.Equal(TrendIncreasing, prediction.Trend)
	s.Equal(3, prediction.MonthsAnalyzed)
	s.True(forecast.TotalPredicted.Equal(decimal.NewFromInt(1200)))
}

func (s *ForecastServiceTestSuite) TestForecast_InsufficientHistory() {
	series := models.MonthlySeries{
		seriesPoint("2026-06", "Food", 200),
		seriesPoint("2026-07", "Food", 210),
	}
	s.mockAggregation.EXPECT().
		MonthlySeries(s.userID, "Food", 6).
		Return(series, nil)

	_, err := s.service.Forecast(s.userID, "Food")
	s.ErrorIs(err, ErrInsufficientHistory)
}

func (s *ForecastServiceTestSuite) TestForecast_EmptySeriesIsInsufficient() {
	s.mockAggregation.EXPECT().
		MonthlySeries(s.userID, "", 6).
		Return(models.MonthlySeries{}, nil)

	_, err := s.service.Forecast(s.userID, "")
	s.ErrorIs(err, ErrInsufficientHistory)
}

func (s *ForecastServiceTestSuite) TestForecast_AllCategories_SkipsSparseAndSums() {
	series := models.MonthlySeries{
		seriesPoint("2026-05", "Food", 100),
		seriesPoint("2026-06", "Food", 100),
		seriesPoint("2026-07", "Food", 100),
		seriesPoint("2026-06", "Housing", 500),
		seriesPoint("2026-07", "Housing", 600),
		// Single data point, silently skipped
		seriesPoint("2026-07", "Pets", 40),
	}
	s.mockAggregation.EXPECT().
		MonthlySeries(s.userID, "", 6).
		Return(series, nil)

	forecast, err := s.service.Forecast(s.userID, "")
	s.NoError(err)
	s.Len(forecast.Predictions, 2)
	s.NotContains(forecast.Predictions, "Pets")

	// Food: MA=100, slope=0 -> 100; Housing: MA=550, slope=100 -> 650
	s.True(forecast.Predictions["Food"].PredictedAmount.Equal(decimal.NewFromInt(100)))
	s.True(forecast.Predictions["Housing"].PredictedAmount.Equal(decimal.NewFromInt(650)))
	s.True(forecast.TotalPredicted.Equal(decimal.NewFromInt(750)), "got %s", forecast.TotalPredicted)
}

func (s *ForecastServiceTestSuite) TestForecast_ZeroSlopeClassifiesAsDecreasing() {
	series := models.MonthlySeries{
		seriesPoint("2026-05", "Food", 100),
		seriesPoint("2026-06", "Food", 100),
		seriesPoint("2026-07", "Food", 100),
	}
	s.mockAggregation.EXPECT().
		MonthlySeries(s.userID, "Food", 6).
		Return(series, nil)

	forecast, err := s.service.Forecast(s.userID, "Food")
	s.NoError(err)
	s.Equal(TrendDecreasing, forecast.Predictions["Food"].Trend)
	// Flat series: full confidence
	s.Equal(100.0, forecast.Predictions["Food"].Confidence)
}

func (s *ForecastServiceTestSuite) TestForecast_ConfidenceStaysInRange() {
	// High variance relative to the average drives the raw score negative
	series := models.MonthlySeries{
		seriesPoint("2026-05", "Housing", 1000),
		seriesPoint("2026-06", "Housing", 1100),
		seriesPoint("2026-07", "Housing", 1200),
	}
	s.mockAggregation.EXPECT().
		MonthlySeries(s.userID, "Housing", 6).
		Return(series, nil)

	forecast, err := s.service.Forecast(s.userID, "Housing")
	s.NoError(err)

	confidence := forecast.Predictions["Housing"].Confidence
	s.GreaterOrEqual(confidence, 0.0)
	s.LessOrEqual(confidence, 100.0)
}

func (s *ForecastServiceTestSuite) TestForecast_ZeroAverageHasZeroConfidence() {
	series := models.MonthlySeries{
		seriesPoint("2026-05", "Food", 0),
		seriesPoint("2026-06", "Food", 0),
		seriesPoint("2026-07", "Food", 0),
	}
	s.mockAggregation.EXPECT().
		MonthlySeries(s.userID, "Food", 6).
		Return(series, nil)

	forecast, err := s.service.Forecast(s.userID, "Food")
	s.NoError(err)
	s.Equal(0.0, forecast.Predictions["Food"].Confidence)
}

func (s *ForecastServiceTestSuite) TestForecast_MovingAverageUsesRecentMonthsOnly() {
	// Six months of history; MA covers only the last three
	series := models.MonthlySeries{
		seriesPoint("2026-02", "Food", 10),
		seriesPoint("2026-03", "Food", 10),
		seriesPoint("2026-04", "Food", 10),
		seriesPoint("2026-05", "Food", 300),
		seriesPoint("2026-06", "Food", 300),
		seriesPoint("2026-07", "Food", 300),
	}
	s.mockAggregation.EXPECT().
		MonthlySeries(s.userID, "Food", 6).
		Return(series, nil)

	forecast, err := s.service.Forecast(s.userID, "Food")
	s.NoError(err)
	s.True(forecast.Predictions["Food"].HistoricalAverage.Equal(decimal.NewFromInt(300)),
		"got %s", forecast.Predictions["Food"].HistoricalAverage)
	s.Equal(6, forecast.Predictions["Food"].MonthsAnalyzed)
}
