package services

import (
	"time"

	"family-budget-api/internal/dto"
	"family-budget-api/internal/models"

	"github.com/google/uuid"
)

// AggregationServiceInterface groups raw expense rows into monthly series.
// Every other analytics service consumes its output.
type AggregationServiceInterface interface {
	// MonthlySeries aggregates expenses over a rolling window of the given
	// number of trailing months ending at the current month. An empty
	// category means all categories.
	MonthlySeries(userID uuid.UUID, category string, months int) (models.MonthlySeries, error)

	// MonthlySeriesForPeriod aggregates expenses of one explicit month.
	MonthlySeriesForPeriod(userID uuid.UUID, month, year int) (models.MonthlySeries, error)

	// SlotTotals aggregates expenses of one month per (category, subcategory).
	SlotTotals(userID uuid.UUID, month, year int) ([]models.SlotTotal, error)
}

// ForecastServiceInterface predicts next-month spending from monthly series
type ForecastServiceInterface interface {
	// Forecast predicts next-month spending. An empty category forecasts
	// every category with enough history and sums the predictions.
	Forecast(userID uuid.UUID, category string) (*models.ExpenseForecast, error)
}

// AnomalyServiceInterface flags statistically unusual transactions
type AnomalyServiceInterface interface {
	// DetectAnomalies scans the trailing transaction window with the given
	// z-score threshold. A non-positive threshold falls back to the
	// configured default.
	DetectAnomalies(userID uuid.UUID, threshold float64) ([]models.Anomaly, error)
}

// ComparisonServiceInterface compares planned budgets against actual spending
type ComparisonServiceInterface interface {
	// Compare returns one row per budgeted (category, subcategory) slot of
	// the period. An empty budget yields an empty result, not an error.
	Compare(userID uuid.UUID, month, year int) ([]models.ComparisonRow, error)

	// CompareByCategory rolls subcategory slots up to whole categories
	// before deriving variance fields.
	CompareByCategory(userID uuid.UUID, month, year int) ([]models.ComparisonRow, error)
}

// RecommendationServiceInterface derives savings suggestions from the
// budget comparison and the monthly balance
type RecommendationServiceInterface interface {
	Recommend(userID uuid.UUID, month, year int) (*models.RecommendationReport, error)
}

// BalanceServiceInterface computes the monthly income/expense balance
type BalanceServiceInterface interface {
	GetMonthlyBalance(userID uuid.UUID, month, year int) (*models.MonthlyBalance, error)
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
}

type TokenServiceInterface interface {
	GenerateToken(user *models.User) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// SampleDataServiceInterface seeds realistic demo data for development
type SampleDataServiceInterface interface {
	GenerateSampleData(userID uuid.UUID, months int) (*models.SampleDataSummary, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
