package dto

import (
	"family-budget-api/internal/models"
)

// Insights Response DTOs

// ForecastResponse wraps a forecast result. Success is false when there is
// not enough history to forecast, with Message explaining why.
type ForecastResponse struct {
	Success  bool                    `json:"success"`
	Message  string                  `json:"message,omitempty"`
	Forecast *models.ExpenseForecast `json:"forecast,omitempty"`
}

// AnomalyResponse wraps anomaly detection output for a period
type AnomalyResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message,omitempty"`
	Anomalies []models.Anomaly `json:"anomalies"`
	Threshold float64          `json:"threshold"`
}

// ComparisonResponse wraps the budget-vs-actual comparison for a period
type ComparisonResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Rows    []models.ComparisonRow `json:"rows"`
	Month   int                    `json:"month"`
	Year    int                    `json:"year"`
}

// RecommendationResponse wraps the savings recommendation report
type RecommendationResponse struct {
	Success bool                         `json:"success"`
	Message string                       `json:"message,omitempty"`
	Report  *models.RecommendationReport `json:"report,omitempty"`
}

// BalanceResponse wraps the monthly balance snapshot
type BalanceResponse struct {
	Balance models.MonthlyBalance `json:"balance"`
}

// MonthlySeriesResponse wraps the aggregated expense series
type MonthlySeriesResponse struct {
	Series models.MonthlySeries `json:"series"`
	Months int                  `json:"months"`
}
