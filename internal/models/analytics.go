package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyPoint is one (period, category) bucket of aggregated expenses.
// Period is the "2006-01" year-month key.
type MonthlyPoint struct {
	Period      string          `json:"period"`
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int             `json:"count"`
}

// MonthlySeries is an aggregated series ordered by period ascending, then
// category ascending. Ordering is load-bearing for trend computation.
type MonthlySeries []MonthlyPoint

// Categories returns the distinct categories present in the series, in
// first-seen order.
func (s MonthlySeries) Categories() []string {
	seen := make(map[string]struct{}, len(s))
	var out []string
	for _, p := range s {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// ForCategory returns the points of a single category, preserving period order.
func (s MonthlySeries) ForCategory(category string) MonthlySeries {
	var out MonthlySeries
	for _, p := range s {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Periods returns the distinct periods present in the series, in order.
func (s MonthlySeries) Periods() []string {
	seen := make(map[string]struct{}, len(s))
	var out []string
	for _, p := range s {
		if _, ok := seen[p.Period]; ok {
			continue
		}
		seen[p.Period] = struct{}{}
		out = append(out, p.Period)
	}
	return out
}

// SlotTotal is the actual spend of one (category, subcategory) slot within
// a single month.
type SlotTotal struct {
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int             `json:"count"`
}

// SampleDataSummary reports how many demo records a seeding run produced.
type SampleDataSummary struct {
	Expenses      int `json:"expenses"`
	IncomeRecords int `json:"income_records"`
	BudgetEntries int `json:"budget_entries"`
}

// CategoryForecast is the next-month prediction for one category.
type CategoryForecast struct {
	PredictedAmount   decimal.Decimal `json:"predicted_amount"`
	Confidence        float64         `json:"confidence"`
	HistoricalAverage decimal.Decimal `json:"historical_average"`
	Trend             string          `json:"trend"`
	MonthsAnalyzed    int             `json:"months_analyzed"`
}

// ExpenseForecast is the full forecast result across the requested scope.
type ExpenseForecast struct {
	Predictions    map[string]CategoryForecast `json:"predictions"`
	TotalPredicted decimal.Decimal             `json:"total_predicted"`
}

// AmountRange is the [low, high] band a transaction amount was expected in.
type AmountRange struct {
	Low  decimal.Decimal `json:"low"`
	High decimal.Decimal `json:"high"`
}

// Anomaly is a single flagged transaction.
type Anomaly struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	ExpectedRange AmountRange     `json:"expected_range"`
	Deviation     float64         `json:"deviation"`
	Severity      string          `json:"severity"`
}

// ComparisonRow is one budget-vs-actual line for a period.
type ComparisonRow struct {
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	PlannedAmount decimal.Decimal `json:"planned_amount"`
	ActualAmount  decimal.Decimal `json:"actual_amount"`
	Difference    decimal.Decimal `json:"difference"`
	Percentage    float64         `json:"percentage"`
	Status        string          `json:"status"`
}

// Recommendation is one savings suggestion produced by a rule pass.
type Recommendation struct {
	Category        string          `json:"category"`
	Subcategory     string          `json:"subcategory,omitempty"`
	Kind            string          `json:"kind"`
	Priority        string          `json:"priority"`
	Message         string          `json:"message"`
	SuggestedAmount decimal.Decimal `json:"suggested_amount"`
}

// RecommendationReport carries all suggestions for a period plus the
// aggregate potential savings.
type RecommendationReport struct {
	Recommendations       []Recommendation `json:"recommendations"`
	TotalPotentialSavings decimal.Decimal  `json:"total_potential_savings"`
	CurrentSavingsRate    float64          `json:"current_savings_rate"`
}

// MonthlyBalance is the income/expense/balance snapshot for one month.
// SavingsRate is 0 when there is no income.
type MonthlyBalance struct {
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	Balance      decimal.Decimal `json:"balance"`
	SavingsRate  float64         `json:"savings_rate"`
}
