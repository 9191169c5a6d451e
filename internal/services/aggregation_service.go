package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type aggregationService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
}

// NewAggregationService creates the monthly aggregation service
func NewAggregationService(expenseRepo repositories.ExpenseRepositoryInterface) AggregationServiceInterface {
	return &aggregationService{
		expenseRepo: expenseRepo,
	}
}

// MonthlySeries aggregates expenses into (period, category) buckets over a
// rolling window of trailing months ending at the current month. An empty
// result is a valid series, never an error.
func (s *aggregationService) MonthlySeries(userID uuid.UUID, category string, months int) (models.MonthlySeries, error) {
	if months < 1 {
		months = 1
	}

	now := time.Now()
	// Window starts at the first day of the oldest month so partial months
	// at the window edge are never split.
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	var (
		expenses []models.Expense
		err      error
	)
	if category != "" {
		expenses, err = s.expenseRepo.GetByCategoryAndDateRange(userID, category, start, now)
	} else {
		expenses, err = s.expenseRepo.GetByDateRange(userID, start, now)
	}
	if err != nil {
		slog.Error("failed to fetch expenses for aggregation",
			"user_id", userID,
			"category", category,
			"error", err)
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	series := buildMonthlySeries(expenses)

	slog.Debug("monthly series aggregated",
		"user_id", userID,
		"months", months,
		"points", len(series))

	return series, nil
}

// MonthlySeriesForPeriod aggregates the expenses of one explicit month.
func (s *aggregationService) MonthlySeriesForPeriod(userID uuid.UUID, month, year int) (models.MonthlySeries, error) {
	expenses, err := s.expenseRepo.GetByMonth(userID, month, year)
	if err != nil {
		slog.Error("failed to fetch expenses for period aggregation",
			"user_id", userID,
			"month", month,
			"year", year,
			"error", err)
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	return buildMonthlySeries(expenses), nil
}

// SlotTotals aggregates one month per (category, subcategory) slot, ordered
// by category then subcategory. The budget comparison joins against this.
func (s *aggregationService) SlotTotals(userID uuid.UUID, month, year int) ([]models.SlotTotal, error) {
	expenses, err := s.expenseRepo.GetByMonth(userID, month, year)
	if err != nil {
		slog.Error("failed to fetch expenses for slot totals",
			"user_id", userID,
			"month", month,
			"year", year,
			"error", err)
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	type slotKey struct {
		category    string
		subcategory string
	}

	totals := make(map[slotKey]*models.SlotTotal)
	for i := range expenses {
		e := &expenses[i]
		key := slotKey{category: e.Category, subcategory: e.Subcategory}
		slot, ok := totals[key]
		if !ok {
			slot = &models.SlotTotal{
				Category:    e.Category,
				Subcategory: e.Subcategory,
				TotalAmount: decimal.Zero,
			}
			totals[key] = slot
		}
		slot.TotalAmount = slot.TotalAmount.Add(e.Amount)
		slot.Count++
	}

	result := make([]models.SlotTotal, 0, len(totals))
	for _, slot := range totals {
		result = append(result, *slot)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Subcategory < result[j].Subcategory
	})

	return result, nil
}

// buildMonthlySeries groups expenses by (period, category) and orders the
// result by period ascending then category ascending. Period order is what
// the trend fit downstream depends on.
func buildMonthlySeries(expenses []models.Expense) models.MonthlySeries {
	type bucketKey struct {
		period   string
		category string
	}

	buckets := make(map[bucketKey]*models.MonthlyPoint)
	for i := range expenses {
		e := &expenses[i]
		key := bucketKey{period: e.Period(), category: e.Category}
		point, ok := buckets[key]
		if !ok {
			point = &models.MonthlyPoint{
				Period:      e.Period(),
				Category:    e.Category,
				TotalAmount: decimal.Zero,
			}
			buckets[key] = point
		}
		point.TotalAmount = point.TotalAmount.Add(e.Amount)
		point.Count++
	}

	series := make(models.MonthlySeries, 0, len(buckets))
	for _, point := range buckets {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Period != series[j].Period {
			return series[i].Period < series[j].Period
		}
		return series[i].Category < series[j].Category
	})

	return series
}
