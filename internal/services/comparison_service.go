package services

import (
	"fmt"
	"log/slog"
	"sort"

	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusOverBudget = "Over Budget"
	StatusOnTrack    = "On Track"
)

type comparisonService struct {
	budgetRepo  repositories.BudgetRepositoryInterface
	aggregation AggregationServiceInterface
}

// NewComparisonService creates the budget-vs-actual comparison service
func NewComparisonService(budgetRepo repositories.BudgetRepositoryInterface, aggregation AggregationServiceInterface) ComparisonServiceInterface {
	return &comparisonService{
		budgetRepo:  budgetRepo,
		aggregation: aggregation,
	}
}

// Compare joins the period's budget plan against actual spending per slot.
// The budget is the driving side: slots without a budget entry never appear,
// budgeted slots without spending show an actual of zero.
func (s *comparisonService) Compare(userID uuid.UUID, month, year int) ([]models.ComparisonRow, error) {
	entries, err := s.budgetRepo.GetByPeriod(userID, month, year)
	if err != nil {
		slog.Error("failed to fetch budget entries for comparison",
			"user_id", userID,
			"month", month,
			"year", year,
			"error", err)
		return nil, fmt.Errorf("failed to fetch budget entries: %w", err)
	}
	if len(entries) == 0 {
		return []models.ComparisonRow{}, nil
	}

	actuals, err := s.slotActuals(userID, month, year)
	if err != nil {
		return nil, err
	}

	rows := make([]models.ComparisonRow, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		actual := actuals[slotKey{entry.Category, entry.Subcategory}]
		rows = append(rows, buildComparisonRow(entry.Category, entry.Subcategory, entry.PlannedAmount, actual))
	}

	return rows, nil
}

// CompareByCategory sums planned and actual amounts across the subcategories
// of each category before deriving the variance fields.
func (s *comparisonService) CompareByCategory(userID uuid.UUID, month, year int) ([]models.ComparisonRow, error) {
	rows, err := s.Compare(userID, month, year)
	if err != nil {
		return nil, err
	}

	type rollup struct {
		planned decimal.Decimal
		actual  decimal.Decimal
	}

	totals := make(map[string]*rollup)
	for _, row := range rows {
		r, ok := totals[row.Category]
		if !ok {
			r = &rollup{planned: decimal.Zero, actual: decimal.Zero}
			totals[row.Category] = r
		}
		r.planned = r.planned.Add(row.PlannedAmount)
		r.actual = r.actual.Add(row.ActualAmount)
	}

	result := make([]models.ComparisonRow, 0, len(totals))
	for category, r := range totals {
		result = append(result, buildComparisonRow(category, "", r.planned, r.actual))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})

	return result, nil
}

type slotKey struct {
	category    string
	subcategory string
}

func (s *comparisonService) slotActuals(userID uuid.UUID, month, year int) (map[slotKey]decimal.Decimal, error) {
	slots, err := s.aggregation.SlotTotals(userID, month, year)
	if err != nil {
		return nil, err
	}

	actuals := make(map[slotKey]decimal.Decimal, len(slots))
	for _, slot := range slots {
		actuals[slotKey{slot.Category, slot.Subcategory}] = slot.TotalAmount
	}
	return actuals, nil
}

func buildComparisonRow(category, subcategory string, planned, actual decimal.Decimal) models.ComparisonRow {
	// A zero plan has no meaningful utilization percentage; define it as 0
	// instead of dividing by zero.
	percentage := 0.0
	if !planned.IsZero() {
		percentage = actual.Div(planned).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}

	status := StatusOnTrack
	if actual.GreaterThan(planned) {
		status = StatusOverBudget
	}

	return models.ComparisonRow{
		Category:      category,
		Subcategory:   subcategory,
		PlannedAmount: planned,
		ActualAmount:  actual,
		Difference:    planned.Sub(actual),
		Percentage:    percentage,
		Status:        status,
	}
}
