package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"family-budget-api/internal/config"
	"family-budget-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RecommendationBudgetAlert  = "budget_alert"
	RecommendationOptimization = "optimization"
	RecommendationSavingsGoal  = "savings_goal"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"

	// severeOverspendRatio marks an overspend of more than half the plan
	// as a high-priority alert.
	severeOverspendRatio = 0.5
)

var (
	ErrNoBudgetConfigured = errors.New("no budget configured for the requested period")
)

type recommendationService struct {
	comparison ComparisonServiceInterface
	balance    BalanceServiceInterface
	cfg        config.AnalyticsConfig
	essential  map[string]struct{}
}

// NewRecommendationService creates the savings recommendation service. The
// essential-category exclusion set comes from configuration, not from a
// compiled-in taxonomy.
func NewRecommendationService(comparison ComparisonServiceInterface, balance BalanceServiceInterface, cfg config.AnalyticsConfig) RecommendationServiceInterface {
	essential := make(map[string]struct{}, len(cfg.EssentialCategories))
	for _, category := range cfg.EssentialCategories {
		essential[category] = struct{}{}
	}

	return &recommendationService{
		comparison: comparison,
		balance:    balance,
		cfg:        cfg,
		essential:  essential,
	}
}

// Recommend runs three independent rule passes over the period's budget
// comparison and balance, concatenating their suggestions.
func (s *recommendationService) Recommend(userID uuid.UUID, month, year int) (*models.RecommendationReport, error) {
	rows, err := s.comparison.Compare(userID, month, year)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoBudgetConfigured
	}

	balance, err := s.balance.GetMonthlyBalance(userID, month, year)
	if err != nil {
		return nil, err
	}

	var recommendations []models.Recommendation
	recommendations = append(recommendations, s.overBudgetAlerts(rows)...)
	recommendations = append(recommendations, s.optimizationOpportunities(rows)...)
	recommendations = append(recommendations, s.savingsRateGoal(balance)...)

	total := decimal.Zero
	for _, r := range recommendations {
		total = total.Add(r.SuggestedAmount)
	}

	slog.Info("recommendations generated",
		"user_id", userID,
		"month", month,
		"year", year,
		"count", len(recommendations),
		"total_potential_savings", total)

	return &models.RecommendationReport{
		Recommendations:       recommendations,
		TotalPotentialSavings: total,
		CurrentSavingsRate:    balance.SavingsRate,
	}, nil
}

// overBudgetAlerts suggests halving the overspend on every slot that ran
// past its plan.
func (s *recommendationService) overBudgetAlerts(rows []models.ComparisonRow) []models.Recommendation {
	var recommendations []models.Recommendation
	for _, row := range rows {
		if !row.ActualAmount.GreaterThan(row.PlannedAmount) {
			continue
		}

		overspend := row.ActualAmount.Sub(row.PlannedAmount)

		// Blowing an empty plan is always severe; otherwise severity is
		// the overspend relative to the plan.
		priority := PriorityHigh
		if row.PlannedAmount.IsPositive() {
			ratio := overspend.Div(row.PlannedAmount).InexactFloat64()
			if ratio <= severeOverspendRatio {
				priority = PriorityMedium
			}
		}

		suggested := overspend.Div(decimal.NewFromInt(2)).Round(2)
		recommendations = append(recommendations, models.Recommendation{
			Category:        row.Category,
			Subcategory:     row.Subcategory,
			Kind:            RecommendationBudgetAlert,
			Priority:        priority,
			Message:         fmt.Sprintf("%s spending is %s over the planned %s. Cutting it by %s would bring you back on track", slotLabel(row), overspend, row.PlannedAmount, suggested),
			SuggestedAmount: suggested,
		})
	}
	return recommendations
}

// optimizationOpportunities suggests trimming the biggest discretionary
// spending slots by the configured reduction share.
func (s *recommendationService) optimizationOpportunities(rows []models.ComparisonRow) []models.Recommendation {
	candidates := make([]models.ComparisonRow, 0, len(rows))
	for _, row := range rows {
		if _, isEssential := s.essential[row.Category]; isEssential {
			continue
		}
		if !row.ActualAmount.IsPositive() {
			continue
		}
		candidates = append(candidates, row)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ActualAmount.GreaterThan(candidates[j].ActualAmount)
	})
	if len(candidates) > s.cfg.OptimizationTopN {
		candidates = candidates[:s.cfg.OptimizationTopN]
	}

	reduction := decimal.NewFromFloat(s.cfg.OptimizationReduction)

	var recommendations []models.Recommendation
	for _, row := range candidates {
		suggested := row.ActualAmount.Mul(reduction).Round(2)
		recommendations = append(recommendations, models.Recommendation{
			Category:        row.Category,
			Subcategory:     row.Subcategory,
			Kind:            RecommendationOptimization,
			Priority:        PriorityMedium,
			Message:         fmt.Sprintf("%s is one of your largest spending areas at %s. Reducing it by %d%% would save %s", slotLabel(row), row.ActualAmount, int(s.cfg.OptimizationReduction*100), suggested),
			SuggestedAmount: suggested,
		})
	}
	return recommendations
}

// savingsRateGoal emits a single suggestion when the savings rate falls
// below the configured target.
func (s *recommendationService) savingsRateGoal(balance *models.MonthlyBalance) []models.Recommendation {
	if balance.SavingsRate >= s.cfg.SavingsRateTarget {
		return nil
	}

	target := decimal.NewFromFloat(s.cfg.SavingsRateTarget / 100)
	suggested := balance.IncomeTotal.Mul(target).Sub(balance.Balance).Round(2)
	// Already above target yields a negative gap; no action needed then.
	if suggested.IsNegative() {
		suggested = decimal.Zero
	}

	return []models.Recommendation{{
		Category:        "Savings or Investments",
		Kind:            RecommendationSavingsGoal,
		Priority:        PriorityHigh,
		Message:         fmt.Sprintf("Your savings rate is %.1f%%, below the %.0f%% target. Setting aside another %s this month would close the gap", balance.SavingsRate, s.cfg.SavingsRateTarget, suggested),
		SuggestedAmount: suggested,
	}}
}

func slotLabel(row models.ComparisonRow) string {
	if row.Subcategory == "" {
		return row.Category
	}
	return fmt.Sprintf("%s / %s", row.Category, row.Subcategory)
}
