package services

import (
	"fmt"
	"log/slog"

	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type balanceService struct {
	incomeRepo  repositories.IncomeRepositoryInterface
	expenseRepo repositories.ExpenseRepositoryInterface
}

// NewBalanceService creates the monthly balance service
func NewBalanceService(incomeRepo repositories.IncomeRepositoryInterface, expenseRepo repositories.ExpenseRepositoryInterface) BalanceServiceInterface {
	return &balanceService{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// GetMonthlyBalance computes income total, expense total and the savings
// rate for one month. A month without income has a savings rate of 0.
func (s *balanceService) GetMonthlyBalance(userID uuid.UUID, month, year int) (*models.MonthlyBalance, error) {
	incomeTotal, err := s.incomeRepo.GetMonthlyTotal(userID, month, year)
	if err != nil {
		slog.Error("failed to fetch income total for balance",
			"user_id", userID,
			"month", month,
			"year", year,
			"error", err)
		return nil, fmt.Errorf("failed to fetch income total: %w", err)
	}

	expenseTotal, err := s.expenseRepo.GetMonthlyTotal(userID, month, year)
	if err != nil {
		slog.Error("failed to fetch expense total for balance",
			"user_id", userID,
			"month", month,
			"year", year,
			"error", err)
		return nil, fmt.Errorf("failed to fetch expense total: %w", err)
	}

	balance := incomeTotal.Sub(expenseTotal)

	savingsRate := 0.0
	if incomeTotal.IsPositive() {
		savingsRate = balance.Div(incomeTotal).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}

	return &models.MonthlyBalance{
		Month:        month,
		Year:         year,
		IncomeTotal:  incomeTotal,
		ExpenseTotal: expenseTotal,
		Balance:      balance,
		SavingsRate:  savingsRate,
	}, nil
}
