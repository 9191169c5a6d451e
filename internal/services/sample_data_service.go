package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"family-budget-api/internal/categories"
	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	minExpensesPerMonth = 8
	maxExpensesPerMonth = 25
	salaryDayOfMonth    = 1
	bonusProbability    = 0.2
)

// categoryAmountRanges bounds the generated amounts so the demo data looks
// like real household spending rather than uniform noise.
var categoryAmountRanges = map[string][2]float64{
	"Food":                   {5, 150},
	"Housing":                {40, 900},
	"Transportation":         {3, 120},
	"Entertainment":          {5, 80},
	"Children":               {10, 200},
	"Personal Care":          {5, 90},
	"Pets":                   {10, 120},
	"Insurance":              {50, 400},
	"Loans":                  {100, 800},
	"Taxes":                  {50, 600},
	"Gifts and Charity":      {10, 150},
	"Savings or Investments": {50, 500},
}

type sampleDataService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	incomeRepo  repositories.IncomeRepositoryInterface
	budgetRepo  repositories.BudgetRepositoryInterface
	rng         *rand.Rand
}

// NewSampleDataService creates the demo data seeding service
func NewSampleDataService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
) SampleDataServiceInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &sampleDataService{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		budgetRepo:  budgetRepo,
		rng:         rand.New(source),
	}
}

// GenerateSampleData seeds expenses and income over the trailing months plus
// a budget plan for the current month.
func (s *sampleDataService) GenerateSampleData(userID uuid.UUID, months int) (*models.SampleDataSummary, error) {
	if months < 1 {
		months = 1
	}

	summary := &models.SampleDataSummary{}
	now := time.Now()

	for offset := months - 1; offset >= 0; offset-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -offset, 0)

		created, err := s.generateMonthExpenses(userID, monthStart, now)
		if err != nil {
			return nil, err
		}
		summary.Expenses += created

		created, err = s.generateMonthIncome(userID, monthStart)
		if err != nil {
			return nil, err
		}
		summary.IncomeRecords += created
	}

	budgetCount, err := s.generateCurrentBudget(userID, now)
	if err != nil {
		return nil, err
	}
	summary.BudgetEntries = budgetCount

	slog.Info("sample data generated",
		"user_id", userID,
		"months", months,
		"expenses", summary.Expenses,
		"income_records", summary.IncomeRecords,
		"budget_entries", summary.BudgetEntries)

	return summary, nil
}

func (s *sampleDataService) generateMonthExpenses(userID uuid.UUID, monthStart, now time.Time) (int, error) {
	count := minExpensesPerMonth + s.rng.Intn(maxExpensesPerMonth-minExpensesPerMonth+1)
	allCategories := categories.All()

	created := 0
	for i := 0; i < count; i++ {
		category := allCategories[s.rng.Intn(len(allCategories))]
		subs := categories.Subcategories(category)
		subcategory := subs[s.rng.Intn(len(subs))]

		date := s.randomDayInMonth(monthStart)
		if date.After(now) {
			continue
		}

		expense := &models.Expense{
			UserID:      userID,
			Category:    category,
			Subcategory: subcategory,
			Amount:      s.randomAmount(category),
			Description: gofakeit.ProductName(),
			ExpenseDate: date,
		}
		if err := s.expenseRepo.Create(expense); err != nil {
			return created, fmt.Errorf("failed to create sample expense: %w", err)
		}
		created++
	}

	return created, nil
}

func (s *sampleDataService) generateMonthIncome(userID uuid.UUID, monthStart time.Time) (int, error) {
	salary := &models.Income{
		UserID:      userID,
		Source:      "Salary",
		Amount:      decimal.NewFromFloat(2800 + s.rng.Float64()*1400).Round(2),
		Description: fmt.Sprintf("Salary from %s", gofakeit.Company()),
		IncomeDate:  monthStart.AddDate(0, 0, salaryDayOfMonth-1),
	}
	if err := s.incomeRepo.Create(salary); err != nil {
		return 0, fmt.Errorf("failed to create sample income: %w", err)
	}
	created := 1

	if s.rng.Float64() < bonusProbability {
		bonus := &models.Income{
			UserID:      userID,
			Source:      "Bonus",
			Amount:      decimal.NewFromFloat(150 + s.rng.Float64()*600).Round(2),
			Description: "Quarterly bonus",
			IncomeDate:  s.randomDayInMonth(monthStart),
		}
		if err := s.incomeRepo.Create(bonus); err != nil {
			return created, fmt.Errorf("failed to create sample income: %w", err)
		}
		created++
	}

	return created, nil
}

// generateCurrentBudget plans a handful of common slots for the current
// month so comparison and recommendation endpoints have data to work with.
func (s *sampleDataService) generateCurrentBudget(userID uuid.UUID, now time.Time) (int, error) {
	plans := []struct {
		category    string
		subcategory string
		amount      float64
	}{
		{"Food", "Groceries", 450},
		{"Food", "Dining Out & Catering", 150},
		{"Housing", "Electricity", 120},
		{"Housing", "Internet Service", 60},
		{"Transportation", "Fuel/Gasoline", 180},
		{"Entertainment", "Cinema", 40},
		{"Personal Care", "Hair Salon & Manicure", 50},
	}

	for _, plan := range plans {
		entry := &models.BudgetEntry{
			UserID:        userID,
			Category:      plan.category,
			Subcategory:   plan.subcategory,
			PlannedAmount: decimal.NewFromFloat(plan.amount),
			Month:         int(now.Month()),
			Year:          now.Year(),
		}
		if err := s.budgetRepo.Upsert(entry); err != nil {
			return 0, fmt.Errorf("failed to create sample budget entry: %w", err)
		}
	}

	return len(plans), nil
}

func (s *sampleDataService) randomDayInMonth(monthStart time.Time) time.Time {
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	return monthStart.AddDate(0, 0, s.rng.Intn(daysInMonth))
}

func (s *sampleDataService) randomAmount(category string) decimal.Decimal {
	bounds, ok := categoryAmountRanges[category]
	if !ok {
		bounds = [2]float64{5, 100}
	}
	value := bounds[0] + s.rng.Float64()*(bounds[1]-bounds[0])
	return decimal.NewFromFloat(value).Round(2)
}
