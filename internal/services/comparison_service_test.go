package services

import (
	"testing"

	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories/repository_mocks"
	"family-budget-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ComparisonServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockBudgetRepo  *repository_mocks.MockBudgetRepositoryInterface
	mockAggregation *service_mocks.MockAggregationServiceInterface
	service         ComparisonServiceInterface
	userID          uuid.UUID
}

func (s *ComparisonServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBudgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.mockAggregation = service_mocks.NewMockAggregationServiceInterface(s.ctrl)
	s.service = NewComparisonService(s.mockBudgetRepo, s.mockAggregation)
	s.userID = uuid.New()
}

func (s *ComparisonServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestComparisonServiceSuite(t *testing.T) {
	suite.Run(t, new(ComparisonServiceTestSuite))
}

func budgetEntry(userID uuid.UUID, category, subcategory string, planned float64) models.BudgetEntry {
	return models.BudgetEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Category:      category,
		Subcategory:   subcategory,
		PlannedAmount: decimal.NewFromFloat(planned),
		Month:         8,
		Year:          2026,
	}
}

func slotTotal(category, subcategory string, total float64) models.SlotTotal {
	return models.SlotTotal{
		Category:    category,
		Subcategory: subcategory,
		TotalAmount: decimal.NewFromFloat(total),
		Count:       1,
	}
}

func (s *ComparisonServiceTestSuite) TestCompare_OverBudget() {
	s.mockBudgetRepo.EXPECT().
		GetByPeriod(s.userID, 8, 2026).
		Return([]models.BudgetEntry{budgetEntry(s.userID, "Food", "Groceries", 500)}, nil)
	s.mockAggregation.EXPECT().
		SlotTotals(s.userID, 8, 2026).
		Return([]models.SlotTotal{slotTotal("Food", "Groceries", 600)}, nil)

	rows, err := s.service.Compare(s.userID, 8, 2026)
	s.NoError(err)
	s.Len(rows, 1)

	row := rows[0]
	s.True(row.Difference.Equal(decimal.NewFromInt(-100)), "got %s", row.Difference)
	s.Equal(120.0, row.Percentage)
	s.Equal(StatusOverBudget, row.Status)
}

func (s *ComparisonServiceTestSuite) TestCompare_EqualityIsOnTrack() {
	s.mockBudgetRepo.EXPECT().
		GetByPeriod(s.userID, 8, 2026).
		Return([]models.BudgetEntry{budgetEntry(s.userID, "Food", "Groceries", 400)}, nil)
	s.mockAggregation.EXPECT().
		SlotTotals(s.userID, 8, 2026).
		Return([]models.SlotTotal{slotTotal("Food", "Groceries", 400)}, nil)

	rows, err := s.service.Compare(s.userID, 8, 2026)
	s.NoError(err)
	s.Equal(StatusOnTrack, rows[0].Status)
	s.Equal(100.0, rows[0].Percentage)
	s.True(rows[0].Difference.IsZero())
}

func (s *ComparisonServiceTestSuite) TestCompare_BudgetIsDrivingSide() {
	s.mockBudgetRepo.EXPECT().
		GetByPeriod(s.userID, 8, 2026).
		Return([]models.BudgetEntry{budgetEntry(s.userID, "Food", "Groceries", 300)}, nil)
	// Spending on an unbudgeted slot must not appear in the result
	s.mockAggregation.EXPECT().
		SlotTotals(s.userID, 8, 2026).
		Return([]models.SlotTotal{
			slotTotal("Housing", "Electricity", 150),
		}, nil)

	rows, err := s.service.Compare(s.userID, 8, 2026)
	s.NoError(err)
	s.Len(rows, 1)
	s.Equal("Food", rows[0].Category)
	s.True(rows[0].ActualAmount.IsZero())
	s.Equal(StatusOnTrack, rows[0].Status)
	s.Equal(0.0, rows[0].Percentage)
}

func (s *ComparisonServiceTestSuite) TestCompare_ZeroPlannedAmountGuarded() {
	s.mockBudgetRepo.EXPECT().
		GetByPeriod(s.userID, 8, 2026).
		Return([]models.BudgetEntry{budgetEntry(s.userID, "Pets", "Pet Food", 0)}, nil)
	s.mockAggregation.EXPECT().
		SlotTotals(s.userID, 8, 2026).
		Return([]models.SlotTotal{slotTotal("Pets", "Pet Food", 35)}, nil)

	rows, err := s.service.Compare(s.userID, 8, 2026)
	s.NoError(err)
	s.Equal(0.0, rows[0].Percentage)
	s.Equal(StatusOverBudget, rows[0].Status)
}

func (s *ComparisonServiceTestSuite) TestCompare_NoBudgetReturnsEmpty() {
	s.mockBudgetRepo.EXPECT().
		GetByPeriod(s.userID, 8, 2026).
		Return([]models.BudgetEntry{}, nil)

	rows, err := s.service.Compare(s.userID, 8, 2026)
	s.NoError(err)
	s.Empty(rows)
}

func (s *ComparisonServiceTestSuite) TestCompareByCategory_RollsUpSubcategories() {
	s.mockBudgetRepo.EXPECT().
		GetByPeriod(s.userID, 8, 2026).
		Return([]models.BudgetEntry{
			budgetEntry(s.userID, "Food", "Groceries", 400),
			budgetEntry(s.userID, "Food", "Dining Out & Catering", 100),
			budgetEntry(s.userID, "Housing", "Electricity", 120),
		}, nil)
	s.mockAggregation.EXPECT().
		SlotTotals(s.userID, 8, 2026).
		Return([]models.SlotTotal{
			slotTotal("Food", "Groceries", 450),
			slotTotal("Food", "Dining Out & Catering", 100),
			slotTotal("Housing", "Electricity", 90),
		}, nil)

	rows, err := s.service.CompareByCategory(s.userID, 8, 2026)
	s.NoError(err)
	s.Len(rows, 2)

	s.Equal("Food", rows[0].Category)
	s.Empty(rows[0].Subcategory)
	s.True(rows[0].PlannedAmount.Equal(decimal.NewFromInt(500)))
	s.True(rows[0].ActualAmount.Equal(decimal.NewFromInt(550)))
	s.Equal(StatusOverBudget, rows[0].Status)
	s.Equal(110.0, rows[0].Percentage)

	s.Equal("Housing", rows[1].Category)
	s.Equal(StatusOnTrack, rows[1].Status)
}
