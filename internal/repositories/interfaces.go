package repositories

import (
	"time"

	"family-budget-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	UpdateLastLogin(userID uuid.UUID) error
}

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Expense, error)
	GetByCategoryAndDateRange(userID uuid.UUID, category string, startDate, endDate time.Time) ([]models.Expense, error)
	GetByMonth(userID uuid.UUID, month, year int) ([]models.Expense, error)
	GetMonthlyTotal(userID uuid.UUID, month, year int) (decimal.Decimal, error)
	Update(expense *models.Expense) error
	Delete(id, userID uuid.UUID) error
}

// IncomeRepositoryInterface defines the contract for income repository operations
type IncomeRepositoryInterface interface {
	Create(income *models.Income) error
	GetByID(id uuid.UUID) (*models.Income, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Income, int64, error)
	GetByMonth(userID uuid.UUID, month, year int) ([]models.Income, error)
	GetMonthlyTotal(userID uuid.UUID, month, year int) (decimal.Decimal, error)
	Delete(id, userID uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Upsert(entry *models.BudgetEntry) error
	GetByPeriod(userID uuid.UUID, month, year int) ([]models.BudgetEntry, error)
	GetBySlot(userID uuid.UUID, category, subcategory string, month, year int) (*models.BudgetEntry, error)
	Delete(id, userID uuid.UUID) error
	CopyToPeriod(userID uuid.UUID, fromMonth, fromYear, toMonth, toYear int) (int64, error)
}
