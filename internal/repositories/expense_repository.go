package repositories

import (
	"errors"
	"fmt"
	"time"

	"family-budget-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID
func (r *expenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	expense := &models.Expense{ID: id}
	if err := r.db.First(expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// GetByUserID retrieves expenses for a user with pagination
func (r *expenseRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	if err := r.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("expense_date DESC").
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get expenses: %w", err)
	}

	return expenses, total, nil
}

// GetByDateRange retrieves expenses within a date range ordered by date ascending.
// Ascending order keeps downstream monthly series in period order.
func (r *expenseRepository) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("user_id = ? AND expense_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("expense_date ASC, created_at ASC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by date range: %w", err)
	}
	return expenses, nil
}

// GetByCategoryAndDateRange retrieves a single category's expenses within a date range
func (r *expenseRepository) GetByCategoryAndDateRange(userID uuid.UUID, category string, startDate, endDate time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("user_id = ? AND category = ? AND expense_date BETWEEN ? AND ?",
		userID, category, startDate, endDate).
		Order("expense_date ASC, created_at ASC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by category: %w", err)
	}
	return expenses, nil
}

// GetByMonth retrieves all expenses for a calendar month
func (r *expenseRepository) GetByMonth(userID uuid.UUID, month, year int) ([]models.Expense, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return r.GetByDateRange(userID, start, end)
}

// GetMonthlyTotal sums expenses for a calendar month
func (r *expenseRepository) GetMonthlyTotal(userID uuid.UUID, month, year int) (decimal.Decimal, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND expense_date BETWEEN ? AND ?", userID, start, end).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to get monthly expense total: %w", err)
	}

	return result.Total, nil
}

// Update updates an expense
func (r *expenseRepository) Update(expense *models.Expense) error {
	if err := r.db.Save(expense).Error; err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

// Delete removes an expense owned by the user
func (r *expenseRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
