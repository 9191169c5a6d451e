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
	ErrIncomeNotFound = errors.New("income record not found")
)

// incomeRepository implements IncomeRepositoryInterface
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(db *gorm.DB) IncomeRepositoryInterface {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income record
func (r *incomeRepository) Create(income *models.Income) error {
	if err := r.db.Create(income).Error; err != nil {
		return fmt.Errorf("failed to create income record: %w", err)
	}
	return nil
}

// GetByID retrieves an income record by ID
func (r *incomeRepository) GetByID(id uuid.UUID) (*models.Income, error) {
	income := &models.Income{ID: id}
	if err := r.db.First(income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to get income record: %w", err)
	}
	return income, nil
}

// GetByUserID retrieves income records for a user with pagination
func (r *incomeRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Income, int64, error) {
	var records []models.Income
	var total int64

	if err := r.db.Model(&models.Income{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count income records: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("income_date DESC").
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get income records: %w", err)
	}

	return records, total, nil
}

// GetByMonth retrieves all income records for a calendar month
func (r *incomeRepository) GetByMonth(userID uuid.UUID, month, year int) ([]models.Income, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	var records []models.Income
	if err := r.db.Where("user_id = ? AND income_date BETWEEN ? AND ?", userID, start, end).
		Order("income_date ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get income records by month: %w", err)
	}
	return records, nil
}

// GetMonthlyTotal sums income for a calendar month
func (r *incomeRepository) GetMonthlyTotal(userID uuid.UUID, month, year int) (decimal.Decimal, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND income_date BETWEEN ? AND ?", userID, start, end).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to get monthly income total: %w", err)
	}

	return result.Total, nil
}

// Delete removes an income record owned by the user
func (r *incomeRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Income{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete income record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIncomeNotFound
	}
	return nil
}
