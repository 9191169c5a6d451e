package repositories

import (
	"errors"
	"fmt"

	"family-budget-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetEntryNotFound = errors.New("budget entry not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates or updates the planned amount for a budget slot.
// A slot is unique per (user, category, subcategory, month, year).
func (r *budgetRepository) Upsert(entry *models.BudgetEntry) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "category"},
			{Name: "subcategory"},
			{Name: "month"},
			{Name: "year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"planned_amount", "updated_at"}),
	}).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to upsert budget entry: %w", err)
	}
	return nil
}

// GetByPeriod retrieves all budget entries for a month
func (r *budgetRepository) GetByPeriod(userID uuid.UUID, month, year int) ([]models.BudgetEntry, error) {
	var entries []models.BudgetEntry
	if err := r.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("category ASC, subcategory ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get budget entries: %w", err)
	}
	return entries, nil
}

// GetBySlot retrieves one budget entry by its unique slot
func (r *budgetRepository) GetBySlot(userID uuid.UUID, category, subcategory string, month, year int) (*models.BudgetEntry, error) {
	var entry models.BudgetEntry
	if err := r.db.Where(
		"user_id = ? AND category = ? AND subcategory = ? AND month = ? AND year = ?",
		userID, category, subcategory, month, year,
	).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetEntryNotFound
		}
		return nil, fmt.Errorf("failed to get budget entry: %w", err)
	}
	return &entry, nil
}

// Delete removes a budget entry owned by the user
func (r *budgetRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.BudgetEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetEntryNotFound
	}
	return nil
}

// CopyToPeriod copies all budget entries from one month to another, skipping
// slots that already exist in the target month. Returns the number copied.
func (r *budgetRepository) CopyToPeriod(userID uuid.UUID, fromMonth, fromYear, toMonth, toYear int) (int64, error) {
	source, err := r.GetByPeriod(userID, fromMonth, fromYear)
	if err != nil {
		return 0, err
	}

	var copied int64
	err = r.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range source {
			target := models.BudgetEntry{
				UserID:        entry.UserID,
				Category:      entry.Category,
				Subcategory:   entry.Subcategory,
				PlannedAmount: entry.PlannedAmount,
				Month:         toMonth,
				Year:          toYear,
			}

			result := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "user_id"},
					{Name: "category"},
					{Name: "subcategory"},
					{Name: "month"},
					{Name: "year"},
				},
				DoNothing: true,
			}).Create(&target)
			if result.Error != nil {
				return fmt.Errorf("failed to copy budget entry: %w", result.Error)
			}
			copied += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return copied, nil
}
