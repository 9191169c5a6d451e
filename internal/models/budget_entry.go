package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidMonth         = errors.New("month must be between 1 and 12")
	ErrInvalidYear          = errors.New("year must be positive")
	ErrNegativePlannedAmount = errors.New("planned amount cannot be negative")
)

// BudgetEntry is one planned amount for a (category, subcategory) pair in a
// given month. A zero planned amount is valid and means "track but no budget".
type BudgetEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_slot" json:"user_id"`
	Category      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budget_slot" json:"category"`
	Subcategory   string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budget_slot" json:"subcategory"`
	PlannedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"planned_amount"`
	Month         int             `gorm:"not null;uniqueIndex:idx_budget_slot" json:"month"`
	Year          int             `gorm:"not null;uniqueIndex:idx_budget_slot" json:"year"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for BudgetEntry
func (b *BudgetEntry) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for BudgetEntry
func (b *BudgetEntry) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget entry fields
func (b *BudgetEntry) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if b.Category == "" {
		return ErrCategoryRequired
	}
	if b.PlannedAmount.IsNegative() {
		return ErrNegativePlannedAmount
	}
	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidMonth
	}
	if b.Year <= 0 {
		return ErrInvalidYear
	}
	return nil
}

// TableName returns the table name for BudgetEntry
func (b *BudgetEntry) TableName() string {
	return "budget_entries"
}
