package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrCategoryRequired   = errors.New("category is required")
	ErrExpenseDateMissing = errors.New("expense date is required")
)

// Expense is a single recorded expense transaction. Amounts are always
// positive; the expense/income split is carried by the table, not a sign.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Category    string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Subcategory string          `gorm:"type:varchar(100);not null" json:"subcategory"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Tags        string          `gorm:"type:varchar(255)" json:"tags,omitempty"`
	ExpenseDate time.Time       `gorm:"not null;index" json:"expense_date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if e.Category == "" {
		return ErrCategoryRequired
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if e.ExpenseDate.IsZero() {
		return ErrExpenseDateMissing
	}
	return nil
}

// Period returns the year-month bucket the expense falls into, e.g. "2026-08".
func (e *Expense) Period() string {
	return e.ExpenseDate.Format("2006-01")
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}
