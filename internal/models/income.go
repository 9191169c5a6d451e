package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrSourceRequired = errors.New("income source is required")

// Income is a single recorded income transaction (salary, bonus, etc.).
// Income has no subcategory dimension.
type Income struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Source      string          `gorm:"type:varchar(50);not null" json:"source"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	IncomeDate  time.Time       `gorm:"not null;index" json:"income_date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Income
func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	return i.Validate()
}

// Validate validates the income fields
func (i *Income) Validate() error {
	if i.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if i.Source == "" {
		return ErrSourceRequired
	}
	if i.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if i.IncomeDate.IsZero() {
		return errors.New("income date is required")
	}
	return nil
}

// TableName returns the table name for Income
func (i *Income) TableName() string {
	return "income_records"
}
