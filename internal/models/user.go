package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrPasswordHashMissing = errors.New("password hash is required")
)

// User is the owner of expenses, income records and budget plans.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if len(strings.TrimSpace(u.Username)) < 3 {
		return ErrUsernameTooShort
	}
	if u.PasswordHash == "" {
		return ErrPasswordHashMissing
	}
	return nil
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
