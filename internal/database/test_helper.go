package database

import (
	"fmt"
	"testing"
	"time"

	"family-budget-api/internal/config"
	"family-budget-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed_password",
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestExpense(t *testing.T, db *DB, userID uuid.UUID, category, subcategory string, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Category:    category,
		Subcategory: subcategory,
		Amount:      decimal.NewFromFloat(amount),
		ExpenseDate: date,
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return expense
}

func CreateTestIncome(t *testing.T, db *DB, userID uuid.UUID, source string, amount float64, date time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:     userID,
		Source:     source,
		Amount:     decimal.NewFromFloat(amount),
		IncomeDate: date,
	}

	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}

	return income
}

func CreateTestBudgetEntry(t *testing.T, db *DB, userID uuid.UUID, category, subcategory string, planned float64, month, year int) *models.BudgetEntry {
	t.Helper()

	entry := &models.BudgetEntry{
		UserID:        userID,
		Category:      category,
		Subcategory:   subcategory,
		PlannedAmount: decimal.NewFromFloat(planned),
		Month:         month,
		Year:          year,
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test budget entry: %v", err)
	}

	return entry
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"budget_entries",
		"income_records",
		"expenses",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
