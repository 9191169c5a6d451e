package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthUsernameTaken      ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidCategory ErrorCode = "VALIDATION_005"
	ValidationInvalidDate     ErrorCode = "VALIDATION_006"
	ValidationInvalidAmount   ErrorCode = "VALIDATION_007"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound     ErrorCode = "EXPENSE_001"
	ExpenseInvalidID    ErrorCode = "EXPENSE_002"
	ExpenseNotOwned     ErrorCode = "EXPENSE_003"
)

// Income error codes (INCOME_*)
const (
	IncomeNotFound      ErrorCode = "INCOME_001"
	IncomeInvalidID     ErrorCode = "INCOME_002"
	IncomeInvalidSource ErrorCode = "INCOME_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetEntryNotFound  ErrorCode = "BUDGET_001"
	BudgetInvalidPeriod  ErrorCode = "BUDGET_002"
	BudgetNotConfigured  ErrorCode = "BUDGET_003"
	BudgetNegativeAmount ErrorCode = "BUDGET_004"
)

// Analytics error codes (ANALYTICS_*)
const (
	AnalyticsInsufficientHistory ErrorCode = "ANALYTICS_001"
	AnalyticsNoTransactions      ErrorCode = "ANALYTICS_002"
	AnalyticsInvalidThreshold    ErrorCode = "ANALYTICS_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid username or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthUsernameTaken:      "An account with this username already exists",

	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidCategory: "Unknown category or subcategory",
	ValidationInvalidDate:     "Invalid date format or range",
	ValidationInvalidAmount:   "Amount must be a positive value",

	// Expense errors
	ExpenseNotFound:  "Expense not found",
	ExpenseInvalidID: "Invalid expense ID format",
	ExpenseNotOwned:  "Expense belongs to a different user",

	// Income errors
	IncomeNotFound:      "Income record not found",
	IncomeInvalidID:     "Invalid income record ID format",
	IncomeInvalidSource: "Unknown income source",

	// Budget errors
	BudgetEntryNotFound:  "Budget entry not found",
	BudgetInvalidPeriod:  "Invalid budget month or year",
	BudgetNotConfigured:  "No budget configured for this period",
	BudgetNegativeAmount: "Planned budget amount cannot be negative",

	// Analytics errors
	AnalyticsInsufficientHistory: "Not enough history for forecasting. Add at least 3 months of expenses",
	AnalyticsNoTransactions:      "No transactions found in the analysis window",
	AnalyticsInvalidThreshold:    "Anomaly threshold must be positive",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
