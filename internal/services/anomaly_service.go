package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"family-budget-api/internal/config"
	"family-budget-api/internal/models"
	"family-budget-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"

	// highSeverityZScore is the z-score above which an anomaly is High
	// regardless of the caller-supplied detection threshold.
	highSeverityZScore = 3.0
)

var (
	ErrNoTransactions = errors.New("no transactions found in the analysis window")
)

type anomalyService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	cfg         config.AnalyticsConfig
}

// NewAnomalyService creates the statistical anomaly detection service
func NewAnomalyService(expenseRepo repositories.ExpenseRepositoryInterface, cfg config.AnalyticsConfig) AnomalyServiceInterface {
	return &anomalyService{
		expenseRepo: expenseRepo,
		cfg:         cfg,
	}
}

// DetectAnomalies flags transactions whose z-score strictly exceeds the
// threshold within their category, over the trailing window. Categories with
// too few transactions or zero variance are skipped entirely.
func (s *anomalyService) DetectAnomalies(userID uuid.UUID, threshold float64) ([]models.Anomaly, error) {
	if threshold <= 0 {
		threshold = s.cfg.AnomalyThreshold
	}

	now := time.Now()
	start := now.AddDate(0, -s.cfg.AnomalyWindowMonths, 0)

	expenses, err := s.expenseRepo.GetByDateRange(userID, start, now)
	if err != nil {
		slog.Error("failed to fetch expenses for anomaly detection",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	if len(expenses) == 0 {
		return nil, ErrNoTransactions
	}

	byCategory := make(map[string][]models.Expense)
	for _, e := range expenses {
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}

	var anomalies []models.Anomaly
	for _, group := range byCategory {
		anomalies = append(anomalies, s.detectInCategory(group, threshold)...)
	}

	// Largest amounts first; ties keep their original transaction order.
	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].Amount.GreaterThan(anomalies[j].Amount)
	})

	slog.Info("anomaly detection completed",
		"user_id", userID,
		"threshold", threshold,
		"transactions_scanned", len(expenses),
		"anomalies_found", len(anomalies))

	return anomalies, nil
}

func (s *anomalyService) detectInCategory(expenses []models.Expense, threshold float64) []models.Anomaly {
	if len(expenses) < s.cfg.AnomalyMinSampleSize {
		return nil
	}

	amounts := make([]float64, len(expenses))
	for i := range expenses {
		amounts[i] = expenses[i].Amount.InexactFloat64()
	}

	m := mean(amounts)
	std := populationStdDev(amounts)
	if std == 0 {
		return nil
	}

	expectedRange := models.AmountRange{
		Low:  decimal.NewFromFloat(m - 2*std).Round(2),
		High: decimal.NewFromFloat(m + 2*std).Round(2),
	}

	var anomalies []models.Anomaly
	for i := range expenses {
		e := &expenses[i]

		z := (amounts[i] - m) / std
		if z < 0 {
			z = -z
		}
		// Strictly above: a transaction sitting exactly on the threshold
		// is not an anomaly.
		if z <= threshold {
			continue
		}

		severity := SeverityMedium
		if z > highSeverityZScore {
			severity = SeverityHigh
		}

		anomalies = append(anomalies, models.Anomaly{
			TransactionID: e.ID,
			Category:      e.Category,
			Subcategory:   e.Subcategory,
			Amount:        e.Amount,
			Date:          e.ExpenseDate,
			ExpectedRange: expectedRange,
			Deviation:     z,
			Severity:      severity,
		})
	}

	return anomalies
}
