package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesRecordedTotal     *prometheus.CounterVec
	incomeRecordedTotal       prometheus.Counter
	budgetEntriesUpserted     prometheus.Counter
	forecastRequests          *prometheus.CounterVec
	forecastDuration          prometheus.Histogram
	anomalyScans              *prometheus.CounterVec
	anomaliesFlagged          prometheus.Counter
	recommendationRequests    *prometheus.CounterVec
	analyticsDuration         *prometheus.HistogramVec
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesRecordedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_recorded_total",
				Help: "Total number of expenses recorded",
			},
			[]string{"category"},
		),
		incomeRecordedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "income_recorded_total",
				Help: "Total number of income records created",
			},
		),
		budgetEntriesUpserted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_entries_upserted_total",
				Help: "Total number of budget entries created or updated",
			},
		),
		forecastRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecast_requests_total",
				Help: "Total number of forecast requests",
			},
			[]string{"status"},
		),
		forecastDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forecast_duration_milliseconds",
				Help:    "Forecast computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		anomalyScans: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "anomaly_scans_total",
				Help: "Total number of anomaly detection scans",
			},
			[]string{"status"},
		),
		anomaliesFlagged: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "anomalies_flagged_total",
				Help: "Total number of transactions flagged as anomalous",
			},
		),
		recommendationRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_requests_total",
				Help: "Total number of recommendation requests",
			},
			[]string{"status"},
		),
		analyticsDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_duration_milliseconds",
				Help:    "Analytics computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "expense_recorded":
		m.expensesRecordedTotal.WithLabelValues(tags["category"]).Inc()
	case "income_recorded":
		m.incomeRecordedTotal.Inc()
	case "budget_entry_upserted":
		m.budgetEntriesUpserted.Inc()
	case "forecast_request":
		if status != "" {
			m.forecastRequests.WithLabelValues(status).Inc()
		}
	case "anomaly_scan":
		if status != "" {
			m.anomalyScans.WithLabelValues(status).Inc()
		}
	case "anomaly_flagged":
		m.anomaliesFlagged.Inc()
	case "recommendation_request":
		if status != "" {
			m.recommendationRequests.WithLabelValues(status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "forecast":
		m.forecastDuration.Observe(float64(duration.Milliseconds()))
	case "anomaly_detection", "budget_comparison", "recommendation":
		m.analyticsDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	// No gauge-backed metrics currently.
	_ = name
	_ = value
	_ = tags
}
