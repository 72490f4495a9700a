package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiftsense_analyses_total",
		Help: "Number of employee analyses performed",
	})
	PredictionsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiftsense_predictions_saved_total",
		Help: "Number of predictions upserted into the history",
	})
	WebhookFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiftsense_webhook_failures_total",
		Help: "Number of failed automation-webhook submissions",
	})
	BatchRowsValid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiftsense_batch_rows_valid_total",
		Help: "Number of batch rows that passed validation",
	})
	BatchRowsInvalid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiftsense_batch_rows_invalid_total",
		Help: "Number of batch rows that failed validation",
	})
	BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shiftsense_batch_duration_seconds",
		Help:    "Wall-clock duration of batch runs",
		Buckets: prometheus.DefBuckets,
	})
)
