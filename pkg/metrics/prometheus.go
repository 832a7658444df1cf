package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	pagesFetched  *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	qualifying    prometheus.Counter
	eventsTotal   *prometheus.CounterVec
	notifications *prometheus.CounterVec
	runDuration   prometheus.Histogram
}

// New creates a new Prometheus metrics recorder. Call once per process; the
// collectors register on the default registry.
func New() *Recorder {
	return &Recorder{
		pagesFetched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dartwatch_pages_fetched_total",
				Help: "Listing pages fetched from OpenDART",
			},
			[]string{"segment"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dartwatch_errors_total",
				Help: "Errors encountered by kind",
			},
			[]string{"type"},
		),
		qualifying: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dartwatch_qualifying_reports_total",
				Help: "Listing entries matching an ownership-report title",
			},
		),
		eventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dartwatch_purchase_events_total",
				Help: "On-market purchase events detected",
			},
			[]string{"corp"},
		),
		notifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dartwatch_notifications_total",
				Help: "Telegram deliveries by result",
			},
			[]string{"result"},
		),
		runDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dartwatch_run_duration_seconds",
				Help:    "Duration of one monitoring pass",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// RecordPageFetch counts one listing page fetched for a segment.
func (r *Recorder) RecordPageFetch(segment string) {
	r.pagesFetched.WithLabelValues(segment).Inc()
}

// RecordError counts an error occurrence by kind.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordQualifying counts qualifying listing entries.
func (r *Recorder) RecordQualifying(count int) {
	r.qualifying.Add(float64(count))
}

// RecordEvent counts one detected purchase event.
func (r *Recorder) RecordEvent(corpName string) {
	r.eventsTotal.WithLabelValues(corpName).Inc()
}

// RecordNotification counts one delivery attempt.
func (r *Recorder) RecordNotification(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	r.notifications.WithLabelValues(result).Inc()
}

// RecordRunDuration records the duration of one pass in seconds.
func (r *Recorder) RecordRunDuration(seconds float64) {
	r.runDuration.Observe(seconds)
}
