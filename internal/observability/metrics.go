package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "health_tracker"

var (
	analysisCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analysis",
		Name:      "runs_total",
		Help:      "Analysis runs by kind and outcome.",
	}, []string{"kind", "outcome"})
	reportCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "report",
		Name:      "generated_total",
		Help:      "Health reports generated by report type.",
	}, []string{"report_type"})
	reminderCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reminder",
		Name:      "auto_created_total",
		Help:      "Reminders derived from medication records.",
	})
	shareRejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "social",
		Name:      "share_rejected_total",
		Help:      "Share content checks that failed, by content type and reason.",
	}, []string{"content_type", "reason"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route, method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)

func init() {
	prometheus.MustRegister(analysisCounter, reportCounter, reminderCounter, shareRejectedCounter, httpDuration)
}

// RecordAnalysis counts an analysis run; ok=false marks a failure envelope
func RecordAnalysis(kind string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	analysisCounter.WithLabelValues(kind, outcome).Inc()
}

func RecordReportGenerated(reportType string) {
	reportCounter.WithLabelValues(reportType).Inc()
}

func RecordRemindersCreated(n int) {
	if n <= 0 {
		return
	}
	reminderCounter.Add(float64(n))
}

func RecordShareRejected(contentType, reason string) {
	shareRejectedCounter.WithLabelValues(contentType, reason).Inc()
}

func ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	httpDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
