package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "library"

const (
	OpIssue  = "issue"
	OpRenew  = "renew"
	OpReturn = "return"
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// LoanMetrics counts lifecycle operations. A nil *LoanMetrics is a no-op.
type LoanMetrics struct {
	completed *prometheus.CounterVec
	rejected  *prometheus.CounterVec
}

func NewLoanMetrics(reg prometheus.Registerer) *LoanMetrics {
	m := &LoanMetrics{
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "loans",
			Name:      "completed_total",
			Help:      "Lifecycle operations that committed, by operation.",
		}, []string{"operation"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "loans",
			Name:      "rejected_total",
			Help:      "Lifecycle operations that failed, by operation and reason.",
		}, []string{"operation", "reason"}),
	}
	reg.MustRegister(m.completed, m.rejected)
	return m
}

func (m *LoanMetrics) Completed(op string) {
	if m == nil {
		return
	}
	m.completed.WithLabelValues(op).Inc()
}

func (m *LoanMetrics) Rejected(op, reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(op, reason).Inc()
}

// CompletedCounter exposes the underlying counter for assertions.
func (m *LoanMetrics) CompletedCounter(op string) prometheus.Counter {
	return m.completed.WithLabelValues(op)
}

func (m *LoanMetrics) RejectedCounter(op, reason string) prometheus.Counter {
	return m.rejected.WithLabelValues(op, reason)
}

type HTTPMetrics struct {
	requests *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.requests)
	return m
}

func (m *HTTPMetrics) Observe(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, status).Observe(seconds)
}
