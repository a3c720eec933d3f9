package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "salon_booking"

// Metrics набор Prometheus-метрик сервиса. Все методы безопасны для nil-получателя
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	apiRequestsTotal    *prometheus.CounterVec
	apiRequestDuration  *prometheus.HistogramVec
	sessionsActive      prometheus.Gauge
	submissionsTotal    *prometheus.CounterVec
	staleRefreshesTotal prometheus.Counter
}

// New создает и регистрирует метрики в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests handled",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "salonapi",
			Name:        "requests_total",
			Help:        "Total requests sent to the salon API",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		apiRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "salonapi",
			Name:        "request_duration_seconds",
			Help:        "Salon API request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "sessions",
			Name:        "active",
			Help:        "Booking sessions currently open",
			ConstLabels: labels,
		}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "sessions",
			Name:        "submissions_total",
			Help:        "Appointment submissions by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		staleRefreshesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "sessions",
			Name:        "stale_refreshes_total",
			Help:        "Availability results dropped because a newer refresh was requested",
			ConstLabels: labels,
		}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.apiRequestsTotal,
		m.apiRequestDuration,
		m.sessionsActive,
		m.submissionsTotal,
		m.staleRefreshesTotal,
	)

	return m
}

func (m *Metrics) ObserveHTTP(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveAPI(operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.apiRequestsTotal.WithLabelValues(operation, status).Inc()
	m.apiRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.sessionsActive.Set(float64(n))
}

func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncStaleRefresh() {
	if m == nil {
		return
	}
	m.staleRefreshesTotal.Inc()
}
