package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec

	BookingsCreated   prometheus.Counter
	BookingsCancelled *prometheus.CounterVec
	BookingsPurged    prometheus.Counter

	StudySessions    *prometheus.CounterVec
	WebhookDelivered *prometheus.CounterVec
}

// New создает и регистрирует метрики в отдельном registry
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "lab_bookings_created_total",
			Help:        "Seat bookings created",
			ConstLabels: constLabels,
		}),
		BookingsCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "lab_bookings_cancelled_total",
			Help:        "Seat bookings removed",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		BookingsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "lab_bookings_purged_total",
			Help:        "Seat bookings removed by blocking rules",
			ConstLabels: constLabels,
		}),
		StudySessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "study_sessions_total",
			Help:        "Study room session lifecycle events",
			ConstLabels: constLabels,
		}, []string{"event"}),
		WebhookDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "webhook_deliveries_total",
			Help:        "Webhook deliveries by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.BookingsCreated,
		m.BookingsCancelled,
		m.BookingsPurged,
		m.StudySessions,
		m.WebhookDelivered,
	)

	return m
}

// Handler возвращает HTTP handler для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry нужен тестам для чтения значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Nil-safe счетчики доменных событий. Сервисы вызывают их без проверки включенности метрик.

func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) BookingsRemoved(reason string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BookingsCancelled.WithLabelValues(reason).Add(float64(n))
	if reason == ReasonPurge {
		m.BookingsPurged.Add(float64(n))
	}
}

func (m *Metrics) StudySessionEvent(event string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.StudySessions.WithLabelValues(event).Add(float64(n))
}

func (m *Metrics) WebhookOutcome(outcome string) {
	if m == nil {
		return
	}
	m.WebhookDelivered.WithLabelValues(outcome).Inc()
}

// Причины удаления бронирований
const (
	ReasonUser  = "user"
	ReasonAdmin = "admin"
	ReasonBulk  = "bulk"
	ReasonPurge = "purge"
)

// События жизненного цикла сессий
const (
	SessionStarted = "started"
	SessionEnded   = "ended"
	SessionExpired = "expired"
)

// Результаты отправки webhook
const (
	WebhookSuccess = "success"
	WebhookFailure = "failure"
)
