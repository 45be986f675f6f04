package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge

	// Исходы движка доступности и расчёта стоимости (condition = ok или код ошибки входа)
	EngineOutcomes *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query latency.",
				ConstLabels: constLabels,
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
		DBQueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_query_errors_total",
				Help:        "Total number of failed database queries.",
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBOpenConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_open_connections",
				Help:        "Number of established connections.",
				ConstLabels: constLabels,
			},
		),
		DBInUse: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_in_use_connections",
				Help:        "Number of connections currently in use.",
				ConstLabels: constLabels,
			},
		),
		DBIdle: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_idle_connections",
				Help:        "Number of idle connections.",
				ConstLabels: constLabels,
			},
		),
		EngineOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "engine_outcomes_total",
				Help:        "Availability and pricing results by condition.",
				ConstLabels: constLabels,
			},
			[]string{"operation", "condition"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.EngineOutcomes,
	)

	return m
}

// ObserveEngine учитывает результат проверки доступности или расчёта стоимости
// Безопасен для nil (метрики выключены)
func (m *Metrics) ObserveEngine(operation, condition string) {
	if m == nil {
		return
	}
	m.EngineOutcomes.WithLabelValues(operation, condition).Inc()
}
