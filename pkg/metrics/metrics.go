package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge

	SlotsReturned prometheus.Histogram
}

// New регистрирует метрики в глобальном registry (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}),
		DBInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdle: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),

		SlotsReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "available_slots_returned",
			Help:        "Number of available slots returned per request",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 4, 8, 16, 32, 64, 128},
		}),
	}
}

// ObserveHTTPRequest записывает результат HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// ObserveSlots записывает количество слотов в ответе
func (m *Metrics) ObserveSlots(count int) {
	m.SlotsReturned.Observe(float64(count))
}
