package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	DBConnectionsOpen  prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBConnectionsInUse prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),

		DBQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"service", "operation", "status"},
		),
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),

		DBConnectionsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		DBConnectionsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		DBConnectionsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections in use",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
	}
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(service, method, path).Observe(seconds)
}

// ObserveDBQuery записывает метрики одного запроса к БД
func (m *Metrics) ObserveDBQuery(service, operation, status string, seconds float64) {
	m.DBQueriesTotal.WithLabelValues(service, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(service, operation).Observe(seconds)
}
