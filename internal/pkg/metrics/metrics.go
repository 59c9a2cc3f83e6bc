// Package metrics holds the Prometheus collectors of the ordering service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups every collector the service exports.
type Metrics struct {
	SessionsStarted prometheus.Counter
	SessionsExpired prometheus.Counter
	SessionsActive  prometheus.Gauge
	LinesAdded      prometheus.Counter
	OrdersPlaced    prometheus.Counter
	OrderValue      prometheus.Histogram

	ActionsRejected *prometheus.CounterVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "pizza_sessions_started_total",
			Help: "Total number of ordering sessions started",
		}),
		SessionsExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "pizza_sessions_expired_total",
			Help: "Total number of sessions dropped for inactivity",
		}),
		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pizza_sessions_active",
			Help: "Number of sessions currently held in memory",
		}),
		LinesAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "pizza_cart_lines_added_total",
			Help: "Total number of pizzas committed to carts",
		}),
		OrdersPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "pizza_orders_placed_total",
			Help: "Total number of orders placed",
		}),
		OrderValue: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pizza_order_value",
			Help:    "Total price of placed orders",
			Buckets: prometheus.LinearBuckets(100, 100, 10),
		}),
		ActionsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pizza_actions_rejected_total",
			Help: "Total number of wizard actions refused in the current step",
		}, []string{"action"}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}
