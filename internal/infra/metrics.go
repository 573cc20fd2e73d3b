package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gastropos_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gastropos_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SalesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gastropos_sales_total",
			Help: "Sales committed, by origin (directa|pedido) and payment method",
		},
		[]string{"origin", "payment_method"},
	)

	SalesAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gastropos_sales_amount",
			Help: "Sum of committed sale totals, by payment method",
		},
		[]string{"payment_method"},
	)

	CashSessionEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gastropos_cash_session_events_total",
			Help: "Cash session lifecycle events (open|close)",
		},
		[]string{"event"},
	)

	InvoicesIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gastropos_invoices_issued_total",
			Help: "Invoices issued, by type",
		},
		[]string{"tipo"},
	)

	JobsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gastropos_jobs_processed_total",
			Help: "Background jobs processed, by type and result",
		},
		[]string{"type", "result"},
	)

	BreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gastropos_circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		SalesTotal,
		SalesAmount,
		CashSessionEvents,
		InvoicesIssued,
		JobsProcessed,
		BreakerState,
	)
}

// ObserveSale records a committed sale.
func ObserveSale(origin, paymentMethod string, total decimal.Decimal) {
	SalesTotal.WithLabelValues(origin, paymentMethod).Inc()
	f, _ := total.Float64()
	SalesAmount.WithLabelValues(paymentMethod).Add(f)
}
