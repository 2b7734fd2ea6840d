package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Names holds the wire-visible metric identifiers for one service.
type Names struct {
	Created         string
	Retrieved       string
	Errors          string
	OpDuration      string
	RequestDuration string
}

var (
	// TransactionNames are the transaction service's metric names.
	TransactionNames = Names{
		Created:         "transactions_created_total",
		Retrieved:       "transactions_retrieved_total",
		Errors:          "transaction_errors_total",
		OpDuration:      "transaction_duration_seconds",
		RequestDuration: "api_request_duration_seconds",
	}
	// NotificationNames are the notification service's metric names.
	NotificationNames = Names{
		Created:         "notifications_sent_total",
		Retrieved:       "notifications_retrieved_total",
		Errors:          "notification_errors_total",
		OpDuration:      "notification_duration_seconds",
		RequestDuration: "api_request_duration_seconds",
	}
)

// Metrics bundles one service's collectors on a private registry, so each
// process owns its accumulators instead of sharing package-global state.
// All collectors are safe for concurrent use.
type Metrics struct {
	Created         prometheus.Counter
	Retrieved       prometheus.Counter
	Errors          prometheus.Counter
	OpDuration      prometheus.Histogram
	RequestDuration prometheus.Histogram

	registry *prometheus.Registry
}

// New creates and registers the collectors for one service.
func New(names Names) *Metrics {
	m := &Metrics{
		Created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: names.Created,
			Help: "Total records created.",
		}),
		Retrieved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: names.Retrieved,
			Help: "Total records retrieved.",
		}),
		Errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: names.Errors,
			Help: "Total operation errors.",
		}),
		OpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: names.OpDuration,
			Help: "Duration of record operations in seconds.",
		}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: names.RequestDuration,
			Help: "Duration of API requests in seconds.",
		}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(m.Created, m.Retrieved, m.Errors, m.OpDuration, m.RequestDuration)
	return m
}

// Handler returns the text-exposition endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
