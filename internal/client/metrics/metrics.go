// Package metrics defines and registers the Prometheus metrics emitted by
// the API transport. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace_client"

// RequestsTotal counts completed API round trips.
// Labels:
//   - method: HTTP verb (GET, POST, PATCH, DELETE)
//   - status: response status class ("2xx", "4xx", "5xx", …)
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API requests that received a response.",
	},
	[]string{"method", "status"},
)

// RequestErrorsTotal counts requests that failed before a response arrived
// (connection refused, timeout, cancelled context).
// Label:
//   - method: HTTP verb
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of API requests that failed at the transport level.",
	},
	[]string{"method"},
)

// RequestDuration measures the wall time of one API round trip.
// Label:
//   - method: HTTP verb
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of API requests from send to last body byte.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)
