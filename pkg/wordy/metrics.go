package wordy

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes recorded in wordy_client_requests_total.
const (
	outcomeSuccess       = "success"
	outcomeRemoteFailure = "remote_failure"
	outcomeTransport     = "transport_failure"
	outcomeMalformed     = "malformed_response"
	outcomeRaw           = "raw"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordy_client_requests_total",
		Help: "Wordy API calls by operation and outcome",
	}, []string{
		"operation", // e.g. document/info
		"outcome",   // success|remote_failure|transport_failure|malformed_response|raw
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordy_client_request_duration_seconds",
		Help:    "Duration of Wordy API round trips",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

func observeRequest(operation, outcome string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(operation, outcome).Inc()
	requestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
