package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for gateway requests
const (
	OutcomeApproved = "approved"
	OutcomeDeclined = "declined"
	OutcomeError    = "error"
)

// Credential sources
const (
	CredentialSourceConfig = "config"
	CredentialSourceSecret = "secret"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zift_gateway_requests_total",
			Help: "Total number of requests sent to the Zift gateway",
		},
		[]string{
			"request_type",  // sale, sale-auth, capture, refund, void, account-verification
			"outcome",       // approved, declined, error
			"response_code", // raw vendor code (A01, D03, ...) or empty
		},
	)

	gatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "zift_gateway_request_duration_seconds",
			Help: "Round-trip time of Zift gateway requests in seconds",
			// 100ms to 30s (typical payment processing times)
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"request_type"},
	)

	gatewayRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "zift_gateway_requests_in_flight",
			Help: "Number of Zift gateway requests currently awaiting a response",
		},
	)

	credentialResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zift_credential_resolutions_total",
			Help: "Total number of Zift credential lookups",
		},
		[]string{"source", "outcome"}, // outcome: ok, error
	)
)

// TrackGatewayRequest marks a request as in flight; call the returned func when it completes
func TrackGatewayRequest() func() {
	gatewayRequestsInFlight.Inc()
	return gatewayRequestsInFlight.Dec
}

// RecordGatewayRequest records the outcome and latency of one gateway request
func RecordGatewayRequest(requestType, outcome, responseCode string, elapsed time.Duration) {
	gatewayRequestsTotal.WithLabelValues(requestType, outcome, responseCode).Inc()
	gatewayRequestDuration.WithLabelValues(requestType).Observe(elapsed.Seconds())
}

// RecordCredentialResolution counts one credential lookup from source
func RecordCredentialResolution(source string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = OutcomeError
	}
	credentialResolutionsTotal.WithLabelValues(source, outcome).Inc()
}
