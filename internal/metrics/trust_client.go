package metrics

import (
	"time"

	"github.com/burnsentry/burnsentry-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trustRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnsentry",
		Subsystem: "trust_client",
		Name:      "operations_total",
		Help:      "Count of provenance trust service calls.",
	}, []string{"operation", "coin", "network", "status"})
	trustRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "burnsentry",
		Subsystem: "trust_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of provenance trust service calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// TrustClient tracks metrics for provenance trust service calls.
type TrustClient struct {
	coin    model.Coin
	network model.Network
}

// NewTrustClient constructs a metrics collector for trust service calls.
func NewTrustClient(coin model.Coin, network model.Network) *TrustClient {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &TrustClient{coin: coin, network: network}
}

// Observe records a single trust service call outcome and duration.
func (m TrustClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	trustRequestsTotal.WithLabelValues(operation, string(m.coin), string(m.network), status).Inc()
	trustRequestDuration.WithLabelValues(operation, string(m.coin), string(m.network), status).Observe(time.Since(started).Seconds())
}
