package metrics

import (
	"time"

	"github.com/burnsentry/burnsentry-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnsentry",
		Subsystem: "clickhouse",
		Name:      "operations_total",
		Help:      "Count of ClickHouse repository operations.",
	}, []string{"operation", "coin", "network", "status"})
	clickhouseOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "burnsentry",
		Subsystem: "clickhouse",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ClickHouse repository operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// ClickhouseRepository tracks metrics for audit log repository operations.
type ClickhouseRepository struct{}

// NewClickhouseRepository constructs a metrics collector for the repository.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe records a single repository operation outcome and duration.
func (m ClickhouseRepository) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	status := statusLabel(err)
	clickhouseOperationsTotal.WithLabelValues(operation, string(coin), string(network), status).Inc()
	clickhouseOperationDuration.WithLabelValues(operation, string(coin), string(network), status).Observe(time.Since(started).Seconds())
}
