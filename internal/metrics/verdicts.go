package metrics

import (
	"time"

	"github.com/burnsentry/burnsentry-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnsentry",
		Subsystem: "validator",
		Name:      "verdicts_total",
		Help:      "Count of rendered burn check verdicts.",
	}, []string{"coin", "network", "op", "verdict", "reason"})
	checkFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burnsentry",
		Subsystem: "validator",
		Name:      "check_failures_total",
		Help:      "Count of burn checks that failed before a verdict.",
	}, []string{"coin", "network"})
	checkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "burnsentry",
		Subsystem: "validator",
		Name:      "check_duration_seconds",
		Help:      "Duration of full burn checks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})
)

// Verdicts tracks burn check outcomes.
type Verdicts struct {
	coin    model.Coin
	network model.Network
}

// NewVerdicts constructs a metrics collector for check outcomes.
func NewVerdicts(coin model.Coin, network model.Network) *Verdicts {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Verdicts{coin: coin, network: network}
}

// ObserveVerdict records a rendered verdict.
func (m Verdicts) ObserveVerdict(op model.OpKind, verdict model.Verdict, started time.Time) {
	outcome := "accepted"
	if !verdict.Accepted {
		outcome = "rejected"
	}
	verdictsTotal.WithLabelValues(string(m.coin), string(m.network), string(op), outcome, string(verdict.Reason)).Inc()
	checkDuration.WithLabelValues(string(m.coin), string(m.network), "success").Observe(time.Since(started).Seconds())
}

// ObserveFailure records a check that failed before reaching a verdict.
func (m Verdicts) ObserveFailure(_ error, started time.Time) {
	checkFailuresTotal.WithLabelValues(string(m.coin), string(m.network)).Inc()
	checkDuration.WithLabelValues(string(m.coin), string(m.network), "error").Observe(time.Since(started).Seconds())
}
