package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "tidepool"
	metricsSubsystem = "amm"
)

// Metrics exposes pool activity to the node's prometheus registry. A nil
// receiver is a no-op so keepers built without metrics stay safe.
type Metrics struct {
	swaps       *prometheus.CounterVec
	deposits    prometheus.Counter
	withdrawals prometheus.Counter
	rewards     prometheus.Counter
	paused      prometheus.Gauge
	reserves    *prometheus.GaugeVec
	totalShares prometheus.Gauge
}

var (
	metricsOnce sync.Once
	metricsInst *Metrics
)

// NewMetrics returns the process-wide metrics set. The default registry
// rejects duplicate registration, so every keeper shares one instance.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInst = &Metrics{
			swaps: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "swaps_total",
				Help:      "Number of executed swaps by direction.",
			}, []string{"asset_in", "asset_out"}),
			deposits: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "deposits_total",
				Help:      "Number of executed liquidity deposits.",
			}),
			withdrawals: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "withdrawals_total",
				Help:      "Number of executed liquidity withdrawals.",
			}),
			rewards: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "rewards_paid_total",
				Help:      "Number of swap-cycle rewards paid out.",
			}),
			paused: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "paused",
				Help:      "Whether the module is paused (1) or live (0).",
			}),
			reserves: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "pool_reserve",
				Help:      "Current pool reserve per asset.",
			}, []string{"asset"}),
			totalShares: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "pool_total_shares",
				Help:      "Current outstanding liquidity shares.",
			}),
		}
	})
	return metricsInst
}

// RecordSwap counts one executed swap.
func (m *Metrics) RecordSwap(assetIn, assetOut string) {
	if m == nil {
		return
	}
	m.swaps.WithLabelValues(assetIn, assetOut).Inc()
}

// RecordDeposit counts one executed deposit.
func (m *Metrics) RecordDeposit() {
	if m == nil {
		return
	}
	m.deposits.Inc()
}

// RecordWithdraw counts one executed withdrawal.
func (m *Metrics) RecordWithdraw() {
	if m == nil {
		return
	}
	m.withdrawals.Inc()
}

// RecordReward counts one paid swap-cycle reward.
func (m *Metrics) RecordReward() {
	if m == nil {
		return
	}
	m.rewards.Inc()
}

// SetPaused reflects the pause flag.
func (m *Metrics) SetPaused(paused bool) {
	if m == nil {
		return
	}
	if paused {
		m.paused.Set(1)
		return
	}
	m.paused.Set(0)
}

// SetPoolGauges reflects the current pool state. Reserve magnitudes above
// float precision lose exactness; the gauges are for dashboards, not
// accounting.
func (m *Metrics) SetPoolGauges(assetA string, reserveA float64, assetB string, reserveB float64, totalShares float64) {
	if m == nil {
		return
	}
	m.reserves.WithLabelValues(assetA).Set(reserveA)
	m.reserves.WithLabelValues(assetB).Set(reserveB)
	m.totalShares.Set(totalShares)
}
