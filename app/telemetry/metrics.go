package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ChainMetrics holds the OpenTelemetry instruments for chain-level and
// pool-level measurements.
type ChainMetrics struct {
	meter metric.Meter

	txCounter   metric.Int64Counter
	txDuration  metric.Float64Histogram
	txGasUsed   metric.Int64Histogram
	blockHeight metric.Int64Gauge
	moduleExec  metric.Float64Histogram

	swapCounter metric.Int64Counter
	swapVolume  metric.Int64Counter
	poolShares  metric.Int64Gauge
}

// NewChainMetrics creates the chain metric instruments on the given meter
func NewChainMetrics(meter metric.Meter) (*ChainMetrics, error) {
	txCounter, err := meter.Int64Counter(
		"tidepool.tx.total",
		metric.WithDescription("Total number of transactions"),
		metric.WithUnit("{transaction}"),
	)
	if err != nil {
		return nil, err
	}

	txDuration, err := meter.Float64Histogram(
		"tidepool.tx.processing_time",
		metric.WithDescription("Transaction processing time"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	txGasUsed, err := meter.Int64Histogram(
		"tidepool.tx.gas_used",
		metric.WithDescription("Gas used by transaction"),
		metric.WithUnit("{gas}"),
	)
	if err != nil {
		return nil, err
	}

	blockHeight, err := meter.Int64Gauge(
		"tidepool.block.height",
		metric.WithDescription("Current block height"),
		metric.WithUnit("{block}"),
	)
	if err != nil {
		return nil, err
	}

	moduleExec, err := meter.Float64Histogram(
		"tidepool.module.execution_time",
		metric.WithDescription("Module execution time"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	swapCounter, err := meter.Int64Counter(
		"tidepool.amm.swaps.total",
		metric.WithDescription("Total number of pool swaps"),
		metric.WithUnit("{swap}"),
	)
	if err != nil {
		return nil, err
	}

	swapVolume, err := meter.Int64Counter(
		"tidepool.amm.swap_volume",
		metric.WithDescription("Cumulative swap volume by asset"),
		metric.WithUnit("{token}"),
	)
	if err != nil {
		return nil, err
	}

	poolShares, err := meter.Int64Gauge(
		"tidepool.amm.pool_shares",
		metric.WithDescription("Outstanding liquidity shares"),
		metric.WithUnit("{share}"),
	)
	if err != nil {
		return nil, err
	}

	return &ChainMetrics{
		meter:       meter,
		txCounter:   txCounter,
		txDuration:  txDuration,
		txGasUsed:   txGasUsed,
		blockHeight: blockHeight,
		moduleExec:  moduleExec,
		swapCounter: swapCounter,
		swapVolume:  swapVolume,
		poolShares:  poolShares,
	}, nil
}

// RecordTransaction records transaction metrics
func (m *ChainMetrics) RecordTransaction(
	ctx context.Context,
	txType string,
	duration time.Duration,
	gasUsed int64,
	success bool,
) {
	if m == nil {
		return
	}

	status := "success"
	if !success {
		status = "failed"
	}

	attrs := []attribute.KeyValue{
		attribute.String("tx.type", txType),
		attribute.String("tx.status", status),
	}

	m.txCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.txDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	m.txGasUsed.Record(ctx, gasUsed, metric.WithAttributes(attrs...))
}

// RecordBlockHeight records the current block height
func (m *ChainMetrics) RecordBlockHeight(ctx context.Context, height int64) {
	if m == nil {
		return
	}
	m.blockHeight.Record(ctx, height)
}

// RecordModuleExecution records module execution time
func (m *ChainMetrics) RecordModuleExecution(
	ctx context.Context,
	moduleName string,
	duration time.Duration,
) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("module.name", moduleName),
	}
	m.moduleExec.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordSwap records a completed swap with its per-asset volume
func (m *ChainMetrics) RecordSwap(ctx context.Context, assetIn string, amountIn int64, assetOut string, amountOut int64) {
	if m == nil {
		return
	}

	m.swapCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("amm.asset_in", assetIn),
		attribute.String("amm.asset_out", assetOut),
	))
	m.swapVolume.Add(ctx, amountIn, metric.WithAttributes(
		attribute.String("amm.asset", assetIn),
		attribute.String("amm.direction", "in"),
	))
	m.swapVolume.Add(ctx, amountOut, metric.WithAttributes(
		attribute.String("amm.asset", assetOut),
		attribute.String("amm.direction", "out"),
	))
}

// RecordPoolShares records the outstanding liquidity share total
func (m *ChainMetrics) RecordPoolShares(ctx context.Context, totalShares int64) {
	if m == nil {
		return
	}
	m.poolShares.Record(ctx, totalShares)
}
