package app

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tidepool-zone/tidepool/app/telemetry"
	ammtypes "github.com/tidepool-zone/tidepool/x/amm/types"
)

// AmmTelemetryHooks bridges pool lifecycle events into the OpenTelemetry
// instruments. All callbacks return nil: telemetry must never abort a
// state transition.
type AmmTelemetryHooks struct {
	metrics *telemetry.ChainMetrics
}

// NewAmmTelemetryHooks creates the hook set backed by the provider's meter.
func NewAmmTelemetryHooks(provider *telemetry.Provider) (*AmmTelemetryHooks, error) {
	metrics, err := telemetry.NewChainMetrics(provider.Meter())
	if err != nil {
		return nil, err
	}
	return &AmmTelemetryHooks{metrics: metrics}, nil
}

// Ensure AmmTelemetryHooks implements ammtypes.AmmHooks
var _ ammtypes.AmmHooks = (*AmmTelemetryHooks)(nil)

// AfterSwap is called after a successful swap has settled.
func (h *AmmTelemetryHooks) AfterSwap(ctx context.Context, trader string, assetIn string, amountIn sdkmath.Int, assetOut string, amountOut sdkmath.Int) error {
	if h == nil {
		return nil
	}

	// Amounts beyond int64 range are skipped rather than recorded wrong.
	if amountIn.IsInt64() && amountOut.IsInt64() {
		h.metrics.RecordSwap(ctx, assetIn, amountIn.Int64(), assetOut, amountOut.Int64())
	}

	span := trace.SpanFromContext(ctx)
	telemetry.AddSpanEvent(span, "amm.swap.settled",
		attribute.String("amm.trader", trader),
		attribute.String("amm.asset_in", assetIn),
		attribute.String("amm.amount_in", amountIn.String()),
		attribute.String("amm.asset_out", assetOut),
		attribute.String("amm.amount_out", amountOut.String()),
	)

	return nil
}

// AfterLiquidityChanged is called after a deposit or withdrawal has settled.
func (h *AmmTelemetryHooks) AfterLiquidityChanged(ctx context.Context, provider string, deltaShares, totalShares sdkmath.Int) error {
	if h == nil {
		return nil
	}

	if totalShares.IsInt64() {
		h.metrics.RecordPoolShares(ctx, totalShares.Int64())
	}

	span := trace.SpanFromContext(ctx)
	telemetry.AddSpanEvent(span, "amm.liquidity.changed",
		attribute.String("amm.provider", provider),
		attribute.String("amm.delta_shares", deltaShares.String()),
		attribute.String("amm.total_shares", totalShares.String()),
	)

	return nil
}
