package app

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/tidepool-zone/tidepool/app/telemetry"
)

// TestAmmTelemetryHooksInterface ensures the hook set implements the interface
// and that every callback is a non-failing observer.
func TestAmmTelemetryHooksInterface(t *testing.T) {
	provider, err := telemetry.NewProvider(telemetry.Config{Enabled: false})
	require.NoError(t, err)

	hooks, err := NewAmmTelemetryHooks(provider)
	require.NoError(t, err)
	require.NotNil(t, hooks)

	ctx := context.Background()

	err = hooks.AfterSwap(ctx, "trader1", "utide", sdkmath.NewInt(100), "uusdc", sdkmath.NewInt(90))
	require.NoError(t, err)

	err = hooks.AfterLiquidityChanged(ctx, "provider1", sdkmath.NewInt(1000), sdkmath.NewInt(1000))
	require.NoError(t, err)
}

// TestAmmTelemetryHooksNilReceiver tests that a nil hook set is inert.
func TestAmmTelemetryHooksNilReceiver(t *testing.T) {
	var hooks *AmmTelemetryHooks
	ctx := context.Background()

	err := hooks.AfterSwap(ctx, "trader1", "utide", sdkmath.OneInt(), "uusdc", sdkmath.OneInt())
	require.NoError(t, err)

	err = hooks.AfterLiquidityChanged(ctx, "provider1", sdkmath.OneInt(), sdkmath.OneInt())
	require.NoError(t, err)
}

// TestAmmTelemetryHooksLargeAmounts tests amounts beyond int64 range.
func TestAmmTelemetryHooksLargeAmounts(t *testing.T) {
	provider, err := telemetry.NewProvider(telemetry.Config{Enabled: false})
	require.NoError(t, err)

	hooks, err := NewAmmTelemetryHooks(provider)
	require.NoError(t, err)

	ctx := context.Background()
	huge := sdkmath.NewIntWithDecimal(1, 30)

	err = hooks.AfterSwap(ctx, "trader1", "utide", huge, "uusdc", huge)
	require.NoError(t, err)

	err = hooks.AfterLiquidityChanged(ctx, "provider1", huge, huge)
	require.NoError(t, err)
}
