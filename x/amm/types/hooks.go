package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// AmmHooks defines callbacks other modules can register for amm events.
// Hooks run after the triggering operation has committed and settled; a hook
// error aborts the whole message.
type AmmHooks interface {
	// AfterSwap is called after a completed swap.
	AfterSwap(ctx context.Context, trader string, assetIn string, amountIn sdkmath.Int, assetOut string, amountOut sdkmath.Int) error

	// AfterLiquidityChanged is called after a deposit or withdrawal. The
	// deltas are signed: positive on deposit, negative on withdrawal.
	AfterLiquidityChanged(ctx context.Context, provider string, deltaShares, totalShares sdkmath.Int) error
}

// MultiAmmHooks combines several hooks into one that calls all of them.
type MultiAmmHooks []AmmHooks

// NewMultiAmmHooks creates a MultiAmmHooks from a list of hooks.
func NewMultiAmmHooks(hooks ...AmmHooks) MultiAmmHooks {
	return hooks
}

// AfterSwap calls AfterSwap on all registered hooks.
func (h MultiAmmHooks) AfterSwap(ctx context.Context, trader string, assetIn string, amountIn sdkmath.Int, assetOut string, amountOut sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterSwap(ctx, trader, assetIn, amountIn, assetOut, amountOut); err != nil {
			return err
		}
	}
	return nil
}

// AfterLiquidityChanged calls AfterLiquidityChanged on all registered hooks.
func (h MultiAmmHooks) AfterLiquidityChanged(ctx context.Context, provider string, deltaShares, totalShares sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterLiquidityChanged(ctx, provider, deltaShares, totalShares); err != nil {
			return err
		}
	}
	return nil
}
