package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// swapReceipt records an already-committed swap. Settlement and
// notifications only ever run against a receipt, so coins cannot move and
// counters cannot advance before the reserve write has happened.
type swapReceipt struct {
	trader    sdk.AccAddress
	assetIn   string
	amountIn  math.Int
	assetOut  string
	amountOut math.Int
	rewardDue bool
}

// SwapExactInput sells exactly amountIn of assetIn for as much assetOut as
// the pool yields, rejecting the trade when the output falls below
// minAmountOut.
func (k Keeper) SwapExactInput(
	ctx context.Context,
	trader sdk.AccAddress,
	assetIn string,
	amountIn math.Int,
	assetOut string,
	minAmountOut math.Int,
	deadline int64,
) (math.Int, bool, error) {
	if err := k.RequireUnpaused(ctx); err != nil {
		return math.Int{}, false, err
	}
	if err := k.requireDeadline(ctx, deadline); err != nil {
		return math.Int{}, false, err
	}
	if !amountIn.IsPositive() {
		return math.Int{}, false, types.ErrZeroAmount.Wrap("swap input must be positive")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, false, err
	}
	reserveIn, reserveOut, err := pool.ReservesFor(assetIn, assetOut)
	if err != nil {
		return math.Int{}, false, err
	}
	params := k.GetParams(ctx)

	amountOut, err := types.QuoteOutputForInput(amountIn, reserveIn, reserveOut, params.FeeNumerator, params.FeeDenominator)
	if err != nil {
		return math.Int{}, false, err
	}
	if amountOut.LT(minAmountOut) {
		return math.Int{}, false, types.ErrSlippageExceeded.Wrapf(
			"output %s below minimum %s", amountOut, minAmountOut,
		)
	}

	rewardPaid, err := k.executeSwap(ctx, trader, assetIn, amountIn, assetOut, amountOut, params)
	if err != nil {
		return math.Int{}, false, err
	}
	return amountOut, rewardPaid, nil
}

// SwapExactOutput buys exactly amountOut of assetOut, charging the smallest
// input that funds it and rejecting the trade when that input exceeds
// maxAmountIn.
func (k Keeper) SwapExactOutput(
	ctx context.Context,
	trader sdk.AccAddress,
	assetIn string,
	maxAmountIn math.Int,
	assetOut string,
	amountOut math.Int,
	deadline int64,
) (math.Int, bool, error) {
	if err := k.RequireUnpaused(ctx); err != nil {
		return math.Int{}, false, err
	}
	if err := k.requireDeadline(ctx, deadline); err != nil {
		return math.Int{}, false, err
	}
	if !amountOut.IsPositive() {
		return math.Int{}, false, types.ErrZeroAmount.Wrap("swap output must be positive")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, false, err
	}
	reserveIn, reserveOut, err := pool.ReservesFor(assetIn, assetOut)
	if err != nil {
		return math.Int{}, false, err
	}
	params := k.GetParams(ctx)

	amountIn, err := types.QuoteInputForOutput(amountOut, reserveIn, reserveOut, params.FeeNumerator, params.FeeDenominator)
	if err != nil {
		return math.Int{}, false, err
	}
	if amountIn.GT(maxAmountIn) {
		return math.Int{}, false, types.ErrSlippageExceeded.Wrapf(
			"input %s above maximum %s", amountIn, maxAmountIn,
		)
	}

	rewardPaid, err := k.executeSwap(ctx, trader, assetIn, amountIn, assetOut, amountOut, params)
	if err != nil {
		return math.Int{}, false, err
	}
	return amountIn, rewardPaid, nil
}

// executeSwap commits the quoted amounts to the pool, then settles coins and
// notifies. Both swap directions funnel through here.
func (k Keeper) executeSwap(
	ctx context.Context,
	trader sdk.AccAddress,
	assetIn string,
	amountIn math.Int,
	assetOut string,
	amountOut math.Int,
	params types.Params,
) (bool, error) {
	receipt, err := k.commitSwap(ctx, trader, assetIn, amountIn, assetOut, amountOut)
	if err != nil {
		return false, err
	}
	if err := k.settleSwap(ctx, receipt, params.RewardAmount); err != nil {
		return false, err
	}

	rewardPaid := receipt.rewardDue && params.RewardAmount.IsPositive()
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyAssetIn, assetIn),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAssetOut, assetOut),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyRewardPaid, strconv.FormatBool(rewardPaid)),
		),
	)
	if k.hooks != nil {
		if err := k.hooks.AfterSwap(ctx, trader.String(), assetIn, amountIn, assetOut, amountOut); err != nil {
			return false, err
		}
	}
	k.metrics.RecordSwap(assetIn, assetOut)

	k.Logger(ctx).Info("swap executed",
		"trader", trader.String(),
		"asset_in", assetIn,
		"amount_in", amountIn.String(),
		"asset_out", assetOut,
		"amount_out", amountOut.String(),
		"reward_paid", rewardPaid,
	)
	return rewardPaid, nil
}

// commitSwap writes the new reserves and advances the trader's swap counter,
// returning the receipt settlement runs from.
func (k Keeper) commitSwap(
	ctx context.Context,
	trader sdk.AccAddress,
	assetIn string,
	amountIn math.Int,
	assetOut string,
	amountOut math.Int,
) (swapReceipt, error) {
	if err := k.ApplySwap(ctx, assetIn, amountIn, assetOut, amountOut); err != nil {
		return swapReceipt{}, err
	}
	rewardDue, err := k.RecordSwap(ctx, trader)
	if err != nil {
		return swapReceipt{}, err
	}

	return swapReceipt{
		trader:    trader,
		assetIn:   assetIn,
		amountIn:  amountIn,
		assetOut:  assetOut,
		amountOut: amountOut,
		rewardDue: rewardDue,
	}, nil
}

// settleSwap moves the principal legs and, when the counter completed a
// cycle, the reward. The reward transfer runs strictly after both principal
// legs.
func (k Keeper) settleSwap(ctx context.Context, receipt swapReceipt, rewardAmount math.Int) error {
	in := sdk.NewCoins(sdk.NewCoin(receipt.assetIn, receipt.amountIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, receipt.trader, types.ModuleName, in); err != nil {
		return types.ErrTransferFailed.Wrapf("input transfer: %s", err)
	}

	out := sdk.NewCoins(sdk.NewCoin(receipt.assetOut, receipt.amountOut))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receipt.trader, out); err != nil {
		return types.ErrTransferFailed.Wrapf("output transfer: %s", err)
	}

	if receipt.rewardDue && rewardAmount.IsPositive() {
		if err := k.PayReward(ctx, receipt.trader, sdk.NewCoin(receipt.assetOut, rewardAmount)); err != nil {
			return err
		}
	}
	return nil
}

// SpotPrice returns the marginal price of one unit of assetIn in units of
// the opposite asset, ignoring fees.
func (k Keeper) SpotPrice(ctx context.Context, assetIn string) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if !pool.ContainsAsset(assetIn) {
		return math.LegacyDec{}, types.ErrInvalidAssetPair.Wrapf("pool does not hold %s", assetIn)
	}
	if pool.IsEmpty() {
		return math.LegacyDec{}, types.ErrArithmetic.Wrap("pool has no reserves to price against")
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if assetIn == pool.AssetB {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}
	return math.LegacyNewDecFromInt(reserveOut).QuoInt(reserveIn), nil
}
