package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// GetPosition returns a provider's share balance, zero if none.
func (k Keeper) GetPosition(ctx context.Context, provider sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(PositionKey(provider))
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(err)
	}
	return shares
}

// setPosition writes a provider's share balance, deleting the record when it
// reaches zero.
func (k Keeper) setPosition(ctx context.Context, provider sdk.AccAddress, shares math.Int) {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(PositionKey(provider))
		return
	}

	bz, err := shares.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(PositionKey(provider), bz)
}

// IteratePositions walks all liquidity positions until cb returns true.
func (k Keeper) IteratePositions(ctx context.Context, cb func(provider sdk.AccAddress, shares math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PositionKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		provider := sdk.AccAddress(iterator.Key()[len(PositionKeyPrefix):])

		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(provider, shares) {
			break
		}
	}
}

// TotalPositionShares sums every stored position.
func (k Keeper) TotalPositionShares(ctx context.Context) math.Int {
	total := math.ZeroInt()
	k.IteratePositions(ctx, func(_ sdk.AccAddress, shares math.Int) bool {
		total = total.Add(shares)
		return false
	})
	return total
}

// Deposit adds liquidity at the pool's current ratio and mints shares. The
// first deposit seeds the pool and sets the initial share supply to the
// geometric mean of the amounts. State is committed before any coins move.
func (k Keeper) Deposit(
	ctx context.Context,
	provider sdk.AccAddress,
	amountA, amountB math.Int,
	minSharesOut, maxTotalSharesAfter math.Int,
	deadline int64,
) (math.Int, error) {
	if err := k.RequireUnpaused(ctx); err != nil {
		return math.Int{}, err
	}
	if err := k.requireDeadline(ctx, deadline); err != nil {
		return math.Int{}, err
	}
	if !amountA.IsPositive() || !amountB.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("deposit amounts must be positive")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, err
	}
	params := k.GetParams(ctx)

	var shares math.Int
	if pool.IsEmpty() {
		shares, err = types.InitialShares(amountA, amountB)
		if err != nil {
			return math.Int{}, err
		}
	} else {
		ok, err := types.WithinRatioTolerance(amountA, amountB, pool.ReserveA, pool.ReserveB, params.RatioToleranceBps)
		if err != nil {
			return math.Int{}, err
		}
		if !ok {
			return math.Int{}, types.ErrRatioMismatch.Wrapf(
				"deposit %s/%s does not match pool ratio %s/%s",
				amountA, amountB, pool.ReserveA, pool.ReserveB,
			)
		}
		shares, err = types.ProportionalShares(pool.TotalShares, amountA, pool.ReserveA, amountB, pool.ReserveB)
		if err != nil {
			return math.Int{}, err
		}
	}
	if !shares.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("deposit too small to mint shares")
	}

	newTotal, err := types.SafeAdd(pool.TotalShares, shares)
	if err != nil {
		return math.Int{}, err
	}
	if newTotal.GT(params.MaxTotalShares) {
		return math.Int{}, types.ErrLiquidityCapExceeded.Wrapf(
			"total shares %s would exceed cap %s", newTotal, params.MaxTotalShares,
		)
	}
	if !maxTotalSharesAfter.IsZero() && newTotal.GT(maxTotalSharesAfter) {
		return math.Int{}, types.ErrLiquidityCapExceeded.Wrapf(
			"total shares %s would exceed caller bound %s", newTotal, maxTotalSharesAfter,
		)
	}
	if shares.LT(minSharesOut) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"would mint %s shares, provider requires at least %s", shares, minSharesOut,
		)
	}

	if err := k.ApplyLiquidityChange(ctx, amountA, amountB, shares); err != nil {
		return math.Int{}, err
	}
	position, err := types.SafeAdd(k.GetPosition(ctx, provider), shares)
	if err != nil {
		return math.Int{}, err
	}
	k.setPosition(ctx, provider, position)

	deposit := sdk.NewCoins(
		sdk.NewCoin(pool.AssetA, amountA),
		sdk.NewCoin(pool.AssetB, amountB),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, deposit); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrapf("deposit transfer: %s", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeySharesMinted, shares.String()),
			sdk.NewAttribute(types.AttributeKeyTotalShares, newTotal.String()),
		),
	)
	if k.hooks != nil {
		if err := k.hooks.AfterLiquidityChanged(ctx, provider.String(), shares, newTotal); err != nil {
			return math.Int{}, err
		}
	}
	k.metrics.RecordDeposit()

	k.Logger(ctx).Info("liquidity added",
		"provider", provider.String(),
		"amount_a", amountA.String(),
		"amount_b", amountB.String(),
		"shares", shares.String(),
	)
	return shares, nil
}

// Withdraw burns shares and pays out the proportional slice of each reserve,
// rounded down. State is committed before any coins move.
func (k Keeper) Withdraw(
	ctx context.Context,
	provider sdk.AccAddress,
	sharesIn math.Int,
	minAmountAOut, minAmountBOut math.Int,
	deadline int64,
) (math.Int, math.Int, error) {
	if err := k.RequireUnpaused(ctx); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.requireDeadline(ctx, deadline); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !sharesIn.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("shares to burn must be positive")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	position := k.GetPosition(ctx, provider)
	if position.LT(sharesIn) {
		return math.Int{}, math.Int{}, types.ErrInsufficientShares.Wrapf(
			"have %s, need %s", position, sharesIn,
		)
	}

	amountA, amountB, err := types.WithdrawAmounts(pool.ReserveA, pool.ReserveB, pool.TotalShares, sharesIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountA.LT(minAmountAOut) || amountB.LT(minAmountBOut) {
		return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"would pay %s/%s, provider requires at least %s/%s",
			amountA, amountB, minAmountAOut, minAmountBOut,
		)
	}

	if err := k.ApplyLiquidityChange(ctx, amountA.Neg(), amountB.Neg(), sharesIn.Neg()); err != nil {
		return math.Int{}, math.Int{}, err
	}
	k.setPosition(ctx, provider, position.Sub(sharesIn))

	payout := sdk.NewCoins(
		sdk.NewCoin(pool.AssetA, amountA),
		sdk.NewCoin(pool.AssetB, amountB),
	)
	if !payout.IsZero() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, payout); err != nil {
			return math.Int{}, math.Int{}, types.ErrTransferFailed.Wrapf("withdrawal transfer: %s", err)
		}
	}

	newTotal := pool.TotalShares.Sub(sharesIn)
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeySharesBurned, sharesIn.String()),
			sdk.NewAttribute(types.AttributeKeyTotalShares, newTotal.String()),
		),
	)
	if k.hooks != nil {
		if err := k.hooks.AfterLiquidityChanged(ctx, provider.String(), sharesIn.Neg(), newTotal); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}
	k.metrics.RecordWithdraw()

	k.Logger(ctx).Info("liquidity removed",
		"provider", provider.String(),
		"amount_a", amountA.String(),
		"amount_b", amountB.String(),
		"shares", sharesIn.String(),
	)
	return amountA, amountB, nil
}
