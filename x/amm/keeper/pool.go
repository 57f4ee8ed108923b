package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// GetPool returns the pool record.
func (k Keeper) GetPool(ctx context.Context) (types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey)
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound
	}

	var pool types.Pool
	types.ModuleCdc.MustUnmarshalJSON(bz, &pool)
	return pool, nil
}

// SetPool stores the pool record after validating it.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz := types.ModuleCdc.MustMarshalJSON(&pool)
	store.Set(PoolKey, bz)
	return nil
}

// ApplySwap is the only operation that moves reserves in opposite
// directions. It adds amountIn to the input reserve, subtracts amountOut
// from the output reserve, checks the updated pool keeps its product
// non-decreasing and persists it.
func (k Keeper) ApplySwap(ctx context.Context, assetIn string, amountIn math.Int, assetOut string, amountOut math.Int) error {
	pool, err := k.GetPool(ctx)
	if err != nil {
		return err
	}

	reserveIn, reserveOut, err := pool.ReservesFor(assetIn, assetOut)
	if err != nil {
		return err
	}
	if !amountIn.IsPositive() || !amountOut.IsPositive() {
		return types.ErrZeroAmount.Wrap("swap deltas must be positive")
	}

	newIn, err := types.SafeAdd(reserveIn, amountIn)
	if err != nil {
		return err
	}
	newOut, err := types.SafeSub(reserveOut, amountOut)
	if err != nil {
		return err
	}
	if !newOut.IsPositive() {
		return types.ErrArithmetic.Wrap("swap would drain the output reserve")
	}

	oldK, err := types.SafeMul(reserveIn, reserveOut)
	if err != nil {
		return err
	}
	newK, err := types.SafeMul(newIn, newOut)
	if err != nil {
		return err
	}
	if newK.LT(oldK) {
		return types.ErrInvariantViolation.Wrapf("constant product decreased: %s -> %s", oldK, newK)
	}

	if assetIn == pool.AssetA {
		pool.ReserveA = newIn
		pool.ReserveB = newOut
	} else {
		pool.ReserveA = newOut
		pool.ReserveB = newIn
	}
	return k.SetPool(ctx, pool)
}

// ApplyLiquidityChange is the only operation that moves both reserves and
// total shares in the same direction. Positive deltas deposit, negative
// deltas withdraw. Each asset delta must be zero or share deltaShares' sign.
func (k Keeper) ApplyLiquidityChange(ctx context.Context, deltaA, deltaB, deltaShares math.Int) error {
	pool, err := k.GetPool(ctx)
	if err != nil {
		return err
	}

	if deltaShares.IsZero() {
		return types.ErrZeroAmount.Wrap("share delta must be non-zero")
	}
	if deltaShares.IsPositive() {
		if deltaA.IsNegative() || deltaB.IsNegative() {
			return types.ErrArithmetic.Wrap("deposit deltas must not be negative")
		}
	} else {
		if deltaA.IsPositive() || deltaB.IsPositive() {
			return types.ErrArithmetic.Wrap("withdrawal deltas must not be positive")
		}
	}

	newA, err := addSigned(pool.ReserveA, deltaA)
	if err != nil {
		return err
	}
	newB, err := addSigned(pool.ReserveB, deltaB)
	if err != nil {
		return err
	}
	newShares, err := addSigned(pool.TotalShares, deltaShares)
	if err != nil {
		return err
	}

	if newShares.IsPositive() && (!newA.IsPositive() || !newB.IsPositive()) {
		return types.ErrInvariantViolation.Wrap("shares outstanding against an empty reserve")
	}
	if newShares.IsZero() && (!newA.IsZero() || !newB.IsZero()) {
		return types.ErrInvariantViolation.Wrap("reserves left behind with no shares outstanding")
	}

	pool.ReserveA = newA
	pool.ReserveB = newB
	pool.TotalShares = newShares
	return k.SetPool(ctx, pool)
}

// addSigned applies a possibly negative delta, rejecting negative results
// and width overflows.
func addSigned(value, delta math.Int) (math.Int, error) {
	if delta.IsNegative() {
		return types.SafeSub(value, delta.Neg())
	}
	return types.SafeAdd(value, delta)
}
