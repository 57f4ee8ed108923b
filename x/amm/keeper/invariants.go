package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// RegisterInvariants registers the amm module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "share-conservation", ShareConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-well-formed", PoolWellFormedInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "counter-bound", CounterBoundInvariant(k))
}

// AllInvariants runs every amm invariant.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := ShareConservationInvariant(k)(ctx); broken {
			return msg, broken
		}
		if msg, broken := PoolWellFormedInvariant(k)(ctx); broken {
			return msg, broken
		}
		if msg, broken := ReserveBackingInvariant(k)(ctx); broken {
			return msg, broken
		}
		return CounterBoundInvariant(k)(ctx)
	}
}

// ShareConservationInvariant checks that the sum of all positions equals the
// pool's total share supply.
func ShareConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool, err := k.GetPool(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "share-conservation",
				fmt.Sprintf("pool not found: %s", err)), true
		}

		sum := k.TotalPositionShares(ctx)
		broken := !sum.Equal(pool.TotalShares)
		return sdk.FormatInvariant(types.ModuleName, "share-conservation",
			fmt.Sprintf("position share sum %s, pool total shares %s", sum, pool.TotalShares)), broken
	}
}

// PoolWellFormedInvariant checks the pool record's internal consistency:
// reserves and shares are either all positive or all zero.
func PoolWellFormedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool, err := k.GetPool(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-well-formed",
				fmt.Sprintf("pool not found: %s", err)), true
		}

		if err := pool.Validate(); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-well-formed",
				fmt.Sprintf("pool record invalid: %s", err)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "pool-well-formed", "pool record valid"), false
	}
}

// ReserveBackingInvariant checks the module account holds at least the
// recorded reserves. The account may hold more: the reward budget shares it.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool, err := k.GetPool(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing",
				fmt.Sprintf("pool not found: %s", err)), true
		}

		balanceA := k.bankKeeper.GetBalance(ctx, k.moduleAddr, pool.AssetA)
		balanceB := k.bankKeeper.GetBalance(ctx, k.moduleAddr, pool.AssetB)
		broken := balanceA.Amount.LT(pool.ReserveA) || balanceB.Amount.LT(pool.ReserveB)
		return sdk.FormatInvariant(types.ModuleName, "reserve-backing",
			fmt.Sprintf("module holds %s/%s against reserves %s/%s",
				balanceA.Amount, balanceB.Amount, pool.ReserveA, pool.ReserveB)), broken
	}
}

// CounterBoundInvariant checks every stored swap counter sits strictly
// between zero and the cycle length. Counters at zero are deleted and a
// counter reaching the cycle length resets, so neither endpoint may persist.
func CounterBoundInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		max := k.GetParams(ctx).SwapCountMax

		var bad int
		k.IterateSwapCounters(ctx, func(actor sdk.AccAddress, count uint64) bool {
			if count == 0 || count >= max {
				bad++
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "counter-bound",
			fmt.Sprintf("%d counters outside (0, %d)", bad, max)), bad != 0
	}
}
