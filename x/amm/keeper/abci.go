package keeper

import (
	"context"

	"cosmossdk.io/math"
)

// BeginBlocker refreshes the pool gauges each block. A missing pool only
// happens before genesis seeds one; that is not worth failing a block over.
func (k Keeper) BeginBlocker(ctx context.Context) error {
	pool, err := k.GetPool(ctx)
	if err != nil {
		k.Logger(ctx).Debug("skipping pool gauge refresh", "err", err)
		return nil
	}

	k.metrics.SetPoolGauges(
		pool.AssetA, intToFloat(pool.ReserveA),
		pool.AssetB, intToFloat(pool.ReserveB),
		intToFloat(pool.TotalShares),
	)
	return nil
}

func intToFloat(v math.Int) float64 {
	f, err := math.LegacyNewDecFromInt(v).Float64()
	if err != nil {
		return 0
	}
	return f
}
