package keeper

import (
	"context"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// GetParams returns the pool configuration. Panics if genesis never stored
// it; params are written exactly once at init and are immutable afterwards.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		panic("amm params not set")
	}

	var params types.Params
	types.ModuleCdc.MustUnmarshalJSON(bz, &params)
	return params
}

// SetParams stores the pool configuration. Only called from InitGenesis.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz := types.ModuleCdc.MustMarshalJSON(&params)
	store.Set(ParamsKey, bz)
	return nil
}
