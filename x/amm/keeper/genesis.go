package keeper

import (
	"context"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// InitGenesis writes the module's initial state. It expects a genesis state
// that already passed types.GenesisState.Validate.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	if err := k.SetPool(ctx, genState.Pool); err != nil {
		return err
	}

	for _, position := range genState.Positions {
		owner, err := sdk.AccAddressFromBech32(position.Owner)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("position owner: %s", err)
		}
		k.setPosition(ctx, owner, position.Shares)
	}

	for _, counter := range genState.Counters {
		actor, err := sdk.AccAddressFromBech32(counter.Owner)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("counter owner: %s", err)
		}
		k.setSwapCounter(ctx, actor, counter.Count)
	}

	store := k.getStore(ctx)
	for _, grant := range genState.Roles {
		addr, err := sdk.AccAddressFromBech32(grant.Address)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("role grantee: %s", err)
		}
		roleByte, ok := types.RoleByte(grant.Role)
		if !ok {
			return types.ErrInvalidRole.Wrapf("unknown role %q", grant.Role)
		}
		store.Set(RoleKey(roleByte, addr), []byte{1})
	}

	k.setPaused(ctx, genState.Paused)
	k.metrics.SetPaused(genState.Paused)
	return nil
}

// ExportGenesis reads the module's full state back out.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	pool, err := k.GetPool(ctx)
	if err != nil {
		return nil, err
	}

	positions := []types.LiquidityPosition{}
	k.IteratePositions(ctx, func(provider sdk.AccAddress, shares math.Int) bool {
		positions = append(positions, types.LiquidityPosition{
			Owner:  provider.String(),
			Shares: shares,
		})
		return false
	})

	counters := []types.SwapCounter{}
	k.IterateSwapCounters(ctx, func(actor sdk.AccAddress, count uint64) bool {
		counters = append(counters, types.SwapCounter{
			Owner: actor.String(),
			Count: count,
		})
		return false
	})

	roles := []types.RoleGrant{}
	k.IterateRoles(ctx, func(addr sdk.AccAddress, role string) bool {
		roles = append(roles, types.RoleGrant{
			Address: addr.String(),
			Role:    role,
		})
		return false
	})

	return &types.GenesisState{
		Params:    k.GetParams(ctx),
		Pool:      pool,
		Positions: positions,
		Counters:  counters,
		Roles:     roles,
		Paused:    k.IsPaused(ctx),
	}, nil
}
