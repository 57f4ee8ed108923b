package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// GetSwapCounter returns an actor's completed swap count since its last
// reward, zero if the actor has never swapped or was just reset.
func (k Keeper) GetSwapCounter(ctx context.Context, actor sdk.AccAddress) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(CounterKey(actor))
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// setSwapCounter writes an actor's counter, deleting the record on reset so
// idle actors leave nothing behind.
func (k Keeper) setSwapCounter(ctx context.Context, actor sdk.AccAddress, count uint64) {
	store := k.getStore(ctx)
	if count == 0 {
		store.Delete(CounterKey(actor))
		return
	}
	store.Set(CounterKey(actor), sdk.Uint64ToBigEndian(count))
}

// IterateSwapCounters walks all stored counters until cb returns true.
func (k Keeper) IterateSwapCounters(ctx context.Context, cb func(actor sdk.AccAddress, count uint64) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, CounterKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		actor := sdk.AccAddress(iterator.Key()[len(CounterKeyPrefix):])
		if cb(actor, sdk.BigEndianToUint64(iterator.Value())) {
			break
		}
	}
}

// RecordSwap advances the actor's counter by one completed swap. When the
// counter reaches the configured cycle length it resets to zero before the
// reward moves, and RecordSwap reports that a reward is due.
func (k Keeper) RecordSwap(ctx context.Context, actor sdk.AccAddress) (bool, error) {
	params := k.GetParams(ctx)

	count := k.GetSwapCounter(ctx, actor) + 1
	if count >= params.SwapCountMax {
		k.setSwapCounter(ctx, actor, 0)
		return true, nil
	}

	k.setSwapCounter(ctx, actor, count)
	return false, nil
}

// PayReward sends a completed-cycle reward from the module account. The
// reward budget is funded out of band; an unfunded budget fails the whole
// swap rather than silently skipping the payout.
func (k Keeper) PayReward(ctx context.Context, actor sdk.AccAddress, reward sdk.Coin) error {
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, actor, sdk.NewCoins(reward)); err != nil {
		return types.ErrTransferFailed.Wrapf("reward transfer: %s", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardPaid,
			sdk.NewAttribute(types.AttributeKeyActor, actor.String()),
			sdk.NewAttribute(types.AttributeKeyRewardDenom, reward.Denom),
			sdk.NewAttribute(types.AttributeKeyRewardAmount, reward.Amount.String()),
		),
	)
	k.metrics.RecordReward()

	k.Logger(ctx).Info("swap reward paid",
		"actor", actor.String(),
		"denom", reward.Denom,
		"amount", reward.Amount.String(),
	)
	return nil
}
