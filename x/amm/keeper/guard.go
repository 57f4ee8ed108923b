package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

// IsPaused reports whether the module is paused.
func (k Keeper) IsPaused(ctx context.Context) bool {
	store := k.getStore(ctx)
	bz := store.Get(PausedKey)
	return len(bz) > 0 && bz[0] == 1
}

func (k Keeper) setPaused(ctx context.Context, paused bool) {
	store := k.getStore(ctx)
	if paused {
		store.Set(PausedKey, []byte{1})
		return
	}
	store.Delete(PausedKey)
}

// RequireUnpaused rejects state-changing operations while the module is
// paused. Pause, unpause and role management bypass it.
func (k Keeper) RequireUnpaused(ctx context.Context) error {
	if k.IsPaused(ctx) {
		return types.ErrPaused.Wrap("module is paused")
	}
	return nil
}

// requireDeadline rejects an operation whose deadline has already passed.
// The deadline is inclusive: a block timestamp equal to it still executes.
func (k Keeper) requireDeadline(ctx context.Context, deadline int64) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	if now > deadline {
		return types.ErrDeadlineExpired.Wrapf("deadline %d passed at block time %d", deadline, now)
	}
	return nil
}

// Pause halts swaps and liquidity changes. Requires the pauser role, the
// admin role or the module authority.
func (k Keeper) Pause(ctx context.Context, sender sdk.AccAddress) error {
	if err := k.requirePauser(ctx, sender); err != nil {
		return err
	}
	if k.IsPaused(ctx) {
		return types.ErrPaused.Wrap("module already paused")
	}

	k.setPaused(ctx, true)
	k.metrics.SetPaused(true)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePaused,
			sdk.NewAttribute(types.AttributeKeyActor, sender.String()),
		),
	)
	k.Logger(ctx).Info("module paused", "actor", sender.String())
	return nil
}

// Unpause resumes normal operation. Requires the pauser role, the admin role
// or the module authority.
func (k Keeper) Unpause(ctx context.Context, sender sdk.AccAddress) error {
	if err := k.requirePauser(ctx, sender); err != nil {
		return err
	}
	if !k.IsPaused(ctx) {
		return sdkerrors.ErrInvalidRequest.Wrap("module is not paused")
	}

	k.setPaused(ctx, false)
	k.metrics.SetPaused(false)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnpaused,
			sdk.NewAttribute(types.AttributeKeyActor, sender.String()),
		),
	)
	k.Logger(ctx).Info("module unpaused", "actor", sender.String())
	return nil
}

// HasRole reports whether addr holds the named role. The module authority is
// not listed in the role table; callers check it separately.
func (k Keeper) HasRole(ctx context.Context, addr sdk.AccAddress, role string) bool {
	roleByte, ok := types.RoleByte(role)
	if !ok {
		return false
	}
	return k.getStore(ctx).Has(RoleKey(roleByte, addr))
}

// GrantRole gives grantee the named role. Requires the admin role or the
// module authority.
func (k Keeper) GrantRole(ctx context.Context, sender, grantee sdk.AccAddress, role string) error {
	if err := k.requireAdmin(ctx, sender); err != nil {
		return err
	}
	roleByte, ok := types.RoleByte(role)
	if !ok {
		return types.ErrInvalidRole.Wrapf("unknown role %q", role)
	}
	if k.HasRole(ctx, grantee, role) {
		return sdkerrors.ErrInvalidRequest.Wrapf("%s already holds role %q", grantee, role)
	}

	k.getStore(ctx).Set(RoleKey(roleByte, grantee), []byte{1})

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRoleGranted,
			sdk.NewAttribute(types.AttributeKeyGranter, sender.String()),
			sdk.NewAttribute(types.AttributeKeyGrantee, grantee.String()),
			sdk.NewAttribute(types.AttributeKeyRole, role),
		),
	)
	k.Logger(ctx).Info("role granted", "grantee", grantee.String(), "role", role)
	return nil
}

// RevokeRole removes the named role from grantee. Requires the admin role or
// the module authority.
func (k Keeper) RevokeRole(ctx context.Context, sender, grantee sdk.AccAddress, role string) error {
	if err := k.requireAdmin(ctx, sender); err != nil {
		return err
	}
	roleByte, ok := types.RoleByte(role)
	if !ok {
		return types.ErrInvalidRole.Wrapf("unknown role %q", role)
	}
	if !k.HasRole(ctx, grantee, role) {
		return sdkerrors.ErrInvalidRequest.Wrapf("%s does not hold role %q", grantee, role)
	}

	k.getStore(ctx).Delete(RoleKey(roleByte, grantee))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRoleRevoked,
			sdk.NewAttribute(types.AttributeKeyGranter, sender.String()),
			sdk.NewAttribute(types.AttributeKeyGrantee, grantee.String()),
			sdk.NewAttribute(types.AttributeKeyRole, role),
		),
	)
	k.Logger(ctx).Info("role revoked", "grantee", grantee.String(), "role", role)
	return nil
}

// IterateRoles walks every role grant until cb returns true.
func (k Keeper) IterateRoles(ctx context.Context, cb func(addr sdk.AccAddress, role string) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RoleKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()[len(RoleKeyPrefix):]
		role, ok := types.RoleName(key[0])
		if !ok {
			continue
		}
		if cb(sdk.AccAddress(key[1:]), role) {
			break
		}
	}
}

// requireAdmin permits the module authority and admin-role holders.
func (k Keeper) requireAdmin(ctx context.Context, sender sdk.AccAddress) error {
	if sender.String() == k.authority || k.HasRole(ctx, sender, types.RoleAdmin) {
		return nil
	}
	return types.ErrUnauthorized.Wrapf("%s lacks the %s role", sender, types.RoleAdmin)
}

// requirePauser permits the module authority, admin-role holders and
// pauser-role holders.
func (k Keeper) requirePauser(ctx context.Context, sender sdk.AccAddress) error {
	if sender.String() == k.authority ||
		k.HasRole(ctx, sender, types.RoleAdmin) ||
		k.HasRole(ctx, sender, types.RolePauser) {
		return nil
	}
	return types.ErrUnauthorized.Wrapf("%s lacks the %s role", sender, types.RolePauser)
}
