package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	keepertest "github.com/tidepool-zone/tidepool/testutil/keeper"
	"github.com/tidepool-zone/tidepool/x/amm/types"
)

func authorityAddr(t *testing.T) sdk.AccAddress {
	t.Helper()
	addr, err := sdk.AccAddressFromBech32(keepertest.Authority)
	require.NoError(t, err)
	return addr
}

func TestPauseUnpauseByAuthority(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	authority := authorityAddr(t)

	require.False(t, k.IsPaused(ctx))
	require.NoError(t, k.RequireUnpaused(ctx))

	require.NoError(t, k.Pause(ctx, authority))
	require.True(t, k.IsPaused(ctx))
	require.ErrorIs(t, k.RequireUnpaused(ctx), types.ErrPaused)

	require.NoError(t, k.Unpause(ctx, authority))
	require.False(t, k.IsPaused(ctx))
	require.NoError(t, k.RequireUnpaused(ctx))
}

func TestPauseTransitionGuards(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	authority := authorityAddr(t)

	// Unpausing a live module is a no-op request, not a silent success.
	err := k.Unpause(ctx, authority)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)

	require.NoError(t, k.Pause(ctx, authority))
	err = k.Pause(ctx, authority)
	require.ErrorIs(t, err, types.ErrPaused)
	require.True(t, k.IsPaused(ctx))
}

func TestPauseByRoleHolders(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	authority := authorityAddr(t)

	pauser := keepertest.TestAddress(2)
	admin := keepertest.TestAddress(3)
	require.NoError(t, k.GrantRole(ctx, authority, pauser, types.RolePauser))
	require.NoError(t, k.GrantRole(ctx, authority, admin, types.RoleAdmin))

	require.NoError(t, k.Pause(ctx, pauser))
	// The admin role carries pause rights without a separate pauser grant.
	require.NoError(t, k.Unpause(ctx, admin))
	require.NoError(t, k.Pause(ctx, admin))
	require.NoError(t, k.Unpause(ctx, pauser))
}

func TestPauseUnauthorized(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	stranger := keepertest.TestAddress(7)
	err := k.Pause(ctx, stranger)
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.False(t, k.IsPaused(ctx))

	authority := authorityAddr(t)
	require.NoError(t, k.Pause(ctx, authority))
	err = k.Unpause(ctx, stranger)
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.True(t, k.IsPaused(ctx))
}

func TestGrantRole(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	authority := authorityAddr(t)
	grantee := keepertest.TestAddress(2)

	require.False(t, k.HasRole(ctx, grantee, types.RolePauser))
	require.NoError(t, k.GrantRole(ctx, authority, grantee, types.RolePauser))
	require.True(t, k.HasRole(ctx, grantee, types.RolePauser))
	require.False(t, k.HasRole(ctx, grantee, types.RoleAdmin))

	err := k.GrantRole(ctx, authority, grantee, types.RolePauser)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)

	err = k.GrantRole(ctx, authority, grantee, "janitor")
	require.ErrorIs(t, err, types.ErrInvalidRole)
	require.False(t, k.HasRole(ctx, grantee, "janitor"))
}

func TestGrantRoleRequiresAdmin(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	authority := authorityAddr(t)

	admin := keepertest.TestAddress(2)
	pauser := keepertest.TestAddress(3)
	target := keepertest.TestAddress(4)

	require.NoError(t, k.GrantRole(ctx, authority, admin, types.RoleAdmin))
	require.NoError(t, k.GrantRole(ctx, authority, pauser, types.RolePauser))

	// Admin-role holders can manage grants.
	require.NoError(t, k.GrantRole(ctx, admin, target, types.RolePauser))

	// Pauser-role holders and strangers cannot.
	err := k.GrantRole(ctx, pauser, target, types.RoleAdmin)
	require.ErrorIs(t, err, types.ErrUnauthorized)
	err = k.GrantRole(ctx, keepertest.TestAddress(9), target, types.RoleAdmin)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestRevokeRole(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	authority := authorityAddr(t)
	grantee := keepertest.TestAddress(2)

	require.NoError(t, k.GrantRole(ctx, authority, grantee, types.RolePauser))
	require.NoError(t, k.RevokeRole(ctx, authority, grantee, types.RolePauser))
	require.False(t, k.HasRole(ctx, grantee, types.RolePauser))

	// Revoked pausers lose the capability immediately.
	err := k.Pause(ctx, grantee)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	err = k.RevokeRole(ctx, authority, grantee, types.RolePauser)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)

	err = k.RevokeRole(ctx, keepertest.TestAddress(9), grantee, types.RolePauser)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	err = k.RevokeRole(ctx, authority, grantee, "janitor")
	require.ErrorIs(t, err, types.ErrInvalidRole)
}

func TestIterateRoles(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	authority := authorityAddr(t)

	first := keepertest.TestAddress(2)
	second := keepertest.TestAddress(3)
	require.NoError(t, k.GrantRole(ctx, authority, first, types.RoleAdmin))
	require.NoError(t, k.GrantRole(ctx, authority, first, types.RolePauser))
	require.NoError(t, k.GrantRole(ctx, authority, second, types.RolePauser))

	grants := map[string][]string{}
	k.IterateRoles(ctx, func(addr sdk.AccAddress, role string) bool {
		grants[addr.String()] = append(grants[addr.String()], role)
		return false
	})
	require.Len(t, grants, 2)
	require.ElementsMatch(t, []string{types.RoleAdmin, types.RolePauser}, grants[first.String()])
	require.Equal(t, []string{types.RolePauser}, grants[second.String()])

	visits := 0
	k.IterateRoles(ctx, func(sdk.AccAddress, string) bool {
		visits++
		return true
	})
	require.Equal(t, 1, visits)
}

func TestPauseBlocksStateChanges(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))

	require.NoError(t, k.Pause(ctx, authorityAddr(t)))
	deadline := keepertest.FutureDeadline(ctx)

	_, _, err := k.SwapExactInput(ctx, provider, "utide", math.NewInt(100), "uusdc", math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrPaused)
	_, err = k.Deposit(ctx, provider, math.NewInt(100), math.NewInt(100), math.ZeroInt(), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrPaused)
	_, _, err = k.Withdraw(ctx, provider, math.NewInt(100), math.ZeroInt(), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrPaused)

	// Role management stays available while paused.
	require.NoError(t, k.GrantRole(ctx, authorityAddr(t), keepertest.TestAddress(2), types.RolePauser))
}
