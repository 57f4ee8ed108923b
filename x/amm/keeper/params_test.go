package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/tidepool-zone/tidepool/testutil/keeper"
	"github.com/tidepool-zone/tidepool/x/amm/types"
)

func TestParamsStorage(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	require.Equal(t, types.DefaultParams(), k.GetParams(ctx))

	params := types.DefaultParams()
	params.FeeNumerator = 990
	params.RewardAmount = math.NewInt(250)
	require.NoError(t, k.SetParams(ctx, params))
	require.Equal(t, params, k.GetParams(ctx))

	params.FeeNumerator = params.FeeDenominator + 1
	require.Error(t, k.SetParams(ctx, params))
	// The invalid write never landed.
	require.Equal(t, uint64(990), k.GetParams(ctx).FeeNumerator)
}

func TestKeeperIdentity(t *testing.T) {
	k, _, _ := keepertest.AmmKeeper(t)
	require.Equal(t, keepertest.Authority, k.GetAuthority())
	require.Equal(t, authtypes.NewModuleAddress(types.ModuleName), k.GetModuleAddress())
}

func TestBeginBlocker(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)

	// Runs clean against the empty genesis pool.
	require.NoError(t, k.BeginBlocker(ctx))

	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, k.BeginBlocker(ctx))
}
