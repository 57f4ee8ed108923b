package app

import (
	"testing"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
	"github.com/stretchr/testify/require"

	ammtypes "github.com/tidepool-zone/tidepool/x/amm/types"
)

func TestGetMaccPerms(t *testing.T) {
	perms := GetMaccPerms()
	require.Len(t, perms, len(maccPerms))

	// The amm account escrows reserves only.
	ammPerms, ok := perms[ammtypes.ModuleName]
	require.True(t, ok)
	require.Empty(t, ammPerms)

	// Mutating the copy must not touch the source.
	perms["rogue"] = []string{authtypes.Minter}
	_, leaked := maccPerms["rogue"]
	require.False(t, leaked)
}

func TestBlockedModuleAccountAddrs(t *testing.T) {
	app := &TidepoolApp{}
	blocked := app.BlockedModuleAccountAddrs()

	require.Len(t, blocked, len(maccPerms))
	for acc := range maccPerms {
		addr := authtypes.NewModuleAddress(acc).String()
		require.True(t, blocked[addr], "module account %s should be blocked", acc)
	}
}

func TestNewDefaultGenesisState(t *testing.T) {
	encCfg := MakeEncodingConfig()
	genState := NewDefaultGenesisState(encCfg.Codec)

	raw, ok := genState[ammtypes.ModuleName]
	require.True(t, ok, "amm genesis missing from defaults")

	var ammGen ammtypes.GenesisState
	require.NoError(t, ammtypes.ModuleCdc.UnmarshalJSON(raw, &ammGen))
	require.NoError(t, ammGen.Validate())
	require.Equal(t, ammtypes.DefaultFeeNumerator, ammGen.Params.FeeNumerator)
	require.Equal(t, ammtypes.DefaultFeeDenominator, ammGen.Params.FeeDenominator)
	require.True(t, ammGen.Params.MaxTotalShares.Equal(ammtypes.DefaultMaxTotalShares))
	require.True(t, ammGen.Pool.IsEmpty())
}

func TestNewGenesisStateFromConfig(t *testing.T) {
	encCfg := MakeEncodingConfig()
	genState := NewGenesisStateFromConfig(encCfg.Codec, DefaultGenesisConfig())

	var ammGen ammtypes.GenesisState
	require.NoError(t, ammtypes.ModuleCdc.UnmarshalJSON(genState[ammtypes.ModuleName], &ammGen))
	require.NoError(t, ammGen.Validate())
	require.Equal(t, BondDenom, ammGen.Pool.AssetA)
	require.Equal(t, "uusdc", ammGen.Pool.AssetB)
	require.True(t, ammGen.Pool.IsEmpty())

	var stakingGen stakingtypes.GenesisState
	require.NoError(t, encCfg.Codec.UnmarshalJSON(genState[stakingtypes.ModuleName], &stakingGen))
	require.Equal(t, BondDenom, stakingGen.Params.BondDenom)
	require.Equal(t, uint32(100), stakingGen.Params.MaxValidators)
}

func TestDefaultGenesisConfig(t *testing.T) {
	cfg := DefaultGenesisConfig()

	require.Equal(t, "tidepool-1", cfg.ChainID)
	require.Equal(t, BondDenom, cfg.PoolAssetA)
	require.Equal(t, "uusdc", cfg.PoolAssetB)
	require.Equal(t, ammtypes.DefaultFeeNumerator, cfg.SwapFeeNumerator)
	require.Equal(t, ammtypes.DefaultFeeDenominator, cfg.SwapFeeDenominator)
	require.NotEmpty(t, cfg.Quorum)
	require.NotEmpty(t, cfg.Threshold)
}
