package app

import (
	"encoding/json"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	crisistypes "github.com/cosmos/cosmos-sdk/x/crisis/types"
	distrtypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types/v1"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	ammtypes "github.com/tidepool-zone/tidepool/x/amm/types"
)

// GenesisState represents the genesis state of the Tidepool blockchain,
// keyed by module name.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default genesis state for every
// registered module.
func NewDefaultGenesisState(cdc codec.JSONCodec) GenesisState {
	return GenesisState(ModuleBasics.DefaultGenesis(cdc))
}

// NewGenesisStateFromConfig creates genesis state with network-specific
// parameters applied on top of the module defaults.
func NewGenesisStateFromConfig(cdc codec.JSONCodec, config GenesisConfig) GenesisState {
	genesis := NewDefaultGenesisState(cdc)

	// Bank module - token transfer policy. Supply is left empty so that it is
	// derived from the genesis account balances during InitGenesis.
	bankGenesis := banktypes.DefaultGenesisState()
	bankGenesis.Params = banktypes.Params{
		SendEnabled:        []*banktypes.SendEnabled{},
		DefaultSendEnabled: true,
	}
	genesis[banktypes.ModuleName] = cdc.MustMarshalJSON(bankGenesis)

	// Staking module - validator and delegation management
	stakingGenesis := stakingtypes.DefaultGenesisState()
	stakingGenesis.Params = stakingtypes.Params{
		UnbondingTime:     time.Duration(config.UnbondingPeriodSeconds) * time.Second,
		MaxValidators:     config.MaxValidators,
		MaxEntries:        7,
		HistoricalEntries: 10000,
		BondDenom:         BondDenom,
		MinCommissionRate: math.LegacyMustNewDecFromStr("0.05"),
	}
	genesis[stakingtypes.ModuleName] = cdc.MustMarshalJSON(stakingGenesis)

	// Slashing module - validator punishment
	slashingGenesis := slashingtypes.DefaultGenesisState()
	slashingGenesis.Params = slashingtypes.Params{
		SignedBlocksWindow:      int64(config.DowntimeWindowBlocks),
		MinSignedPerWindow:      math.LegacyMustNewDecFromStr("0.50"),
		DowntimeJailDuration:    time.Duration(config.DowntimeJailDurationSeconds) * time.Second,
		SlashFractionDoubleSign: math.LegacyMustNewDecFromStr(config.DoubleSignPenalty),
		SlashFractionDowntime:   math.LegacyMustNewDecFromStr(config.DowntimePenalty),
	}
	genesis[slashingtypes.ModuleName] = cdc.MustMarshalJSON(slashingGenesis)

	// Governance module - on-chain governance
	govGenesis := govtypes.DefaultGenesisState()
	govGenesis.Params.MinDeposit = sdk.NewCoins(sdk.NewInt64Coin(BondDenom, config.MinDepositAmount))
	govGenesis.Params.MaxDepositPeriod = durationPtr(time.Duration(604800) * time.Second) // 7 days
	govGenesis.Params.VotingPeriod = durationPtr(time.Duration(config.VotingPeriodSeconds) * time.Second)
	govGenesis.Params.Quorum = config.Quorum
	govGenesis.Params.Threshold = config.Threshold
	govGenesis.Params.VetoThreshold = config.VetoThreshold
	genesis[govtypes.ModuleName] = cdc.MustMarshalJSON(govGenesis)

	// Distribution module - fee distribution
	distrGenesis := distrtypes.DefaultGenesisState()
	distrGenesis.Params = distrtypes.Params{
		CommunityTax:        math.LegacyMustNewDecFromStr(config.CommunityTax),
		BaseProposerReward:  math.LegacyZeroDec(),
		BonusProposerReward: math.LegacyZeroDec(),
		WithdrawAddrEnabled: true,
	}
	genesis[distrtypes.ModuleName] = cdc.MustMarshalJSON(distrGenesis)

	// Mint module - token emission (disabled, fixed supply)
	mintGenesis := minttypes.DefaultGenesisState()
	mintGenesis.Params = minttypes.Params{
		MintDenom:           BondDenom,
		InflationRateChange: math.LegacyZeroDec(),
		InflationMax:        math.LegacyZeroDec(),
		InflationMin:        math.LegacyZeroDec(),
		GoalBonded:          math.LegacyMustNewDecFromStr("0.67"),
		BlocksPerYear:       uint64(7884000), // ~4 second blocks
	}
	mintGenesis.Minter = minttypes.Minter{
		Inflation:        math.LegacyZeroDec(),
		AnnualProvisions: math.LegacyZeroDec(),
	}
	genesis[minttypes.ModuleName] = cdc.MustMarshalJSON(mintGenesis)

	// Crisis module - invariant checking
	crisisGenesis := crisistypes.DefaultGenesisState()
	crisisGenesis.ConstantFee = sdk.NewInt64Coin(BondDenom, config.CrisisConstantFee)
	genesis[crisistypes.ModuleName] = cdc.MustMarshalJSON(crisisGenesis)

	// AMM module - pool pair and trading configuration. The amm genesis is
	// amino JSON, so it goes through the module codec rather than the app's
	// proto codec.
	ammGenesis := ammtypes.DefaultGenesis()
	ammGenesis.Pool = ammtypes.NewPool(config.PoolAssetA, config.PoolAssetB)
	ammGenesis.Params = ammtypes.NewParams(
		config.SwapFeeNumerator,
		config.SwapFeeDenominator,
		config.MaxTotalShares,
		config.SwapCountMax,
		config.SwapRewardAmount,
		config.RatioToleranceBps,
	)
	genesis[ammtypes.ModuleName] = ammtypes.ModuleCdc.MustMarshalJSON(ammGenesis)

	return genesis
}

// GenesisConfig holds configuration parameters for genesis state
type GenesisConfig struct {
	ChainID                     string
	MaxValidators               uint32
	UnbondingPeriodSeconds      int64
	DoubleSignPenalty           string
	DowntimePenalty             string
	DowntimeWindowBlocks        uint64
	DowntimeJailDurationSeconds int64
	MinDepositAmount            int64
	VotingPeriodSeconds         int64
	Quorum                      string
	Threshold                   string
	VetoThreshold               string
	CommunityTax                string
	CrisisConstantFee           int64

	// AMM pool configuration
	PoolAssetA         string
	PoolAssetB         string
	SwapFeeNumerator   uint64
	SwapFeeDenominator uint64
	MaxTotalShares     math.Int
	SwapCountMax       uint64
	SwapRewardAmount   math.Int
	RatioToleranceBps  uint64
}

// DefaultGenesisConfig returns the default Tidepool network configuration.
func DefaultGenesisConfig() GenesisConfig {
	return GenesisConfig{
		ChainID:                     "tidepool-1",
		MaxValidators:               100,
		UnbondingPeriodSeconds:      1814400, // 21 days
		DoubleSignPenalty:           "0.05",  // 5%
		DowntimePenalty:             "0.001", // 0.1%
		DowntimeWindowBlocks:        10000,
		DowntimeJailDurationSeconds: 86400,                  // 24 hours
		MinDepositAmount:            10000000000,            // 10,000 TIDE
		VotingPeriodSeconds:         432000,                 // 5 days
		Quorum:                      "0.334000000000000000", // 33.4%
		Threshold:                   "0.500000000000000000", // 50%
		VetoThreshold:               "0.334000000000000000", // 33.4%
		CommunityTax:                "0.02",                 // 2%
		CrisisConstantFee:           1000000000,             // 1,000 TIDE

		PoolAssetA:         BondDenom,
		PoolAssetB:         "uusdc",
		SwapFeeNumerator:   ammtypes.DefaultFeeNumerator,
		SwapFeeDenominator: ammtypes.DefaultFeeDenominator,
		MaxTotalShares:     ammtypes.DefaultMaxTotalShares,
		SwapCountMax:       ammtypes.DefaultSwapCountMax,
		SwapRewardAmount:   ammtypes.DefaultRewardAmount,
		RatioToleranceBps:  ammtypes.DefaultRatioTolerance,
	}
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
