package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Default pool configuration. The configuration is fixed at genesis; there is
// no parameter-update message.
var (
	DefaultFeeNumerator   = uint64(997)
	DefaultFeeDenominator = uint64(1000)
	DefaultMaxTotalShares = math.NewInt(1_000_000_000_000)
	DefaultSwapCountMax   = uint64(10)
	DefaultRewardAmount   = math.NewInt(1000)
	DefaultRatioTolerance = uint64(100)
)

// Params holds the immutable pool configuration: the swap fee as an exact
// integer ratio, the liquidity-share cap, and the incentive schedule.
type Params struct {
	FeeNumerator      uint64   `protobuf:"varint,1,opt,name=fee_numerator,json=feeNumerator,proto3" json:"fee_numerator" yaml:"fee_numerator"`
	FeeDenominator    uint64   `protobuf:"varint,2,opt,name=fee_denominator,json=feeDenominator,proto3" json:"fee_denominator" yaml:"fee_denominator"`
	MaxTotalShares    math.Int `protobuf:"bytes,3,opt,name=max_total_shares,json=maxTotalShares,proto3,customtype=cosmossdk.io/math.Int" json:"max_total_shares" yaml:"max_total_shares"`
	SwapCountMax      uint64   `protobuf:"varint,4,opt,name=swap_count_max,json=swapCountMax,proto3" json:"swap_count_max" yaml:"swap_count_max"`
	RewardAmount      math.Int `protobuf:"bytes,5,opt,name=reward_amount,json=rewardAmount,proto3,customtype=cosmossdk.io/math.Int" json:"reward_amount" yaml:"reward_amount"`
	RatioToleranceBps uint64   `protobuf:"varint,6,opt,name=ratio_tolerance_bps,json=ratioToleranceBps,proto3" json:"ratio_tolerance_bps" yaml:"ratio_tolerance_bps"`
}

func (p *Params) Reset()         { *p = Params{} }
func (p *Params) String() string { return string(ModuleCdc.MustMarshalJSON(p)) }
func (*Params) ProtoMessage()    {}

// NewParams creates a new Params instance.
func NewParams(feeNum, feeDen uint64, maxTotalShares math.Int, swapCountMax uint64, rewardAmount math.Int, ratioToleranceBps uint64) Params {
	return Params{
		FeeNumerator:      feeNum,
		FeeDenominator:    feeDen,
		MaxTotalShares:    maxTotalShares,
		SwapCountMax:      swapCountMax,
		RewardAmount:      rewardAmount,
		RatioToleranceBps: ratioToleranceBps,
	}
}

// DefaultParams returns the default pool configuration.
func DefaultParams() Params {
	return NewParams(
		DefaultFeeNumerator,
		DefaultFeeDenominator,
		DefaultMaxTotalShares,
		DefaultSwapCountMax,
		DefaultRewardAmount,
		DefaultRatioTolerance,
	)
}

// Validate performs basic validation of the pool configuration.
func (p Params) Validate() error {
	if p.FeeDenominator == 0 {
		return fmt.Errorf("fee denominator must be positive")
	}
	if p.FeeNumerator == 0 {
		return fmt.Errorf("fee numerator must be positive")
	}
	if p.FeeNumerator > p.FeeDenominator {
		return fmt.Errorf("fee numerator %d exceeds denominator %d", p.FeeNumerator, p.FeeDenominator)
	}
	if p.MaxTotalShares.IsNil() || !p.MaxTotalShares.IsPositive() {
		return fmt.Errorf("max total shares must be positive")
	}
	if p.SwapCountMax == 0 {
		return fmt.Errorf("swap count max must be positive")
	}
	if p.RewardAmount.IsNil() || p.RewardAmount.IsNegative() {
		return fmt.Errorf("reward amount must be non-negative")
	}
	if p.RatioToleranceBps > 10_000 {
		return fmt.Errorf("ratio tolerance %d exceeds 10000 basis points", p.RatioToleranceBps)
	}
	return nil
}
