package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSwapExactIn{}
	_ sdk.Msg = &MsgSwapExactOut{}
)

// MsgSwapExactIn swaps a fixed input amount for at least MinAmountOut of the
// output asset before Deadline.
type MsgSwapExactIn struct {
	Trader       string   `protobuf:"bytes,1,opt,name=trader,proto3" json:"trader"`
	AssetIn      string   `protobuf:"bytes,2,opt,name=asset_in,json=assetIn,proto3" json:"asset_in"`
	AmountIn     math.Int `protobuf:"bytes,3,opt,name=amount_in,json=amountIn,proto3,customtype=cosmossdk.io/math.Int" json:"amount_in"`
	AssetOut     string   `protobuf:"bytes,4,opt,name=asset_out,json=assetOut,proto3" json:"asset_out"`
	MinAmountOut math.Int `protobuf:"bytes,5,opt,name=min_amount_out,json=minAmountOut,proto3,customtype=cosmossdk.io/math.Int" json:"min_amount_out"`
	Deadline     int64    `protobuf:"varint,6,opt,name=deadline,proto3" json:"deadline"`
}

// NewMsgSwapExactIn creates a new MsgSwapExactIn instance.
func NewMsgSwapExactIn(trader, assetIn string, amountIn math.Int, assetOut string, minAmountOut math.Int, deadline int64) *MsgSwapExactIn {
	return &MsgSwapExactIn{
		Trader:       trader,
		AssetIn:      assetIn,
		AmountIn:     amountIn,
		AssetOut:     assetOut,
		MinAmountOut: minAmountOut,
		Deadline:     deadline,
	}
}

// Route implements the legacy sdk.Msg interface
func (msg MsgSwapExactIn) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgSwapExactIn) Type() string { return "swap_exact_in" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgSwapExactIn) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgSwapExactIn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgSwapExactIn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("invalid trader address: %s", err)
	}
	if err := validateSwapPair(msg.AssetIn, msg.AssetOut); err != nil {
		return err
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return ErrZeroAmount.Wrap("amount in must be positive")
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return ErrZeroAmount.Wrap("min amount out cannot be negative")
	}
	if msg.Deadline <= 0 {
		return ErrDeadlineExpired.Wrap("deadline must be a positive unix time")
	}
	return nil
}

func (msg *MsgSwapExactIn) Reset()         { *msg = MsgSwapExactIn{} }
func (msg *MsgSwapExactIn) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }
func (*MsgSwapExactIn) ProtoMessage()      {}

// MsgSwapExactOut swaps at most MaxAmountIn of the input asset for a fixed
// output amount before Deadline.
type MsgSwapExactOut struct {
	Trader      string   `protobuf:"bytes,1,opt,name=trader,proto3" json:"trader"`
	AssetIn     string   `protobuf:"bytes,2,opt,name=asset_in,json=assetIn,proto3" json:"asset_in"`
	MaxAmountIn math.Int `protobuf:"bytes,3,opt,name=max_amount_in,json=maxAmountIn,proto3,customtype=cosmossdk.io/math.Int" json:"max_amount_in"`
	AssetOut    string   `protobuf:"bytes,4,opt,name=asset_out,json=assetOut,proto3" json:"asset_out"`
	AmountOut   math.Int `protobuf:"bytes,5,opt,name=amount_out,json=amountOut,proto3,customtype=cosmossdk.io/math.Int" json:"amount_out"`
	Deadline    int64    `protobuf:"varint,6,opt,name=deadline,proto3" json:"deadline"`
}

// NewMsgSwapExactOut creates a new MsgSwapExactOut instance.
func NewMsgSwapExactOut(trader, assetIn string, maxAmountIn math.Int, assetOut string, amountOut math.Int, deadline int64) *MsgSwapExactOut {
	return &MsgSwapExactOut{
		Trader:      trader,
		AssetIn:     assetIn,
		MaxAmountIn: maxAmountIn,
		AssetOut:    assetOut,
		AmountOut:   amountOut,
		Deadline:    deadline,
	}
}

// Route implements the legacy sdk.Msg interface
func (msg MsgSwapExactOut) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgSwapExactOut) Type() string { return "swap_exact_out" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgSwapExactOut) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgSwapExactOut) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgSwapExactOut) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("invalid trader address: %s", err)
	}
	if err := validateSwapPair(msg.AssetIn, msg.AssetOut); err != nil {
		return err
	}
	if msg.AmountOut.IsNil() || !msg.AmountOut.IsPositive() {
		return ErrZeroAmount.Wrap("amount out must be positive")
	}
	if msg.MaxAmountIn.IsNil() || !msg.MaxAmountIn.IsPositive() {
		return ErrZeroAmount.Wrap("max amount in must be positive")
	}
	if msg.Deadline <= 0 {
		return ErrDeadlineExpired.Wrap("deadline must be a positive unix time")
	}
	return nil
}

func (msg *MsgSwapExactOut) Reset()         { *msg = MsgSwapExactOut{} }
func (msg *MsgSwapExactOut) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }
func (*MsgSwapExactOut) ProtoMessage()      {}

func validateSwapPair(assetIn, assetOut string) error {
	if err := sdk.ValidateDenom(assetIn); err != nil {
		return ErrInvalidAssetPair.Wrapf("invalid input denom: %s", err)
	}
	if err := sdk.ValidateDenom(assetOut); err != nil {
		return ErrInvalidAssetPair.Wrapf("invalid output denom: %s", err)
	}
	if assetIn == assetOut {
		return ErrInvalidAssetPair.Wrap("cannot swap an asset against itself")
	}
	return nil
}
