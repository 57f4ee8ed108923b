package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
)

// MsgDeposit adds liquidity in both pool assets and mints at least
// MinSharesOut shares. MaxTotalSharesAfter, when nonzero, bounds the pool's
// total shares after the mint in addition to the configured cap.
type MsgDeposit struct {
	Provider            string   `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider"`
	AmountA             math.Int `protobuf:"bytes,2,opt,name=amount_a,json=amountA,proto3,customtype=cosmossdk.io/math.Int" json:"amount_a"`
	AmountB             math.Int `protobuf:"bytes,3,opt,name=amount_b,json=amountB,proto3,customtype=cosmossdk.io/math.Int" json:"amount_b"`
	MinSharesOut        math.Int `protobuf:"bytes,4,opt,name=min_shares_out,json=minSharesOut,proto3,customtype=cosmossdk.io/math.Int" json:"min_shares_out"`
	MaxTotalSharesAfter math.Int `protobuf:"bytes,5,opt,name=max_total_shares_after,json=maxTotalSharesAfter,proto3,customtype=cosmossdk.io/math.Int" json:"max_total_shares_after"`
	Deadline            int64    `protobuf:"varint,6,opt,name=deadline,proto3" json:"deadline"`
}

// NewMsgDeposit creates a new MsgDeposit instance.
func NewMsgDeposit(provider string, amountA, amountB, minSharesOut, maxTotalSharesAfter math.Int, deadline int64) *MsgDeposit {
	return &MsgDeposit{
		Provider:            provider,
		AmountA:             amountA,
		AmountB:             amountB,
		MinSharesOut:        minSharesOut,
		MaxTotalSharesAfter: maxTotalSharesAfter,
		Deadline:            deadline,
	}
}

// Route implements the legacy sdk.Msg interface
func (msg MsgDeposit) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgDeposit) Type() string { return "deposit" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgDeposit) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgDeposit) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return ErrZeroAmount.Wrap("amount A must be positive")
	}
	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return ErrZeroAmount.Wrap("amount B must be positive")
	}
	if msg.MinSharesOut.IsNil() || msg.MinSharesOut.IsNegative() {
		return ErrZeroAmount.Wrap("min shares out cannot be negative")
	}
	if msg.MaxTotalSharesAfter.IsNil() || msg.MaxTotalSharesAfter.IsNegative() {
		return ErrZeroAmount.Wrap("max total shares after cannot be negative")
	}
	if msg.Deadline <= 0 {
		return ErrDeadlineExpired.Wrap("deadline must be a positive unix time")
	}
	return nil
}

func (msg *MsgDeposit) Reset()         { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }
func (*MsgDeposit) ProtoMessage()      {}

// MsgWithdraw burns SharesIn liquidity shares for proportional amounts of
// both pool assets, each at least its stated minimum.
type MsgWithdraw struct {
	Provider      string   `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider"`
	SharesIn      math.Int `protobuf:"bytes,2,opt,name=shares_in,json=sharesIn,proto3,customtype=cosmossdk.io/math.Int" json:"shares_in"`
	MinAmountAOut math.Int `protobuf:"bytes,3,opt,name=min_amount_a_out,json=minAmountAOut,proto3,customtype=cosmossdk.io/math.Int" json:"min_amount_a_out"`
	MinAmountBOut math.Int `protobuf:"bytes,4,opt,name=min_amount_b_out,json=minAmountBOut,proto3,customtype=cosmossdk.io/math.Int" json:"min_amount_b_out"`
	Deadline      int64    `protobuf:"varint,5,opt,name=deadline,proto3" json:"deadline"`
}

// NewMsgWithdraw creates a new MsgWithdraw instance.
func NewMsgWithdraw(provider string, sharesIn, minAmountAOut, minAmountBOut math.Int, deadline int64) *MsgWithdraw {
	return &MsgWithdraw{
		Provider:      provider,
		SharesIn:      sharesIn,
		MinAmountAOut: minAmountAOut,
		MinAmountBOut: minAmountBOut,
		Deadline:      deadline,
	}
}

// Route implements the legacy sdk.Msg interface
func (msg MsgWithdraw) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgWithdraw) Type() string { return "withdraw" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgWithdraw) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.SharesIn.IsNil() || !msg.SharesIn.IsPositive() {
		return ErrZeroAmount.Wrap("shares in must be positive")
	}
	if msg.MinAmountAOut.IsNil() || msg.MinAmountAOut.IsNegative() {
		return ErrZeroAmount.Wrap("min amount A out cannot be negative")
	}
	if msg.MinAmountBOut.IsNil() || msg.MinAmountBOut.IsNegative() {
		return ErrZeroAmount.Wrap("min amount B out cannot be negative")
	}
	if msg.Deadline <= 0 {
		return ErrDeadlineExpired.Wrap("deadline must be a positive unix time")
	}
	return nil
}

func (msg *MsgWithdraw) Reset()         { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }
func (*MsgWithdraw) ProtoMessage()      {}
