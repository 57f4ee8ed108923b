package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

// RegisterLegacyAminoCodec registers the amm module's message types on the
// LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSwapExactIn{}, "amm/SwapExactIn", nil)
	cdc.RegisterConcrete(&MsgSwapExactOut{}, "amm/SwapExactOut", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "amm/Deposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "amm/Withdraw", nil)
	cdc.RegisterConcrete(&MsgPause{}, "amm/Pause", nil)
	cdc.RegisterConcrete(&MsgUnpause{}, "amm/Unpause", nil)
	cdc.RegisterConcrete(&MsgGrantRole{}, "amm/GrantRole", nil)
	cdc.RegisterConcrete(&MsgRevokeRole{}, "amm/RevokeRole", nil)
}

// RegisterInterfaces registers the amm module's message types on the
// interface registry.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSwapExactIn{},
		&MsgSwapExactOut{},
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgPause{},
		&MsgUnpause{},
		&MsgGrantRole{},
		&MsgRevokeRole{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}

// ModuleCdc is the module's amino codec. Genesis state and stored records
// marshal through it as JSON. Messages and query types carry hand-written
// gogoproto struct tags instead of generated code, so the tx and query wire
// paths marshal through gogoproto reflection.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
}
