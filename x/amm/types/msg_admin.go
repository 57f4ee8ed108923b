package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgPause{}
	_ sdk.Msg = &MsgUnpause{}
	_ sdk.Msg = &MsgGrantRole{}
	_ sdk.Msg = &MsgRevokeRole{}
)

// MsgPause halts all swap and liquidity operations. Requires the pauser or
// admin role.
type MsgPause struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender"`
}

// NewMsgPause creates a new MsgPause instance.
func NewMsgPause(sender string) *MsgPause {
	return &MsgPause{Sender: sender}
}

// Route implements the legacy sdk.Msg interface
func (msg MsgPause) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgPause) Type() string { return "pause" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgPause) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgPause) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgPause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	return nil
}

func (msg *MsgPause) Reset()         { *msg = MsgPause{} }
func (msg *MsgPause) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }
func (*MsgPause) ProtoMessage()      {}

// MsgUnpause resumes swap and liquidity operations. Requires the pauser or
// admin role.
type MsgUnpause struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender"`
}

// NewMsgUnpause creates a new MsgUnpause instance.
func NewMsgUnpause(sender string) *MsgUnpause {
	return &MsgUnpause{Sender: sender}
}

// Route implements the legacy sdk.Msg interface
func (msg MsgUnpause) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgUnpause) Type() string { return "unpause" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgUnpause) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgUnpause) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgUnpause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	return nil
}

func (msg *MsgUnpause) Reset()         { *msg = MsgUnpause{} }
func (msg *MsgUnpause) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }
func (*MsgUnpause) ProtoMessage()      {}

// MsgGrantRole grants an administrative role to an address. Requires the
// admin role.
type MsgGrantRole struct {
	Sender  string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender"`
	Grantee string `protobuf:"bytes,2,opt,name=grantee,proto3" json:"grantee"`
	Role    string `protobuf:"bytes,3,opt,name=role,proto3" json:"role"`
}

// NewMsgGrantRole creates a new MsgGrantRole instance.
func NewMsgGrantRole(sender, grantee, role string) *MsgGrantRole {
	return &MsgGrantRole{Sender: sender, Grantee: grantee, Role: role}
}

// Route implements the legacy sdk.Msg interface
func (msg MsgGrantRole) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgGrantRole) Type() string { return "grant_role" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgGrantRole) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgGrantRole) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgGrantRole) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Grantee); err != nil {
		return ErrInvalidAddress.Wrapf("invalid grantee address: %s", err)
	}
	if !ValidRole(msg.Role) {
		return ErrInvalidRole.Wrapf("unknown role %q", msg.Role)
	}
	return nil
}

func (msg *MsgGrantRole) Reset()         { *msg = MsgGrantRole{} }
func (msg *MsgGrantRole) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }
func (*MsgGrantRole) ProtoMessage()      {}

// MsgRevokeRole revokes a previously granted role. Requires the admin role.
type MsgRevokeRole struct {
	Sender  string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender"`
	Grantee string `protobuf:"bytes,2,opt,name=grantee,proto3" json:"grantee"`
	Role    string `protobuf:"bytes,3,opt,name=role,proto3" json:"role"`
}

// NewMsgRevokeRole creates a new MsgRevokeRole instance.
func NewMsgRevokeRole(sender, grantee, role string) *MsgRevokeRole {
	return &MsgRevokeRole{Sender: sender, Grantee: grantee, Role: role}
}

// Route implements the legacy sdk.Msg interface
func (msg MsgRevokeRole) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgRevokeRole) Type() string { return "revoke_role" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgRevokeRole) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgRevokeRole) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgRevokeRole) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Grantee); err != nil {
		return ErrInvalidAddress.Wrapf("invalid grantee address: %s", err)
	}
	if !ValidRole(msg.Role) {
		return ErrInvalidRole.Wrapf("unknown role %q", msg.Role)
	}
	return nil
}

func (msg *MsgRevokeRole) Reset()         { *msg = MsgRevokeRole{} }
func (msg *MsgRevokeRole) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }
func (*MsgRevokeRole) ProtoMessage()      {}
