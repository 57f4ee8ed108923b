package types

import (
	"context"

	"cosmossdk.io/math"
	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// MsgServer is the server API for the amm Msg service.
type MsgServer interface {
	// SwapExactIn swaps a fixed input amount for a bounded-below output.
	SwapExactIn(context.Context, *MsgSwapExactIn) (*MsgSwapExactInResponse, error)
	// SwapExactOut swaps a bounded-above input for a fixed output amount.
	SwapExactOut(context.Context, *MsgSwapExactOut) (*MsgSwapExactOutResponse, error)
	// Deposit adds liquidity and mints pool shares.
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	// Withdraw burns pool shares for proportional reserves.
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	// Pause halts swap and liquidity operations.
	Pause(context.Context, *MsgPause) (*MsgPauseResponse, error)
	// Unpause resumes swap and liquidity operations.
	Unpause(context.Context, *MsgUnpause) (*MsgUnpauseResponse, error)
	// GrantRole grants an administrative role.
	GrantRole(context.Context, *MsgGrantRole) (*MsgGrantRoleResponse, error)
	// RevokeRole revokes an administrative role.
	RevokeRole(context.Context, *MsgRevokeRole) (*MsgRevokeRoleResponse, error)
}

// MsgSwapExactInResponse returns the committed output amount.
type MsgSwapExactInResponse struct {
	AmountOut  math.Int `protobuf:"bytes,1,opt,name=amount_out,json=amountOut,proto3,customtype=cosmossdk.io/math.Int" json:"amount_out"`
	RewardPaid bool     `protobuf:"varint,2,opt,name=reward_paid,json=rewardPaid,proto3" json:"reward_paid"`
}

func (m *MsgSwapExactInResponse) Reset()         { *m = MsgSwapExactInResponse{} }
func (m *MsgSwapExactInResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*MsgSwapExactInResponse) ProtoMessage()    {}

// MsgSwapExactOutResponse returns the committed input amount.
type MsgSwapExactOutResponse struct {
	AmountIn   math.Int `protobuf:"bytes,1,opt,name=amount_in,json=amountIn,proto3,customtype=cosmossdk.io/math.Int" json:"amount_in"`
	RewardPaid bool     `protobuf:"varint,2,opt,name=reward_paid,json=rewardPaid,proto3" json:"reward_paid"`
}

func (m *MsgSwapExactOutResponse) Reset()         { *m = MsgSwapExactOutResponse{} }
func (m *MsgSwapExactOutResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*MsgSwapExactOutResponse) ProtoMessage()    {}

// MsgDepositResponse returns the minted shares.
type MsgDepositResponse struct {
	SharesMinted math.Int `protobuf:"bytes,1,opt,name=shares_minted,json=sharesMinted,proto3,customtype=cosmossdk.io/math.Int" json:"shares_minted"`
}

func (m *MsgDepositResponse) Reset()         { *m = MsgDepositResponse{} }
func (m *MsgDepositResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*MsgDepositResponse) ProtoMessage()    {}

// MsgWithdrawResponse returns the redeemed amounts.
type MsgWithdrawResponse struct {
	AmountA math.Int `protobuf:"bytes,1,opt,name=amount_a,json=amountA,proto3,customtype=cosmossdk.io/math.Int" json:"amount_a"`
	AmountB math.Int `protobuf:"bytes,2,opt,name=amount_b,json=amountB,proto3,customtype=cosmossdk.io/math.Int" json:"amount_b"`
}

func (m *MsgWithdrawResponse) Reset()         { *m = MsgWithdrawResponse{} }
func (m *MsgWithdrawResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*MsgWithdrawResponse) ProtoMessage()    {}

// MsgPauseResponse is the response for MsgPause.
type MsgPauseResponse struct{}

func (m *MsgPauseResponse) Reset()         { *m = MsgPauseResponse{} }
func (m *MsgPauseResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*MsgPauseResponse) ProtoMessage()    {}

// MsgUnpauseResponse is the response for MsgUnpause.
type MsgUnpauseResponse struct{}

func (m *MsgUnpauseResponse) Reset()         { *m = MsgUnpauseResponse{} }
func (m *MsgUnpauseResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*MsgUnpauseResponse) ProtoMessage()    {}

// MsgGrantRoleResponse is the response for MsgGrantRole.
type MsgGrantRoleResponse struct{}

func (m *MsgGrantRoleResponse) Reset()         { *m = MsgGrantRoleResponse{} }
func (m *MsgGrantRoleResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*MsgGrantRoleResponse) ProtoMessage()    {}

// MsgRevokeRoleResponse is the response for MsgRevokeRole.
type MsgRevokeRoleResponse struct{}

func (m *MsgRevokeRoleResponse) Reset()         { *m = MsgRevokeRoleResponse{} }
func (m *MsgRevokeRoleResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*MsgRevokeRoleResponse) ProtoMessage()    {}

// RegisterMsgServer registers the Msg service implementation with a gRPC
// service registrar (the module configurator in an app).
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_SwapExactIn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSwapExactIn)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SwapExactIn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Msg/SwapExactIn",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SwapExactIn(ctx, req.(*MsgSwapExactIn))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_SwapExactOut_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSwapExactOut)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SwapExactOut(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Msg/SwapExactOut",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SwapExactOut(ctx, req.(*MsgSwapExactOut))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgDeposit)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Msg/Deposit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Deposit(ctx, req.(*MsgDeposit))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgWithdraw)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Msg/Withdraw",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Withdraw(ctx, req.(*MsgWithdraw))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Pause_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgPause)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Pause(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Msg/Pause",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Pause(ctx, req.(*MsgPause))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Unpause_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUnpause)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Unpause(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Msg/Unpause",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Unpause(ctx, req.(*MsgUnpause))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_GrantRole_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgGrantRole)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).GrantRole(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Msg/GrantRole",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).GrantRole(ctx, req.(*MsgGrantRole))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_RevokeRole_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgRevokeRole)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).RevokeRole(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Msg/RevokeRole",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).RevokeRole(ctx, req.(*MsgRevokeRole))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "tidepool.amm.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SwapExactIn",
			Handler:    _Msg_SwapExactIn_Handler,
		},
		{
			MethodName: "SwapExactOut",
			Handler:    _Msg_SwapExactOut_Handler,
		},
		{
			MethodName: "Deposit",
			Handler:    _Msg_Deposit_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _Msg_Withdraw_Handler,
		},
		{
			MethodName: "Pause",
			Handler:    _Msg_Pause_Handler,
		},
		{
			MethodName: "Unpause",
			Handler:    _Msg_Unpause_Handler,
		},
		{
			MethodName: "GrantRole",
			Handler:    _Msg_GrantRole_Handler,
		},
		{
			MethodName: "RevokeRole",
			Handler:    _Msg_RevokeRole_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tidepool/amm/v1/tx.proto",
}
