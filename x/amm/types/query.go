package types

import (
	"context"

	"cosmossdk.io/math"
	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryServer is the server API for the amm Query service.
type QueryServer interface {
	// Pool returns the pool's assets, reserves and share supply.
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	// Position returns one provider's liquidity shares.
	Position(context.Context, *QueryPositionRequest) (*QueryPositionResponse, error)
	// QuoteOut quotes the output for a fixed input against live reserves.
	QuoteOut(context.Context, *QueryQuoteOutRequest) (*QueryQuoteOutResponse, error)
	// QuoteIn quotes the required input for a fixed output against live reserves.
	QuoteIn(context.Context, *QueryQuoteInRequest) (*QueryQuoteInResponse, error)
	// Params returns the pool configuration.
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	// PauseState returns whether the module is paused.
	PauseState(context.Context, *QueryPauseStateRequest) (*QueryPauseStateResponse, error)
	// SwapCounter returns an actor's incentive counter.
	SwapCounter(context.Context, *QuerySwapCounterRequest) (*QuerySwapCounterResponse, error)
	// SpotPrice returns the fee-less reserve-ratio price of the input asset.
	SpotPrice(context.Context, *QuerySpotPriceRequest) (*QuerySpotPriceResponse, error)
}

// QueryPoolRequest is the request for the Pool query.
type QueryPoolRequest struct{}

func (m *QueryPoolRequest) Reset()         { *m = QueryPoolRequest{} }
func (m *QueryPoolRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryPoolRequest) ProtoMessage()    {}

// QueryPoolResponse is the response for the Pool query.
type QueryPoolResponse struct {
	Pool Pool `protobuf:"bytes,1,opt,name=pool,proto3" json:"pool"`
}

func (m *QueryPoolResponse) Reset()         { *m = QueryPoolResponse{} }
func (m *QueryPoolResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryPoolResponse) ProtoMessage()    {}

// QueryPositionRequest is the request for the Position query.
type QueryPositionRequest struct {
	Owner string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
}

func (m *QueryPositionRequest) Reset()         { *m = QueryPositionRequest{} }
func (m *QueryPositionRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryPositionRequest) ProtoMessage()    {}

// QueryPositionResponse is the response for the Position query.
type QueryPositionResponse struct {
	Shares math.Int `protobuf:"bytes,1,opt,name=shares,proto3,customtype=cosmossdk.io/math.Int" json:"shares"`
}

func (m *QueryPositionResponse) Reset()         { *m = QueryPositionResponse{} }
func (m *QueryPositionResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryPositionResponse) ProtoMessage()    {}

// QueryQuoteOutRequest is the request for the QuoteOut query.
type QueryQuoteOutRequest struct {
	AssetIn  string   `protobuf:"bytes,1,opt,name=asset_in,json=assetIn,proto3" json:"asset_in"`
	AmountIn math.Int `protobuf:"bytes,2,opt,name=amount_in,json=amountIn,proto3,customtype=cosmossdk.io/math.Int" json:"amount_in"`
	AssetOut string   `protobuf:"bytes,3,opt,name=asset_out,json=assetOut,proto3" json:"asset_out"`
}

func (m *QueryQuoteOutRequest) Reset()         { *m = QueryQuoteOutRequest{} }
func (m *QueryQuoteOutRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryQuoteOutRequest) ProtoMessage()    {}

// QueryQuoteOutResponse is the response for the QuoteOut query.
type QueryQuoteOutResponse struct {
	AmountOut math.Int `protobuf:"bytes,1,opt,name=amount_out,json=amountOut,proto3,customtype=cosmossdk.io/math.Int" json:"amount_out"`
}

func (m *QueryQuoteOutResponse) Reset()         { *m = QueryQuoteOutResponse{} }
func (m *QueryQuoteOutResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryQuoteOutResponse) ProtoMessage()    {}

// QueryQuoteInRequest is the request for the QuoteIn query.
type QueryQuoteInRequest struct {
	AssetIn   string   `protobuf:"bytes,1,opt,name=asset_in,json=assetIn,proto3" json:"asset_in"`
	AmountOut math.Int `protobuf:"bytes,2,opt,name=amount_out,json=amountOut,proto3,customtype=cosmossdk.io/math.Int" json:"amount_out"`
	AssetOut  string   `protobuf:"bytes,3,opt,name=asset_out,json=assetOut,proto3" json:"asset_out"`
}

func (m *QueryQuoteInRequest) Reset()         { *m = QueryQuoteInRequest{} }
func (m *QueryQuoteInRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryQuoteInRequest) ProtoMessage()    {}

// QueryQuoteInResponse is the response for the QuoteIn query.
type QueryQuoteInResponse struct {
	AmountIn math.Int `protobuf:"bytes,1,opt,name=amount_in,json=amountIn,proto3,customtype=cosmossdk.io/math.Int" json:"amount_in"`
}

func (m *QueryQuoteInResponse) Reset()         { *m = QueryQuoteInResponse{} }
func (m *QueryQuoteInResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryQuoteInResponse) ProtoMessage()    {}

// QueryParamsRequest is the request for the Params query.
type QueryParamsRequest struct{}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryParamsRequest) ProtoMessage()    {}

// QueryParamsResponse is the response for the Params query.
type QueryParamsResponse struct {
	Params Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params"`
}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryParamsResponse) ProtoMessage()    {}

// QueryPauseStateRequest is the request for the PauseState query.
type QueryPauseStateRequest struct{}

func (m *QueryPauseStateRequest) Reset()         { *m = QueryPauseStateRequest{} }
func (m *QueryPauseStateRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryPauseStateRequest) ProtoMessage()    {}

// QueryPauseStateResponse is the response for the PauseState query.
type QueryPauseStateResponse struct {
	Paused bool `protobuf:"varint,1,opt,name=paused,proto3" json:"paused"`
}

func (m *QueryPauseStateResponse) Reset()         { *m = QueryPauseStateResponse{} }
func (m *QueryPauseStateResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QueryPauseStateResponse) ProtoMessage()    {}

// QuerySwapCounterRequest is the request for the SwapCounter query.
type QuerySwapCounterRequest struct {
	Actor string `protobuf:"bytes,1,opt,name=actor,proto3" json:"actor"`
}

func (m *QuerySwapCounterRequest) Reset()         { *m = QuerySwapCounterRequest{} }
func (m *QuerySwapCounterRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QuerySwapCounterRequest) ProtoMessage()    {}

// QuerySwapCounterResponse is the response for the SwapCounter query.
type QuerySwapCounterResponse struct {
	Count        uint64 `protobuf:"varint,1,opt,name=count,proto3" json:"count"`
	SwapCountMax uint64 `protobuf:"varint,2,opt,name=swap_count_max,json=swapCountMax,proto3" json:"swap_count_max"`
}

func (m *QuerySwapCounterResponse) Reset()         { *m = QuerySwapCounterResponse{} }
func (m *QuerySwapCounterResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QuerySwapCounterResponse) ProtoMessage()    {}

// QuerySpotPriceRequest is the request for the SpotPrice query.
type QuerySpotPriceRequest struct {
	AssetIn string `protobuf:"bytes,1,opt,name=asset_in,json=assetIn,proto3" json:"asset_in"`
}

func (m *QuerySpotPriceRequest) Reset()         { *m = QuerySpotPriceRequest{} }
func (m *QuerySpotPriceRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QuerySpotPriceRequest) ProtoMessage()    {}

// QuerySpotPriceResponse is the response for the SpotPrice query.
type QuerySpotPriceResponse struct {
	Price math.LegacyDec `protobuf:"bytes,1,opt,name=price,proto3,customtype=cosmossdk.io/math.LegacyDec" json:"price"`
}

func (m *QuerySpotPriceResponse) Reset()         { *m = QuerySpotPriceResponse{} }
func (m *QuerySpotPriceResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }
func (*QuerySpotPriceResponse) ProtoMessage()    {}

// RegisterQueryServer registers the Query service implementation with a gRPC
// service registrar.
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func _Query_Pool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryPoolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Pool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Query/Pool",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Pool(ctx, req.(*QueryPoolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Position_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryPositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Position(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Query/Position",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Position(ctx, req.(*QueryPositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_QuoteOut_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryQuoteOutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).QuoteOut(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Query/QuoteOut",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).QuoteOut(ctx, req.(*QueryQuoteOutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_QuoteIn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryQuoteInRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).QuoteIn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Query/QuoteIn",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).QuoteIn(ctx, req.(*QueryQuoteInRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Params_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Params(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Query/Params",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Params(ctx, req.(*QueryParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_PauseState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryPauseStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).PauseState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Query/PauseState",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).PauseState(ctx, req.(*QueryPauseStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_SwapCounter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySwapCounterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).SwapCounter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Query/SwapCounter",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).SwapCounter(ctx, req.(*QuerySwapCounterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_SpotPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySpotPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).SpotPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/tidepool.amm.v1.Query/SpotPrice",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).SpotPrice(ctx, req.(*QuerySpotPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "tidepool.amm.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Pool",
			Handler:    _Query_Pool_Handler,
		},
		{
			MethodName: "Position",
			Handler:    _Query_Position_Handler,
		},
		{
			MethodName: "QuoteOut",
			Handler:    _Query_QuoteOut_Handler,
		},
		{
			MethodName: "QuoteIn",
			Handler:    _Query_QuoteIn_Handler,
		},
		{
			MethodName: "Params",
			Handler:    _Query_Params_Handler,
		},
		{
			MethodName: "PauseState",
			Handler:    _Query_PauseState_Handler,
		},
		{
			MethodName: "SwapCounter",
			Handler:    _Query_SwapCounter_Handler,
		},
		{
			MethodName: "SpotPrice",
			Handler:    _Query_SpotPrice_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tidepool/amm/v1/query.proto",
}
