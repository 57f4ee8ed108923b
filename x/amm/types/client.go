package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for the amm Query service.
type QueryClient interface {
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	Position(ctx context.Context, in *QueryPositionRequest, opts ...grpc.CallOption) (*QueryPositionResponse, error)
	QuoteOut(ctx context.Context, in *QueryQuoteOutRequest, opts ...grpc.CallOption) (*QueryQuoteOutResponse, error)
	QuoteIn(ctx context.Context, in *QueryQuoteInRequest, opts ...grpc.CallOption) (*QueryQuoteInResponse, error)
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	PauseState(ctx context.Context, in *QueryPauseStateRequest, opts ...grpc.CallOption) (*QueryPauseStateResponse, error)
	SwapCounter(ctx context.Context, in *QuerySwapCounterRequest, opts ...grpc.CallOption) (*QuerySwapCounterResponse, error)
	SpotPrice(ctx context.Context, in *QuerySpotPriceRequest, opts ...grpc.CallOption) (*QuerySpotPriceResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

// NewQueryClient creates a Query service client over a client connection.
func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	err := c.cc.Invoke(ctx, "/tidepool.amm.v1.Query/Pool", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Position(ctx context.Context, in *QueryPositionRequest, opts ...grpc.CallOption) (*QueryPositionResponse, error) {
	out := new(QueryPositionResponse)
	err := c.cc.Invoke(ctx, "/tidepool.amm.v1.Query/Position", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) QuoteOut(ctx context.Context, in *QueryQuoteOutRequest, opts ...grpc.CallOption) (*QueryQuoteOutResponse, error) {
	out := new(QueryQuoteOutResponse)
	err := c.cc.Invoke(ctx, "/tidepool.amm.v1.Query/QuoteOut", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) QuoteIn(ctx context.Context, in *QueryQuoteInRequest, opts ...grpc.CallOption) (*QueryQuoteInResponse, error) {
	out := new(QueryQuoteInResponse)
	err := c.cc.Invoke(ctx, "/tidepool.amm.v1.Query/QuoteIn", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/tidepool.amm.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) PauseState(ctx context.Context, in *QueryPauseStateRequest, opts ...grpc.CallOption) (*QueryPauseStateResponse, error) {
	out := new(QueryPauseStateResponse)
	err := c.cc.Invoke(ctx, "/tidepool.amm.v1.Query/PauseState", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SwapCounter(ctx context.Context, in *QuerySwapCounterRequest, opts ...grpc.CallOption) (*QuerySwapCounterResponse, error) {
	out := new(QuerySwapCounterResponse)
	err := c.cc.Invoke(ctx, "/tidepool.amm.v1.Query/SwapCounter", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SpotPrice(ctx context.Context, in *QuerySpotPriceRequest, opts ...grpc.CallOption) (*QuerySpotPriceResponse, error) {
	out := new(QuerySpotPriceResponse)
	err := c.cc.Invoke(ctx, "/tidepool.amm.v1.Query/SpotPrice", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
