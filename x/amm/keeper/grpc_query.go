package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns the Query service implementation backed by the
// keeper. Queries stay available while the module is paused.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (k queryServer) Pool(ctx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("empty request")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

func (k queryServer) Position(ctx context.Context, req *types.QueryPositionRequest) (*types.QueryPositionResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("empty request")
	}
	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("owner: %s", err)
	}

	return &types.QueryPositionResponse{Shares: k.GetPosition(ctx, owner)}, nil
}

func (k queryServer) QuoteOut(ctx context.Context, req *types.QueryQuoteOutRequest) (*types.QueryQuoteOutResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("empty request")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return nil, err
	}
	reserveIn, reserveOut, err := pool.ReservesFor(req.AssetIn, req.AssetOut)
	if err != nil {
		return nil, err
	}
	params := k.GetParams(ctx)

	amountOut, err := types.QuoteOutputForInput(req.AmountIn, reserveIn, reserveOut, params.FeeNumerator, params.FeeDenominator)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteOutResponse{AmountOut: amountOut}, nil
}

func (k queryServer) QuoteIn(ctx context.Context, req *types.QueryQuoteInRequest) (*types.QueryQuoteInResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("empty request")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return nil, err
	}
	reserveIn, reserveOut, err := pool.ReservesFor(req.AssetIn, req.AssetOut)
	if err != nil {
		return nil, err
	}
	params := k.GetParams(ctx)

	amountIn, err := types.QuoteInputForOutput(req.AmountOut, reserveIn, reserveOut, params.FeeNumerator, params.FeeDenominator)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteInResponse{AmountIn: amountIn}, nil
}

func (k queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("empty request")
	}

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k queryServer) PauseState(ctx context.Context, req *types.QueryPauseStateRequest) (*types.QueryPauseStateResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("empty request")
	}

	return &types.QueryPauseStateResponse{Paused: k.IsPaused(ctx)}, nil
}

func (k queryServer) SwapCounter(ctx context.Context, req *types.QuerySwapCounterRequest) (*types.QuerySwapCounterResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("empty request")
	}
	actor, err := sdk.AccAddressFromBech32(req.Actor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("actor: %s", err)
	}

	return &types.QuerySwapCounterResponse{
		Count:        k.GetSwapCounter(ctx, actor),
		SwapCountMax: k.GetParams(ctx).SwapCountMax,
	}, nil
}

func (k queryServer) SpotPrice(ctx context.Context, req *types.QuerySpotPriceRequest) (*types.QuerySpotPriceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("empty request")
	}

	price, err := k.Keeper.SpotPrice(ctx, req.AssetIn)
	if err != nil {
		return nil, err
	}
	return &types.QuerySpotPriceResponse{Price: price}, nil
}
