package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns the Msg service implementation backed by the
// keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) SwapExactIn(ctx context.Context, msg *types.MsgSwapExactIn) (*types.MsgSwapExactInResponse, error) {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("trader: %s", err)
	}

	amountOut, rewardPaid, err := k.SwapExactInput(ctx, trader, msg.AssetIn, msg.AmountIn, msg.AssetOut, msg.MinAmountOut, msg.Deadline)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapExactInResponse{
		AmountOut:  amountOut,
		RewardPaid: rewardPaid,
	}, nil
}

func (k msgServer) SwapExactOut(ctx context.Context, msg *types.MsgSwapExactOut) (*types.MsgSwapExactOutResponse, error) {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("trader: %s", err)
	}

	amountIn, rewardPaid, err := k.SwapExactOutput(ctx, trader, msg.AssetIn, msg.MaxAmountIn, msg.AssetOut, msg.AmountOut, msg.Deadline)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapExactOutResponse{
		AmountIn:   amountIn,
		RewardPaid: rewardPaid,
	}, nil
}

func (k msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %s", err)
	}

	shares, err := k.Keeper.Deposit(ctx, provider, msg.AmountA, msg.AmountB, msg.MinSharesOut, msg.MaxTotalSharesAfter, msg.Deadline)
	if err != nil {
		return nil, err
	}

	return &types.MsgDepositResponse{SharesMinted: shares}, nil
}

func (k msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %s", err)
	}

	amountA, amountB, err := k.Keeper.Withdraw(ctx, provider, msg.SharesIn, msg.MinAmountAOut, msg.MinAmountBOut, msg.Deadline)
	if err != nil {
		return nil, err
	}

	return &types.MsgWithdrawResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

func (k msgServer) Pause(ctx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("sender: %s", err)
	}

	if err := k.Keeper.Pause(ctx, sender); err != nil {
		return nil, err
	}
	return &types.MsgPauseResponse{}, nil
}

func (k msgServer) Unpause(ctx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("sender: %s", err)
	}

	if err := k.Keeper.Unpause(ctx, sender); err != nil {
		return nil, err
	}
	return &types.MsgUnpauseResponse{}, nil
}

func (k msgServer) GrantRole(ctx context.Context, msg *types.MsgGrantRole) (*types.MsgGrantRoleResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("sender: %s", err)
	}
	grantee, err := sdk.AccAddressFromBech32(msg.Grantee)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("grantee: %s", err)
	}

	if err := k.Keeper.GrantRole(ctx, sender, grantee, msg.Role); err != nil {
		return nil, err
	}
	return &types.MsgGrantRoleResponse{}, nil
}

func (k msgServer) RevokeRole(ctx context.Context, msg *types.MsgRevokeRole) (*types.MsgRevokeRoleResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("sender: %s", err)
	}
	grantee, err := sdk.AccAddressFromBech32(msg.Grantee)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("grantee: %s", err)
	}

	if err := k.Keeper.RevokeRole(ctx, sender, grantee, msg.Role); err != nil {
		return nil, err
	}
	return &types.MsgRevokeRoleResponse{}, nil
}
