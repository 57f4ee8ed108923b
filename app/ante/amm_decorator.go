package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	ammkeeper "github.com/tidepool-zone/tidepool/x/amm/keeper"
	ammtypes "github.com/tidepool-zone/tidepool/x/amm/types"
)

// Validation gas charged per pool message, and a cap on messages per
// transaction to bound ante work.
const (
	MaxMessagesPerTx = 10

	SwapCheckGas      uint64 = 5_000
	LiquidityCheckGas uint64 = 5_000
	AdminCheckGas     uint64 = 2_500
)

// AmmDecorator rejects pool transactions that are certain to fail before
// they reach the message server: operations against a paused pool, expired
// deadlines and swaps naming assets outside the pool pair. The message
// server repeats these checks; this decorator keeps doomed transactions
// out of the mempool.
type AmmDecorator struct {
	keeper ammkeeper.Keeper
}

// NewAmmDecorator creates a new AmmDecorator
func NewAmmDecorator(keeper ammkeeper.Keeper) AmmDecorator {
	return AmmDecorator{keeper: keeper}
}

// AnteHandle implements the AnteDecorator interface
func (ad AmmDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	msgs := tx.GetMsgs()
	if len(msgs) > MaxMessagesPerTx {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction contains too many messages: %d > %d", len(msgs), MaxMessagesPerTx,
		)
	}

	for _, msg := range msgs {
		switch msg := msg.(type) {
		case *ammtypes.MsgSwapExactIn:
			ctx.GasMeter().ConsumeGas(SwapCheckGas, "swap validation")
			if err := ad.validateSwap(ctx, msg.AssetIn, msg.AssetOut, msg.Deadline); err != nil {
				return ctx, err
			}
		case *ammtypes.MsgSwapExactOut:
			ctx.GasMeter().ConsumeGas(SwapCheckGas, "swap validation")
			if err := ad.validateSwap(ctx, msg.AssetIn, msg.AssetOut, msg.Deadline); err != nil {
				return ctx, err
			}
		case *ammtypes.MsgDeposit:
			ctx.GasMeter().ConsumeGas(LiquidityCheckGas, "liquidity validation")
			if err := ad.validateLiquidity(ctx, msg.Deadline); err != nil {
				return ctx, err
			}
		case *ammtypes.MsgWithdraw:
			ctx.GasMeter().ConsumeGas(LiquidityCheckGas, "liquidity validation")
			if err := ad.validateLiquidity(ctx, msg.Deadline); err != nil {
				return ctx, err
			}
		case *ammtypes.MsgPause, *ammtypes.MsgUnpause, *ammtypes.MsgGrantRole, *ammtypes.MsgRevokeRole:
			// Pause and role management stays available while paused.
			ctx.GasMeter().ConsumeGas(AdminCheckGas, "admin validation")
		}
	}

	return next(ctx, tx, simulate)
}

// validateSwap rejects swaps that the pool state already rules out.
func (ad AmmDecorator) validateSwap(ctx sdk.Context, assetIn, assetOut string, deadline int64) error {
	if err := ad.keeper.RequireUnpaused(ctx); err != nil {
		return err
	}

	if now := ctx.BlockTime().Unix(); now > deadline {
		return ammtypes.ErrDeadlineExpired.Wrapf("deadline %d passed at block time %d", deadline, now)
	}

	pool, err := ad.keeper.GetPool(ctx)
	if err != nil {
		return err
	}
	if _, _, err := pool.ReservesFor(assetIn, assetOut); err != nil {
		return err
	}

	return nil
}

// validateLiquidity rejects liquidity changes against a paused pool or past
// their deadline.
func (ad AmmDecorator) validateLiquidity(ctx sdk.Context, deadline int64) error {
	if err := ad.keeper.RequireUnpaused(ctx); err != nil {
		return err
	}

	if now := ctx.BlockTime().Unix(); now > deadline {
		return ammtypes.ErrDeadlineExpired.Wrapf("deadline %d passed at block time %d", deadline, now)
	}

	return nil
}
