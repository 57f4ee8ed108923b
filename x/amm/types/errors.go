package types

import (
	"cosmossdk.io/errors"
)

// x/amm module sentinel errors. Every failure is terminal for the operation
// that raised it; handlers never retry and never keep partial state.
var (
	ErrZeroAmount           = errors.Register(ModuleName, 2, "amount must be positive")
	ErrDeadlineExpired      = errors.Register(ModuleName, 3, "deadline expired")
	ErrInvalidAssetPair     = errors.Register(ModuleName, 4, "invalid asset pair")
	ErrSlippageExceeded     = errors.Register(ModuleName, 5, "slippage tolerance exceeded")
	ErrLiquidityCapExceeded = errors.Register(ModuleName, 6, "liquidity cap exceeded")
	ErrRatioMismatch        = errors.Register(ModuleName, 7, "deposit ratio mismatch")
	ErrInsufficientShares   = errors.Register(ModuleName, 8, "insufficient shares")
	ErrArithmetic           = errors.Register(ModuleName, 9, "arithmetic error")
	ErrPaused               = errors.Register(ModuleName, 10, "module is paused")
	ErrUnauthorized         = errors.Register(ModuleName, 11, "unauthorized")
	ErrTransferFailed       = errors.Register(ModuleName, 12, "asset transfer failed")
	ErrInvariantViolation   = errors.Register(ModuleName, 13, "pool invariant violation")
	ErrInvalidAddress       = errors.Register(ModuleName, 14, "invalid address")
	ErrPoolNotFound         = errors.Register(ModuleName, 15, "pool not found")
	ErrInvalidRole          = errors.Register(ModuleName, 16, "invalid role")
)
