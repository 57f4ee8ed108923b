package cli

// Flag constants for amm CLI commands
const (
	// Shared transaction flags
	FlagDeadline = "deadline"

	// Liquidity flags
	FlagMinShares      = "min-shares"
	FlagMaxTotalShares = "max-total-shares"
	FlagMinAmountA     = "min-amount-a"
	FlagMinAmountB     = "min-amount-b"
)
