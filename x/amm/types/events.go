package types

// Event types emitted by the amm module. Events carry final committed
// amounts and are emitted only after the state write and transfers succeed.
const (
	EventTypeSwap             = "amm_swap"
	EventTypeLiquidityAdded   = "amm_liquidity_added"
	EventTypeLiquidityRemoved = "amm_liquidity_removed"
	EventTypePaused           = "amm_paused"
	EventTypeUnpaused         = "amm_unpaused"
	EventTypeRewardPaid       = "amm_reward_paid"
	EventTypeRoleGranted      = "amm_role_granted"
	EventTypeRoleRevoked      = "amm_role_revoked"
)

// Event attribute keys
const (
	AttributeKeyTrader       = "trader"
	AttributeKeyProvider     = "provider"
	AttributeKeyActor        = "actor"
	AttributeKeyAssetIn      = "asset_in"
	AttributeKeyAmountIn     = "amount_in"
	AttributeKeyAssetOut     = "asset_out"
	AttributeKeyAmountOut    = "amount_out"
	AttributeKeyAmountA      = "amount_a"
	AttributeKeyAmountB      = "amount_b"
	AttributeKeySharesMinted = "shares_minted"
	AttributeKeySharesBurned = "shares_burned"
	AttributeKeyTotalShares  = "total_shares"
	AttributeKeyRewardPaid   = "reward_paid"
	AttributeKeyRewardDenom  = "reward_denom"
	AttributeKeyRewardAmount = "reward_amount"
	AttributeKeyGrantee      = "grantee"
	AttributeKeyGranter      = "granter"
	AttributeKeyRole         = "role"
)
