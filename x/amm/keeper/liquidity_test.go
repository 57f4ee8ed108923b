package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/tidepool-zone/tidepool/testutil/keeper"
	"github.com/tidepool-zone/tidepool/x/amm/types"
)

func TestDepositSeedsEmptyPool(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)

	provider := keepertest.TestAddress(1)
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("utide", math.NewInt(1000)),
		sdk.NewCoin("uusdc", math.NewInt(1000)),
	))

	shares, err := k.Deposit(ctx, provider, math.NewInt(1000), math.NewInt(1000), math.ZeroInt(), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), shares)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), pool.ReserveA)
	require.Equal(t, math.NewInt(1000), pool.ReserveB)
	require.Equal(t, math.NewInt(1000), pool.TotalShares)
	require.Equal(t, math.NewInt(1000), k.GetPosition(ctx, provider))

	// The whole deposit moved into the module escrow in one transfer.
	require.Len(t, bank.Calls, 1)
	require.Equal(t, "to_module", bank.Calls[0].Method)
	require.Equal(t, math.NewInt(1000), bank.GetBalance(ctx, k.GetModuleAddress(), "utide").Amount)
	require.Equal(t, math.NewInt(1000), bank.GetBalance(ctx, k.GetModuleAddress(), "uusdc").Amount)
}

func TestDepositSeedGeometricMean(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)

	provider := keepertest.TestAddress(1)
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("utide", math.NewInt(4)),
		sdk.NewCoin("uusdc", math.NewInt(9)),
	))

	// An uneven seed mints floor(sqrt(4*9)) = 6 shares; the first deposit
	// sets the ratio rather than matching one.
	shares, err := k.Deposit(ctx, provider, math.NewInt(4), math.NewInt(9), math.ZeroInt(), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(6), shares)
}

func TestDepositProportional(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	first := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, first, math.NewInt(1000), math.NewInt(1000))

	second := keepertest.TestAddress(2)
	bank.FundAccount(second, sdk.NewCoins(
		sdk.NewCoin("utide", math.NewInt(500)),
		sdk.NewCoin("uusdc", math.NewInt(500)),
	))

	shares, err := k.Deposit(ctx, second, math.NewInt(500), math.NewInt(500), math.ZeroInt(), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), shares)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1500), pool.ReserveA)
	require.Equal(t, math.NewInt(1500), pool.ReserveB)
	require.Equal(t, math.NewInt(1500), pool.TotalShares)

	// Positions stay separate per provider.
	require.Equal(t, math.NewInt(1000), k.GetPosition(ctx, first))
	require.Equal(t, math.NewInt(500), k.GetPosition(ctx, second))
	require.Equal(t, math.NewInt(1500), k.TotalPositionShares(ctx))
}

func TestDepositRatioTolerance(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))

	second := keepertest.TestAddress(2)
	bank.FundAccount(second, sdk.NewCoins(
		sdk.NewCoin("utide", math.NewInt(10_000)),
		sdk.NewCoin("uusdc", math.NewInt(10_000)),
	))
	deadline := keepertest.FutureDeadline(ctx)

	// A 2% skew exceeds the default 100 bps tolerance.
	_, err := k.Deposit(ctx, second, math.NewInt(100), math.NewInt(102), math.ZeroInt(), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrRatioMismatch)
	require.Empty(t, bank.Calls)

	// A 1% skew is inside it; shares mint by the smaller side.
	shares, err := k.Deposit(ctx, second, math.NewInt(100), math.NewInt(101), math.ZeroInt(), math.ZeroInt(), deadline)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), shares)
}

func TestDepositCapExceeded(t *testing.T) {
	genState := types.DefaultGenesis()
	genState.Params.MaxTotalShares = math.NewInt(1500)
	k, bank, ctx := keepertest.AmmKeeperWithGenesis(t, genState)

	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))

	second := keepertest.TestAddress(2)
	bank.FundAccount(second, sdk.NewCoins(
		sdk.NewCoin("utide", math.NewInt(600)),
		sdk.NewCoin("uusdc", math.NewInt(600)),
	))

	// 1000 + 600 shares would exceed the 1500 cap. The deposit fails whole:
	// no reserves move, no shares mint, no transfer is attempted.
	_, err := k.Deposit(ctx, second, math.NewInt(600), math.NewInt(600), math.ZeroInt(), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.ErrorIs(t, err, types.ErrLiquidityCapExceeded)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), pool.ReserveA)
	require.Equal(t, math.NewInt(1000), pool.ReserveB)
	require.Equal(t, math.NewInt(1000), pool.TotalShares)
	require.True(t, k.GetPosition(ctx, second).IsZero())
	require.Empty(t, bank.Calls)
	require.Equal(t, math.NewInt(600), bank.GetBalance(ctx, second, "utide").Amount)

	// Filling exactly to the cap still works.
	shares, err := k.Deposit(ctx, second, math.NewInt(500), math.NewInt(500), math.ZeroInt(), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), shares)
}

func TestDepositCallerShareBound(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))

	second := keepertest.TestAddress(2)
	bank.FundAccount(second, sdk.NewCoins(
		sdk.NewCoin("utide", math.NewInt(1000)),
		sdk.NewCoin("uusdc", math.NewInt(1000)),
	))
	deadline := keepertest.FutureDeadline(ctx)

	// The caller's own bound binds below the configured cap.
	_, err := k.Deposit(ctx, second, math.NewInt(300), math.NewInt(300), math.ZeroInt(), math.NewInt(1200), deadline)
	require.ErrorIs(t, err, types.ErrLiquidityCapExceeded)

	shares, err := k.Deposit(ctx, second, math.NewInt(300), math.NewInt(300), math.ZeroInt(), math.NewInt(1300), deadline)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(300), shares)
}

func TestDepositMinSharesSlippage(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))

	second := keepertest.TestAddress(2)
	bank.FundAccount(second, sdk.NewCoins(
		sdk.NewCoin("utide", math.NewInt(100)),
		sdk.NewCoin("uusdc", math.NewInt(100)),
	))

	_, err := k.Deposit(ctx, second, math.NewInt(100), math.NewInt(100), math.NewInt(101), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	shares, err := k.Deposit(ctx, second, math.NewInt(100), math.NewInt(100), math.NewInt(100), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), shares)
}

func TestDepositValidation(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))
	deadline := keepertest.FutureDeadline(ctx)

	_, err := k.Deposit(ctx, provider, math.ZeroInt(), math.NewInt(100), math.ZeroInt(), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = k.Deposit(ctx, provider, math.NewInt(100), math.ZeroInt(), math.ZeroInt(), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = k.Deposit(ctx, provider, math.NewInt(100), math.NewInt(100), math.ZeroInt(), math.ZeroInt(), ctx.BlockTime().Unix()-1)
	require.ErrorIs(t, err, types.ErrDeadlineExpired)

	authority, err := sdk.AccAddressFromBech32(k.GetAuthority())
	require.NoError(t, err)
	require.NoError(t, k.Pause(ctx, authority))
	_, err = k.Deposit(ctx, provider, math.NewInt(100), math.NewInt(100), math.ZeroInt(), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrPaused)
}

func TestWithdrawHalf(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))

	amountA, amountB, err := k.Withdraw(ctx, provider, math.NewInt(500), math.ZeroInt(), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), amountA)
	require.Equal(t, math.NewInt(500), amountB)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), pool.ReserveA)
	require.Equal(t, math.NewInt(500), pool.ReserveB)
	require.Equal(t, math.NewInt(500), pool.TotalShares)
	require.Equal(t, math.NewInt(500), k.GetPosition(ctx, provider))

	// The payout left escrow in a single two-coin transfer.
	require.Len(t, bank.Calls, 1)
	require.Equal(t, "to_account", bank.Calls[0].Method)
	require.Equal(t, math.NewInt(500), bank.GetBalance(ctx, provider, "utide").Amount)
	require.Equal(t, math.NewInt(500), bank.GetBalance(ctx, provider, "uusdc").Amount)
}

func TestWithdrawRoundsDown(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)

	// 1000/3000 seeds floor(sqrt(3e6)) = 1732 shares.
	shares := keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(3000))
	require.Equal(t, math.NewInt(1732), shares)

	amountA, amountB, err := k.Withdraw(ctx, provider, math.NewInt(577), math.ZeroInt(), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(333), amountA) // floor(1000*577/1732)
	require.Equal(t, math.NewInt(999), amountB) // floor(3000*577/1732)

	// Rounding dust stays in the pool.
	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(667), pool.ReserveA)
	require.Equal(t, math.NewInt(2001), pool.ReserveB)
}

func TestWithdrawEverything(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))

	amountA, amountB, err := k.Withdraw(ctx, provider, math.NewInt(1000), math.ZeroInt(), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), amountA)
	require.Equal(t, math.NewInt(1000), amountB)

	// The pool is empty again and the position record is gone.
	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.True(t, pool.IsEmpty())
	require.True(t, pool.ReserveA.IsZero())
	require.True(t, pool.ReserveB.IsZero())
	require.True(t, k.GetPosition(ctx, provider).IsZero())
	require.True(t, k.TotalPositionShares(ctx).IsZero())

	// A fresh deposit re-seeds it.
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("utide", math.NewInt(200)),
		sdk.NewCoin("uusdc", math.NewInt(200)),
	))
	shares, err := k.Deposit(ctx, provider, math.NewInt(200), math.NewInt(200), math.ZeroInt(), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(200), shares)
}

func TestWithdrawMinAmountSlippage(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))
	deadline := keepertest.FutureDeadline(ctx)

	_, _, err := k.Withdraw(ctx, provider, math.NewInt(500), math.NewInt(501), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	_, _, err = k.Withdraw(ctx, provider, math.NewInt(500), math.ZeroInt(), math.NewInt(501), deadline)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// State untouched by the failed attempts.
	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), pool.TotalShares)
	require.Empty(t, bank.Calls)
}

func TestWithdrawInsufficientShares(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))
	deadline := keepertest.FutureDeadline(ctx)

	_, _, err := k.Withdraw(ctx, provider, math.NewInt(1001), math.ZeroInt(), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	// An address with no position cannot withdraw at all.
	stranger := keepertest.TestAddress(7)
	_, _, err = k.Withdraw(ctx, stranger, math.NewInt(1), math.ZeroInt(), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestWithdrawValidation(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)
	keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(1000), math.NewInt(1000))
	deadline := keepertest.FutureDeadline(ctx)

	_, _, err := k.Withdraw(ctx, provider, math.ZeroInt(), math.ZeroInt(), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, _, err = k.Withdraw(ctx, provider, math.NewInt(100), math.ZeroInt(), math.ZeroInt(), ctx.BlockTime().Unix()-1)
	require.ErrorIs(t, err, types.ErrDeadlineExpired)

	authority, err := sdk.AccAddressFromBech32(k.GetAuthority())
	require.NoError(t, err)
	require.NoError(t, k.Pause(ctx, authority))
	_, _, err = k.Withdraw(ctx, provider, math.NewInt(100), math.ZeroInt(), math.ZeroInt(), deadline)
	require.ErrorIs(t, err, types.ErrPaused)
}

func TestWithdrawSingleSidedDust(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	provider := keepertest.TestAddress(1)

	// 2/8 seeds 4 shares; one share redeems floor(2/4)=0 utide and
	// floor(8/4)=2 uusdc. The zero coin is dropped from the payout.
	shares := keepertest.SeedPool(t, k, bank, ctx, provider, math.NewInt(2), math.NewInt(8))
	require.Equal(t, math.NewInt(4), shares)

	amountA, amountB, err := k.Withdraw(ctx, provider, math.NewInt(1), math.ZeroInt(), math.ZeroInt(), keepertest.FutureDeadline(ctx))
	require.NoError(t, err)
	require.True(t, amountA.IsZero())
	require.Equal(t, math.NewInt(2), amountB)

	require.Len(t, bank.Calls, 1)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(2))), bank.Calls[0].Coins)
}

func TestLiquiditySharesConservedAcrossProviders(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	deadline := keepertest.FutureDeadline(ctx)

	providers := []sdk.AccAddress{
		keepertest.TestAddress(1),
		keepertest.TestAddress(2),
		keepertest.TestAddress(3),
	}
	keepertest.SeedPool(t, k, bank, ctx, providers[0], math.NewInt(1000), math.NewInt(1000))

	for _, p := range providers[1:] {
		bank.FundAccount(p, sdk.NewCoins(
			sdk.NewCoin("utide", math.NewInt(250)),
			sdk.NewCoin("uusdc", math.NewInt(250)),
		))
		_, err := k.Deposit(ctx, p, math.NewInt(250), math.NewInt(250), math.ZeroInt(), math.ZeroInt(), deadline)
		require.NoError(t, err)
	}

	_, _, err := k.Withdraw(ctx, providers[1], math.NewInt(100), math.ZeroInt(), math.ZeroInt(), deadline)
	require.NoError(t, err)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, pool.TotalShares, k.TotalPositionShares(ctx))
	require.Equal(t, math.NewInt(1400), pool.TotalShares)
}
