package types_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tidepool-zone/tidepool/x/amm/types"
)

func bigPow2(bits uint) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), bits))
}

func TestQuoteOutputForInput(t *testing.T) {
	// 1000/1000 reserves with a 0.3% fee: 100 in buys 90 out.
	out, err := types.QuoteOutputForInput(math.NewInt(100), math.NewInt(1000), math.NewInt(1000), 997, 1000)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90), out)

	// The floor keeps the constant product from decreasing.
	newK := math.NewInt(1000 + 100).Mul(math.NewInt(1000 - 90))
	require.True(t, newK.GTE(math.NewInt(1000*1000)))

	// Without a fee the plain constant-product formula applies.
	out, err = types.QuoteOutputForInput(math.NewInt(100), math.NewInt(1000), math.NewInt(1000), 1, 1)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90), out) // floor(100*1000/1100)

	// A tiny input against deep reserves rounds to zero output.
	out, err = types.QuoteOutputForInput(math.NewInt(1), math.NewInt(1_000_000), math.NewInt(1_000_000), 997, 1000)
	require.NoError(t, err)
	require.True(t, out.IsZero())
}

func TestQuoteOutputForInputRejectsBadArgs(t *testing.T) {
	one := math.NewInt(1)
	thousand := math.NewInt(1000)

	// Zero and negative amounts.
	_, err := types.QuoteOutputForInput(math.ZeroInt(), thousand, thousand, 997, 1000)
	require.ErrorIs(t, err, types.ErrZeroAmount)
	_, err = types.QuoteOutputForInput(math.NewInt(-5), thousand, thousand, 997, 1000)
	require.ErrorIs(t, err, types.ErrZeroAmount)

	// Empty reserves.
	_, err = types.QuoteOutputForInput(one, math.ZeroInt(), thousand, 997, 1000)
	require.ErrorIs(t, err, types.ErrArithmetic)
	_, err = types.QuoteOutputForInput(one, thousand, math.ZeroInt(), 997, 1000)
	require.ErrorIs(t, err, types.ErrArithmetic)

	// Degenerate fee ratios.
	_, err = types.QuoteOutputForInput(one, thousand, thousand, 0, 1000)
	require.ErrorIs(t, err, types.ErrArithmetic)
	_, err = types.QuoteOutputForInput(one, thousand, thousand, 997, 0)
	require.ErrorIs(t, err, types.ErrArithmetic)
	_, err = types.QuoteOutputForInput(one, thousand, thousand, 1001, 1000)
	require.ErrorIs(t, err, types.ErrArithmetic)
}

func TestQuoteOutputForInputOverflow(t *testing.T) {
	huge := bigPow2(200)

	// amountIn*feeNum*reserveOut blows past the working width.
	_, err := types.QuoteOutputForInput(huge, huge, huge, 997, 1000)
	require.ErrorIs(t, err, types.ErrArithmetic)
}

func TestQuoteInputForOutput(t *testing.T) {
	// 1000/1000 reserves with a 0.3% fee: buying 100 out costs 112 in.
	in, err := types.QuoteInputForOutput(math.NewInt(100), math.NewInt(1000), math.NewInt(1000), 997, 1000)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(112), in)

	// The quote is sufficient: feeding it back buys at least the target.
	out, err := types.QuoteOutputForInput(in, math.NewInt(1000), math.NewInt(1000), 997, 1000)
	require.NoError(t, err)
	require.True(t, out.GTE(math.NewInt(100)))

	// And minimal: one unit less no longer does.
	out, err = types.QuoteOutputForInput(in.SubRaw(1), math.NewInt(1000), math.NewInt(1000), 997, 1000)
	require.NoError(t, err)
	require.True(t, out.LT(math.NewInt(100)))
}

func TestQuoteInputForOutputDrainGuard(t *testing.T) {
	thousand := math.NewInt(1000)

	// Requesting the whole reserve or more is rejected outright.
	_, err := types.QuoteInputForOutput(thousand, thousand, thousand, 997, 1000)
	require.ErrorIs(t, err, types.ErrArithmetic)
	_, err = types.QuoteInputForOutput(math.NewInt(1001), thousand, thousand, 997, 1000)
	require.ErrorIs(t, err, types.ErrArithmetic)

	// One unit under the reserve still quotes.
	in, err := types.QuoteInputForOutput(math.NewInt(999), thousand, thousand, 997, 1000)
	require.NoError(t, err)
	require.True(t, in.IsPositive())
}

func TestQuoteRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reserveIn := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "reserveIn"))
		reserveOut := math.NewInt(rapid.Int64Range(2, 1_000_000_000_000).Draw(rt, "reserveOut"))
		amountOut := math.NewInt(rapid.Int64Range(1, reserveOut.Int64()-1).Draw(rt, "amountOut"))

		in, err := types.QuoteInputForOutput(amountOut, reserveIn, reserveOut, 997, 1000)
		if err != nil {
			rt.Skip("quote out of range")
		}
		if !in.IsPositive() {
			rt.Fatalf("required input %s is not positive", in)
		}

		// Sufficiency: the quoted input buys at least the requested output.
		out, err := types.QuoteOutputForInput(in, reserveIn, reserveOut, 997, 1000)
		if err != nil {
			rt.Fatalf("round trip failed: %v", err)
		}
		if out.LT(amountOut) {
			rt.Fatalf("input %s buys only %s, wanted %s", in, out, amountOut)
		}

		// Minimality: one unit less is no longer enough.
		if in.GT(math.OneInt()) {
			lessOut, err := types.QuoteOutputForInput(in.SubRaw(1), reserveIn, reserveOut, 997, 1000)
			if err == nil && lessOut.GTE(amountOut) {
				rt.Fatalf("input %s is not minimal, %s also buys %s", in, in.SubRaw(1), lessOut)
			}
		}
	})
}

func TestQuoteProductNonDecreasingProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reserveIn := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "reserveIn"))
		reserveOut := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "reserveOut"))
		amountIn := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "amountIn"))
		feeDen := rapid.Uint64Range(1, 1_000_000).Draw(rt, "feeDen")
		feeNum := rapid.Uint64Range(1, feeDen).Draw(rt, "feeNum")

		out, err := types.QuoteOutputForInput(amountIn, reserveIn, reserveOut, feeNum, feeDen)
		if err != nil {
			rt.Skip("quote out of range")
		}

		if out.GTE(reserveOut) {
			rt.Fatalf("output %s would drain reserve %s", out, reserveOut)
		}
		oldK := reserveIn.Mul(reserveOut)
		newK := reserveIn.Add(amountIn).Mul(reserveOut.Sub(out))
		if newK.LT(oldK) {
			rt.Fatalf("product decreased: %s -> %s", oldK, newK)
		}
	})
}

func TestInitialShares(t *testing.T) {
	// Equal seed amounts mint their common value.
	shares, err := types.InitialShares(math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), shares)

	// Unequal amounts mint the floor geometric mean.
	shares, err = types.InitialShares(math.NewInt(4), math.NewInt(9))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(6), shares)

	shares, err = types.InitialShares(math.NewInt(2), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2), shares) // floor(sqrt(6))

	_, err = types.InitialShares(math.ZeroInt(), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestInitialSharesProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		amountA := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "amountA"))
		amountB := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "amountB"))

		shares, err := types.InitialShares(amountA, amountB)
		if err != nil {
			rt.Fatalf("initial shares failed: %v", err)
		}

		// shares = floor(sqrt(a*b)): shares^2 <= a*b < (shares+1)^2.
		product := amountA.Mul(amountB)
		if shares.Mul(shares).GT(product) {
			rt.Fatalf("shares %s overshoot product %s", shares, product)
		}
		next := shares.AddRaw(1)
		if next.Mul(next).LTE(product) {
			rt.Fatalf("shares %s undershoot product %s", shares, product)
		}
	})
}

func TestProportionalShares(t *testing.T) {
	// Doubling both reserves doubles the share supply.
	shares, err := types.ProportionalShares(math.NewInt(1000), math.NewInt(1000), math.NewInt(1000), math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), shares)

	// A lopsided deposit mints by the smaller side.
	shares, err = types.ProportionalShares(math.NewInt(1000), math.NewInt(500), math.NewInt(1000), math.NewInt(100), math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), shares)

	// Zero reserve is a division error, not a panic.
	_, err = types.ProportionalShares(math.NewInt(1000), math.NewInt(10), math.ZeroInt(), math.NewInt(10), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrArithmetic)
}

func TestWithdrawAmounts(t *testing.T) {
	// Half the shares redeem half of each reserve.
	amountA, amountB, err := types.WithdrawAmounts(math.NewInt(1000), math.NewInt(1000), math.NewInt(1000), math.NewInt(500))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), amountA)
	require.Equal(t, math.NewInt(500), amountB)

	// Odd splits round down on both sides.
	amountA, amountB, err = types.WithdrawAmounts(math.NewInt(1001), math.NewInt(7), math.NewInt(1000), math.NewInt(333))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(333), amountA) // floor(1001*333/1000)
	require.Equal(t, math.NewInt(2), amountB)   // floor(7*333/1000)

	// All shares redeem the full reserves.
	amountA, amountB, err = types.WithdrawAmounts(math.NewInt(123), math.NewInt(456), math.NewInt(789), math.NewInt(789))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(123), amountA)
	require.Equal(t, math.NewInt(456), amountB)

	_, _, err = types.WithdrawAmounts(math.NewInt(1000), math.NewInt(1000), math.ZeroInt(), math.NewInt(1))
	require.ErrorIs(t, err, types.ErrArithmetic)
}

func TestWithdrawAmountsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reserveA := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "reserveA"))
		reserveB := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "reserveB"))
		totalShares := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "totalShares"))
		sharesIn := math.NewInt(rapid.Int64Range(1, totalShares.Int64()).Draw(rt, "sharesIn"))

		amountA, amountB, err := types.WithdrawAmounts(reserveA, reserveB, totalShares, sharesIn)
		if err != nil {
			rt.Fatalf("withdraw amounts failed: %v", err)
		}

		// Rounding down: a withdrawal never pays out more than its slice.
		if amountA.GT(reserveA) || amountB.GT(reserveB) {
			rt.Fatalf("payout %s/%s exceeds reserves %s/%s", amountA, amountB, reserveA, reserveB)
		}
		if amountA.Mul(totalShares).GT(reserveA.Mul(sharesIn)) {
			rt.Fatalf("amount A %s exceeds exact share %s*%s/%s", amountA, reserveA, sharesIn, totalShares)
		}
		if amountB.Mul(totalShares).GT(reserveB.Mul(sharesIn)) {
			rt.Fatalf("amount B %s exceeds exact share %s*%s/%s", amountB, reserveB, sharesIn, totalShares)
		}
	})
}

func TestWithinRatioTolerance(t *testing.T) {
	// An exact ratio match passes even at zero tolerance.
	ok, err := types.WithinRatioTolerance(math.NewInt(500), math.NewInt(500), math.NewInt(1000), math.NewInt(1000), 0)
	require.NoError(t, err)
	require.True(t, ok)

	// A 1% skew passes at 100 bps and fails at 50 bps.
	ok, err = types.WithinRatioTolerance(math.NewInt(1000), math.NewInt(1010), math.NewInt(1000), math.NewInt(1000), 100)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = types.WithinRatioTolerance(math.NewInt(1000), math.NewInt(1010), math.NewInt(1000), math.NewInt(1000), 50)
	require.NoError(t, err)
	require.False(t, ok)

	// Gross mismatch fails at any tolerance under 100%.
	ok, err = types.WithinRatioTolerance(math.NewInt(1), math.NewInt(1000), math.NewInt(1000), math.NewInt(1000), 100)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSafeMathBounds(t *testing.T) {
	nearMax := bigPow2(255)

	// Addition and multiplication fail past 256 bits instead of wrapping.
	_, err := types.SafeAdd(nearMax, nearMax)
	require.ErrorIs(t, err, types.ErrArithmetic)

	_, err = types.SafeMul(nearMax, math.NewInt(4))
	require.ErrorIs(t, err, types.ErrArithmetic)

	sum, err := types.SafeAdd(math.NewInt(2), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(5), sum)

	// Subtraction refuses to go negative.
	_, err = types.SafeSub(math.NewInt(3), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrArithmetic)

	diff, err := types.SafeSub(math.NewInt(5), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2), diff)

	// Division by zero is an error, not a panic.
	_, err = types.SafeQuo(math.NewInt(10), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrArithmetic)

	_, err = types.SafeMulDiv(math.NewInt(10), math.NewInt(10), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrArithmetic)

	q, err := types.SafeMulDiv(math.NewInt(10), math.NewInt(7), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(23), q) // floor(70/3)
}
