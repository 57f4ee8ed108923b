package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// Swap quoting for the constant-product pool. All arithmetic is exact
// integer big.Int work; rounding always favors the pool: outputs round down,
// required inputs round up. No caller performs raw price arithmetic.

// QuoteOutputForInput returns the output amount for a fee-bearing swap of
// amountIn against the given reserves:
//
//	out = floor(amountIn*feeNum*reserveOut / (reserveIn*feeDen + amountIn*feeNum))
//
// The floor guarantees (reserveIn+amountIn)*(reserveOut-out) >= reserveIn*reserveOut.
func QuoteOutputForInput(amountIn, reserveIn, reserveOut math.Int, feeNum, feeDen uint64) (math.Int, error) {
	if err := validateQuoteArgs(amountIn, reserveIn, reserveOut, feeNum, feeDen); err != nil {
		return math.Int{}, err
	}

	feeNumBig := new(big.Int).SetUint64(feeNum)
	feeDenBig := new(big.Int).SetUint64(feeDen)

	amountInWithFee := new(big.Int).Mul(amountIn.BigInt(), feeNumBig)
	if err := checkWidth(amountInWithFee); err != nil {
		return math.Int{}, err
	}

	numerator := new(big.Int).Mul(amountInWithFee, reserveOut.BigInt())
	if err := checkWidth(numerator); err != nil {
		return math.Int{}, err
	}

	denominator := new(big.Int).Mul(reserveIn.BigInt(), feeDenBig)
	if err := checkWidth(denominator); err != nil {
		return math.Int{}, err
	}
	denominator.Add(denominator, amountInWithFee)
	if err := checkWidth(denominator); err != nil {
		return math.Int{}, err
	}

	out := new(big.Int).Quo(numerator, denominator)
	if out.Cmp(reserveOut.BigInt()) >= 0 {
		return math.Int{}, ErrArithmetic.Wrapf("quoted output %s would drain reserve %s", out.String(), reserveOut.String())
	}
	return math.NewIntFromBigInt(out), nil
}

// QuoteInputForOutput returns the input amount required to receive exactly
// amountOut from the given reserves:
//
//	in = ceil(reserveIn*amountOut*feeDen / ((reserveOut-amountOut)*feeNum))
//
// Rounding up keeps the pool from being shorted: feeding the result back
// through QuoteOutputForInput always yields at least amountOut.
func QuoteInputForOutput(amountOut, reserveIn, reserveOut math.Int, feeNum, feeDen uint64) (math.Int, error) {
	if err := validateQuoteArgs(amountOut, reserveIn, reserveOut, feeNum, feeDen); err != nil {
		return math.Int{}, err
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, ErrArithmetic.Wrapf("requested output %s would drain reserve %s", amountOut.String(), reserveOut.String())
	}

	feeNumBig := new(big.Int).SetUint64(feeNum)
	feeDenBig := new(big.Int).SetUint64(feeDen)

	numerator := new(big.Int).Mul(reserveIn.BigInt(), amountOut.BigInt())
	if err := checkWidth(numerator); err != nil {
		return math.Int{}, err
	}
	numerator.Mul(numerator, feeDenBig)
	if err := checkWidth(numerator); err != nil {
		return math.Int{}, err
	}

	denominator := new(big.Int).Sub(reserveOut.BigInt(), amountOut.BigInt())
	denominator.Mul(denominator, feeNumBig)
	if err := checkWidth(denominator); err != nil {
		return math.Int{}, err
	}

	in, rem := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	if rem.Sign() != 0 {
		in.Add(in, big.NewInt(1))
	}
	if err := checkWidth(in); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(in), nil
}

func validateQuoteArgs(amount, reserveIn, reserveOut math.Int, feeNum, feeDen uint64) error {
	if feeNum == 0 || feeDen == 0 || feeNum > feeDen {
		return ErrArithmetic.Wrapf("invalid fee ratio %d/%d", feeNum, feeDen)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return ErrZeroAmount.Wrap("quote amount must be positive")
	}
	if reserveIn.IsNil() || reserveOut.IsNil() || !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return ErrArithmetic.Wrap("quote against empty reserve")
	}
	return nil
}

// InitialShares returns the share seed for the first deposit into an empty
// pool: the floor integer square root of amountA*amountB (geometric mean).
func InitialShares(amountA, amountB math.Int) (math.Int, error) {
	if !amountA.IsPositive() || !amountB.IsPositive() {
		return math.Int{}, ErrZeroAmount.Wrap("seed amounts must be positive")
	}
	product := new(big.Int).Mul(amountA.BigInt(), amountB.BigInt())
	if err := checkWidth(product); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(product)), nil
}

// ProportionalShares returns the shares minted for a deposit against live
// reserves: floor(totalShares * min(amountA/reserveA, amountB/reserveB)),
// computed cross-multiplied so no intermediate loses precision.
func ProportionalShares(totalShares, amountA, reserveA, amountB, reserveB math.Int) (math.Int, error) {
	sharesFromA, err := SafeMulDiv(totalShares, amountA, reserveA)
	if err != nil {
		return math.Int{}, err
	}
	sharesFromB, err := SafeMulDiv(totalShares, amountB, reserveB)
	if err != nil {
		return math.Int{}, err
	}
	return math.MinInt(sharesFromA, sharesFromB), nil
}

// WithdrawAmounts returns the assets redeemed for sharesIn, each rounded
// down: floor(reserve_x * sharesIn / totalShares).
func WithdrawAmounts(reserveA, reserveB, totalShares, sharesIn math.Int) (math.Int, math.Int, error) {
	amountA, err := SafeMulDiv(reserveA, sharesIn, totalShares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountB, err := SafeMulDiv(reserveB, sharesIn, totalShares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amountA, amountB, nil
}

// WithinRatioTolerance reports whether a deposit's ratio matches the reserve
// ratio within toleranceBps basis points, comparing the cross products
// amountA*reserveB and amountB*reserveA.
func WithinRatioTolerance(amountA, amountB, reserveA, reserveB math.Int, toleranceBps uint64) (bool, error) {
	crossA, err := SafeMul(amountA, reserveB)
	if err != nil {
		return false, err
	}
	crossB, err := SafeMul(amountB, reserveA)
	if err != nil {
		return false, err
	}

	diff := new(big.Int).Sub(crossA.BigInt(), crossB.BigInt())
	diff.Abs(diff)
	larger := math.MaxInt(crossA, crossB)
	if larger.IsZero() {
		return diff.Sign() == 0, nil
	}

	scaledDiff := new(big.Int).Mul(diff, big.NewInt(10_000))
	if err := checkWidth(scaledDiff); err != nil {
		return false, err
	}
	bound := new(big.Int).Mul(larger.BigInt(), new(big.Int).SetUint64(toleranceBps))
	if err := checkWidth(bound); err != nil {
		return false, err
	}
	return scaledDiff.Cmp(bound) <= 0, nil
}
