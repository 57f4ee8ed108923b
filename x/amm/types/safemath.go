package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// maxWorkingInt is the 256-bit working-width bound. Every intermediate of the
// pool arithmetic must stay within it; exceeding it is ErrArithmetic, never a
// silent wrap.
var maxWorkingInt = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

func checkWidth(v *big.Int) error {
	if v.CmpAbs(maxWorkingInt) > 0 {
		return ErrArithmetic.Wrapf("value %s exceeds 256-bit working width", v.String())
	}
	return nil
}

// SafeAdd returns a+b, failing on 256-bit overflow.
func SafeAdd(a, b math.Int) (math.Int, error) {
	sum := new(big.Int).Add(a.BigInt(), b.BigInt())
	if err := checkWidth(sum); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(sum), nil
}

// SafeSub returns a-b, failing when the result would be negative. Reserves
// and shares are unsigned quantities; a negative result is always a logic
// error upstream.
func SafeSub(a, b math.Int) (math.Int, error) {
	diff := new(big.Int).Sub(a.BigInt(), b.BigInt())
	if diff.Sign() < 0 {
		return math.Int{}, ErrArithmetic.Wrapf("subtraction underflow: %s < %s", a.String(), b.String())
	}
	return math.NewIntFromBigInt(diff), nil
}

// SafeMul returns a*b, failing on 256-bit overflow.
func SafeMul(a, b math.Int) (math.Int, error) {
	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if err := checkWidth(product); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(product), nil
}

// SafeQuo returns a/b truncated toward zero, failing on division by zero.
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, ErrArithmetic.Wrap("division by zero")
	}
	return math.NewIntFromBigInt(new(big.Int).Quo(a.BigInt(), b.BigInt())), nil
}

// SafeMulDiv returns floor(a*b/c) with the intermediate product width-checked.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, ErrArithmetic.Wrap("division by zero")
	}
	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if err := checkWidth(product); err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(product.Quo(product, c.BigInt())), nil
}
