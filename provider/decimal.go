// SPDX-License-Identifier: MIT
// Package provider: fixed-point decimal provider.
//
// Purpose:
//   - Back scalar.Math with cosmossdk.io/math LegacyDec (18 fractional digits).
//   - Keep arithmetic exact where LegacyDec is exact (Add/Subtract/Negate/Abs),
//     banker-rounded at 18 digits where it is not (Multiply/Divide).
//
// Behavior highlights:
//   - The zero value LegacyDec{} (nil) is read as Zero by every method, so the
//     zero value of any composite built on Decimal is a valid zero.
//   - Transcendental functions are evaluated in float64 and re-quantised.
//   - Divide by zero → scalar.ErrDivisionByZero; Log of x<=0 and Sqrt of x<0 →
//     scalar.ErrDomain; results beyond MaxValue → ErrOverflow, NaN → ErrNonFinite.
//   - Sin/Cos panic on a NaN or ±Inf angle, like FromFloat64.
//   - Multiply beyond the LegacyDec bit limit panics inside LegacyDec, as it
//     does for every LegacyDec user.

package provider

import (
	"math"
	"math/big"
	"strconv"

	sdkmath "cosmossdk.io/math"
	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmath/scalar"
)

// decimalPlaces is the fixed number of fractional digits of LegacyDec.
const decimalPlaces = 18

// decimalMaxBits bounds the integer part of MaxValue; it matches the sdk Int
// bit limit so MaxValue survives a round trip through LegacyDec.
const decimalMaxBits = 256

// maxPowExponent caps the exact integer-power fast path.
const maxPowExponent = 64

// Decimal is the fixed-point provider over sdkmath.LegacyDec.
type Decimal struct{}

var _ scalar.Math[sdkmath.LegacyDec] = Decimal{}

// dec normalises the nil zero value to an explicit zero.
func dec(x sdkmath.LegacyDec) sdkmath.LegacyDec {
	if x.IsNil() {
		return sdkmath.LegacyZeroDec()
	}

	return x
}

// decFromFloat quantises f to 18 fractional digits.
func decFromFloat(f float64) (sdkmath.LegacyDec, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return sdkmath.LegacyDec{}, scalar.ErrNonFinite
	}
	d, err := sdkmath.LegacyNewDecFromStr(strconv.FormatFloat(f, 'f', decimalPlaces, 64))
	if err != nil {
		return sdkmath.LegacyDec{}, scalar.ErrOverflow
	}

	return d, nil
}

// decFromResult quantises the float64 result of a transcendental kernel.
// ±Inf means the exact result left the representable range and maps to
// ErrOverflow, as do finite results beyond MaxValue; NaN maps to ErrNonFinite.
func decFromResult(f float64) (sdkmath.LegacyDec, error) {
	if math.IsInf(f, 0) || math.Abs(f) > math.Ldexp(1, decimalMaxBits) {
		return sdkmath.LegacyDec{}, scalar.ErrOverflow
	}

	return decFromFloat(f)
}

// powFitsExactly reports whether x^e stays within MaxValue, so that
// LegacyDec.Power, whose intermediates never exceed |x|^e, cannot overflow.
func powFitsExactly(x sdkmath.LegacyDec, e uint64) bool {
	a := x.Abs()
	if e <= 1 || a.LTE(sdkmath.LegacyOneDec()) {
		return true
	}

	return float64(e)*math.Log2(a.MustFloat64()) < decimalMaxBits-1
}

// mustDecFromFloat is decFromFloat for inputs the caller guarantees finite
// and in range (trigonometric results, literal scale factors).
func mustDecFromFloat(f float64) sdkmath.LegacyDec {
	d, err := decFromFloat(f)
	if err != nil {
		panic(err)
	}

	return d
}

func (Decimal) Zero() sdkmath.LegacyDec { return sdkmath.LegacyZeroDec() }

func (Decimal) One() sdkmath.LegacyDec { return sdkmath.LegacyOneDec() }

func (Decimal) Add(a, b sdkmath.LegacyDec) sdkmath.LegacyDec { return dec(a).Add(dec(b)) }

func (Decimal) Subtract(a, b sdkmath.LegacyDec) sdkmath.LegacyDec { return dec(a).Sub(dec(b)) }

func (Decimal) Multiply(a, b sdkmath.LegacyDec) sdkmath.LegacyDec { return dec(a).Mul(dec(b)) }

// Divide returns scalar.ErrDivisionByZero when b is zero.
func (Decimal) Divide(a, b sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	b = dec(b)
	if b.IsZero() {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpDivide, scalar.ErrDivisionByZero)
	}

	return dec(a).Quo(b), nil
}

func (Decimal) Negate(x sdkmath.LegacyDec) sdkmath.LegacyDec { return dec(x).Neg() }

func (Decimal) Abs(x sdkmath.LegacyDec) sdkmath.LegacyDec { return dec(x).Abs() }

func (Decimal) Compare(a, b sdkmath.LegacyDec) int {
	a, b = dec(a), dec(b)
	switch {
	case a.LT(b):
		return -1
	case a.GT(b):
		return 1
	default:
		return 0
	}
}

func (Decimal) Equal(a, b sdkmath.LegacyDec) bool { return dec(a).Equal(dec(b)) }

// Hash digests the canonical decimal string, which is unique per value.
func (Decimal) Hash(x sdkmath.LegacyDec) uint64 { return xxhash.Sum64String(dec(x).String()) }

// MinValue is the negation of MaxValue.
func (d Decimal) MinValue() sdkmath.LegacyDec { return d.MaxValue().Neg() }

// MaxValue is 2^256-1 with an all-zero fraction.
func (Decimal) MaxValue() sdkmath.LegacyDec {
	i := new(big.Int).Lsh(big.NewInt(1), decimalMaxBits)
	i.Sub(i, big.NewInt(1))

	return sdkmath.LegacyNewDecFromBigInt(i)
}

// Epsilon is the smallest representable step, 1e-18.
func (Decimal) Epsilon() sdkmath.LegacyDec { return sdkmath.LegacySmallestDec() }

// Log returns ln(x); x must be positive.
func (Decimal) Log(x sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	x = dec(x)
	if !x.IsPositive() {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpLog, scalar.ErrDomain)
	}
	r, err := decFromResult(math.Log(x.MustFloat64()))
	if err != nil {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpLog, err)
	}

	return r, nil
}

// LogN returns log_base(x); x must be positive and base positive and != 1.
func (Decimal) LogN(x sdkmath.LegacyDec, base float64) (sdkmath.LegacyDec, error) {
	x = dec(x)
	if !x.IsPositive() || !(base > 0) || base == 1 || math.IsInf(base, 0) {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpLogN, scalar.ErrDomain)
	}
	r, err := decFromResult(math.Log(x.MustFloat64()) / math.Log(base))
	if err != nil {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpLogN, err)
	}

	return r, nil
}

// Exp returns e^x; large x overflows the representation.
func (Decimal) Exp(x sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	r, err := decFromResult(math.Exp(dec(x).MustFloat64()))
	if err != nil {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpExp, err)
	}

	return r, nil
}

// Pow returns x^e. Small non-negative integer exponents are computed exactly
// with LegacyDec.Power; other exponents go through float64. Results beyond
// MaxValue yield scalar.ErrOverflow.
func (Decimal) Pow(x sdkmath.LegacyDec, e float64) (sdkmath.LegacyDec, error) {
	x = dec(x)
	if e >= 0 && e <= maxPowExponent && e == math.Trunc(e) {
		if !powFitsExactly(x, uint64(e)) {
			return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpPow, scalar.ErrOverflow)
		}
		return x.Power(uint64(e)), nil
	}
	if x.IsNegative() && e != math.Trunc(e) {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpPow, scalar.ErrDomain)
	}
	if x.IsZero() && e < 0 {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpPow, scalar.ErrDivisionByZero)
	}
	r, err := decFromResult(math.Pow(x.MustFloat64(), e))
	if err != nil {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpPow, err)
	}

	return r, nil
}

// Scale multiplies x by factor quantised to 18 digits. A non-finite factor
// is a programmer error and panics.
func (Decimal) Scale(x sdkmath.LegacyDec, factor float64) sdkmath.LegacyDec {
	return dec(x).Mul(mustDecFromFloat(factor))
}

// Sin and Cos quantise the float64 result. A NaN or ±Inf angle has no
// decimal result and panics, as FromFloat64 does.
func (Decimal) Sin(phi float64) sdkmath.LegacyDec { return mustDecFromFloat(math.Sin(phi)) }

func (Decimal) Cos(phi float64) sdkmath.LegacyDec { return mustDecFromFloat(math.Cos(phi)) }

// Sqrt returns the LegacyDec approximate square root; x must be non-negative.
func (Decimal) Sqrt(x sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	x = dec(x)
	if x.IsNegative() {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpSqrt, scalar.ErrDomain)
	}
	r, err := x.ApproxSqrt()
	if err != nil {
		return sdkmath.LegacyDec{}, scalar.Errorf(scalar.OpSqrt, err)
	}

	return r, nil
}

// FromFloat64 panics on NaN, ±Inf or out-of-range input.
func (Decimal) FromFloat64(f float64) sdkmath.LegacyDec { return mustDecFromFloat(f) }

func (Decimal) Float64(x sdkmath.LegacyDec) float64 { return dec(x).MustFloat64() }

func (Decimal) Format(x sdkmath.LegacyDec) string { return dec(x).String() }
