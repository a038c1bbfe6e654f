package decimal

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Parse builds a Value from a decimal literal ("123.45", "-0.002",
// "3.2e10", "Infinity", "-Infinity", "NaN"), the way Parse128 builds a
// FixedPoint128 from a string: trim the sign, split mantissa from
// exponent, split integer from fractional part, strip leading zeros.
func Parse(s string, capacity int) (*Value, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "infinity", "+infinity", "inf", "+inf":
		v := New(capacity)
		v.SetInf(false)
		return v, nil
	case "-infinity", "-inf":
		v := New(capacity)
		v.SetInf(true)
		return v, nil
	case "nan":
		v := New(capacity)
		v.SetNaN()
		return v, nil
	}

	rest := trimmed
	negative := false
	switch {
	case strings.HasPrefix(rest, "-"):
		negative = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}
	if rest == "" {
		return nil, fmt.Errorf("decimal: empty literal %q", s)
	}

	exponent := 0
	mantissa := rest
	if idx := strings.IndexAny(rest, "eE"); idx >= 0 {
		mantissa = rest[:idx]
		e, err := strconv.Atoi(rest[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("decimal: invalid exponent in %q: %w", s, err)
		}
		exponent = e
	}

	intPart := mantissa
	fracPart := ""
	if idx := strings.IndexByte(mantissa, '.'); idx >= 0 {
		intPart = mantissa[:idx]
		fracPart = mantissa[idx+1:]
	}
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("decimal: no digits in %q", s)
	}

	digitStr := intPart + fracPart
	exponent -= len(fracPart)

	stripped := strings.TrimLeft(digitStr, "0")
	if stripped == "" {
		stripped = "0"
		exponent = 0
	}

	digits := make([]byte, len(stripped))
	for i, c := range stripped {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("decimal: non-digit %q in %q", c, s)
		}
		digits[i] = byte(c - '0')
	}

	v := New(capacity)
	if err := v.SetDigits(digits); err != nil {
		return nil, err
	}
	v.SetSign(negative)
	v.SetExponent(exponent)
	return v, nil
}

// FromBigInt builds a finite Value from a signed coefficient and exponent;
// the sign is taken from coefficient itself.
func FromBigInt(coefficient *big.Int, exponent int, capacity int) (*Value, error) {
	negative := coefficient.Sign() < 0
	abs := new(big.Int).Abs(coefficient)
	s := abs.String()

	digits := make([]byte, len(s))
	for i, c := range s {
		digits[i] = byte(c - '0')
	}

	v := New(capacity)
	if err := v.SetDigits(digits); err != nil {
		return nil, err
	}
	v.SetSign(negative)
	v.SetExponent(exponent)
	return v, nil
}

// ToBigInt returns v's coefficient, signed, and its exponent. Only valid
// for a finite v.
func (v *Value) ToBigInt() (coefficient *big.Int, exponent int, err error) {
	if !v.IsFinite() {
		return nil, 0, fmt.Errorf("decimal: ToBigInt requires a finite value, got %s", v.class)
	}
	coef, ok := new(big.Int).SetString(string(digitsToASCII(v.digits)), 10)
	if !ok {
		return nil, 0, fmt.Errorf("decimal: internal digit buffer %v is not a valid integer", v.digits)
	}
	if v.negative {
		coef.Neg(coef)
	}
	return coef, v.exponent, nil
}
