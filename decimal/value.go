// Package decimal holds the DecimalValue external contract the codec
// package encodes and decodes: a sign, a classification (finite, infinite,
// or NaN), a digit buffer, and an exponent.
//
// A Value is a plain data holder, not an arithmetic type: it carries no
// Context, no traps, no rounding mode. Construction and rendering helpers
// live alongside it (parse.go, format.go); arithmetic does not.
package decimal

import "fmt"

// Class is a Value's classification.
type Class uint8

const (
	Finite Class = iota
	Infinite
	NaN
)

func (c Class) String() string {
	switch c {
	case Finite:
		return "finite"
	case Infinite:
		return "infinite"
	case NaN:
		return "NaN"
	default:
		return "unknown"
	}
}

// Value is a sign, a classification, a digit buffer (each entry 0-9, most
// significant digit first), and an exponent such that a finite value's
// magnitude equals digits * 10^exponent.
type Value struct {
	capacity int
	negative bool
	class    Class
	digits   []byte
	exponent int
}

// New returns a Value holding +0, whose digit buffer can grow to capacity
// digits.
func New(capacity int) *Value {
	if capacity < 1 {
		panic("decimal: capacity must be at least 1")
	}
	return &Value{capacity: capacity, digits: []byte{0}}
}

// Capacity is the maximum digit count this Value can hold.
func (v *Value) Capacity() int { return v.capacity }

// Sign reports whether the value is negative.
func (v *Value) Sign() bool { return v.negative }

// SetSign sets the sign. SetNaN clears it, and IsNegative reports false for
// a NaN whatever sign is stored.
func (v *Value) SetSign(negative bool) { v.negative = negative }

// Class reports the value's classification.
func (v *Value) Class() Class { return v.class }

// SetClass sets the value's classification directly. Prefer SetInf/SetNaN,
// which also set an appropriate digit buffer.
func (v *Value) SetClass(c Class) { v.class = c }

// SetInf marks the value as an infinity of the given sign.
func (v *Value) SetInf(negative bool) {
	v.class = Infinite
	v.negative = negative
}

// SetNaN marks the value as NaN. decimalInfinite has exactly one NaN; its
// sign is discarded rather than tracked, so IsNegative() is always false
// for a NaN value.
func (v *Value) SetNaN() {
	v.class = NaN
	v.negative = false
}

// Digits returns the current digit buffer, most significant digit first.
// The slice is shared with v; callers must not mutate it.
func (v *Value) Digits() []byte { return v.digits }

// DigitCount returns the current number of digits.
func (v *Value) DigitCount() int { return len(v.digits) }

// SetDigits replaces the digit buffer. digits must be non-empty, no longer
// than Capacity, every entry in [0,9], and must not start with a 0 unless
// it is the single digit 0.
func (v *Value) SetDigits(digits []byte) error {
	if len(digits) == 0 {
		return fmt.Errorf("decimal: digit buffer must be non-empty")
	}
	if len(digits) > v.capacity {
		return fmt.Errorf("decimal: digit count %d exceeds capacity %d", len(digits), v.capacity)
	}
	for i, d := range digits {
		if d > 9 {
			return fmt.Errorf("decimal: digit %d at position %d is not in [0,9]", d, i)
		}
	}
	if len(digits) > 1 && digits[0] == 0 {
		return fmt.Errorf("decimal: most significant digit must be non-zero")
	}
	v.class = Finite
	v.digits = append(v.digits[:0:0], digits...)
	return nil
}

// Exponent returns the unadjusted exponent (magnitude = digits * 10^exponent).
func (v *Value) Exponent() int { return v.exponent }

// SetExponent sets the unadjusted exponent.
func (v *Value) SetExponent(e int) { v.exponent = e }

// AdjustedExponent returns exponent + digit-count - 1, the form the codec
// stores. Only meaningful for a finite, non-zero value.
func (v *Value) AdjustedExponent() int {
	return v.exponent + len(v.digits) - 1
}

func (v *Value) IsFinite() bool { return v.class == Finite }
func (v *Value) IsInf() bool    { return v.class == Infinite }
func (v *Value) IsNaN() bool    { return v.class == NaN }

// IsZero reports whether v is finite zero, irrespective of sign.
func (v *Value) IsZero() bool {
	if v.class != Finite {
		return false
	}
	for _, d := range v.digits {
		if d != 0 {
			return false
		}
	}
	return true
}

func (v *Value) IsNegative() bool { return v.negative && !v.IsNaN() }
func (v *Value) IsPositive() bool { return !v.negative }

// Clone returns an independent copy of v.
func (v *Value) Clone() *Value {
	cp := &Value{capacity: v.capacity, negative: v.negative, class: v.class, exponent: v.exponent}
	cp.digits = append(cp.digits, v.digits...)
	return cp
}
