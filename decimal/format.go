package decimal

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

func digitsToASCII(digits []byte) []byte {
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = d + '0'
	}
	return out
}

// String renders v as a plain decimal literal ("123.45", "-0.002",
// "Infinity", "-Infinity", "NaN"); it never uses scientific notation.
func (v *Value) String() string {
	switch v.class {
	case NaN:
		return "NaN"
	case Infinite:
		if v.negative {
			return "-Infinity"
		}
		return "Infinity"
	}

	var b strings.Builder
	if v.negative {
		b.WriteByte('-')
	}
	digits := digitsToASCII(v.digits)
	exp := v.exponent

	switch {
	case exp >= 0:
		b.Write(digits)
		b.WriteString(strings.Repeat("0", exp))
	case -exp >= len(digits):
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp-len(digits)))
		b.Write(digits)
	default:
		point := len(digits) + exp
		b.Write(digits[:point])
		b.WriteByte('.')
		b.Write(digits[point:])
	}
	return b.String()
}

// Debug renders a multi-line field dump useful in test failures and the
// CLI demo.
func (v *Value) Debug() string {
	var kind string
	switch v.class {
	case NaN:
		kind = "NaN"
	case Infinite:
		if v.negative {
			kind = "-Infinity"
		} else {
			kind = "+Infinity"
		}
	default:
		kind = "Finite"
	}

	return fmt.Sprintf(
		"Kind: %s\nSign: %v\nExponent: %d\nDigits: %s\nAdjustedExponent: %d",
		kind, v.negative, v.exponent, string(digitsToASCII(v.digits)), v.AdjustedExponent(),
	)
}

// Format renders v through a locale-aware printer for the given language
// tag. Special values fall back to String(). Finite values are converted
// through big.Float/float64, so extremely high-precision values lose
// digits beyond float64's mantissa in the rendered output; this method is
// a display convenience, not a precision-preserving codec path.
func (v *Value) Format(tag language.Tag) string {
	if !v.IsFinite() {
		return v.String()
	}

	bf, _, err := big.ParseFloat(v.String(), 10, 200, big.ToNearestEven)
	if err != nil {
		return v.String()
	}
	scaled, _ := bf.Float64()

	scale := 0
	if v.exponent < 0 {
		scale = -v.exponent
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(scaled, number.Scale(scale)))
}
