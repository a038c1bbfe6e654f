package codec

import "github.com/trippwill/decimalinfinite/internal/decerr"

// The finite-number header is a 4-bit field S S P T (spec §4.5): S S is
// 00 for negative or 10 for positive, P is always 0, and T selects which
// of the two gamma-code branches the adjusted exponent is stored under.
// T = negative XOR (adjusted exponent is non-negative); this single XOR
// relation is invertible, so the same helper derives T from (sign,
// adjNonNeg) during encode and adjNonNeg from (sign, T) during decode.

func encodeHeaderNibble(negative, t bool) byte {
	var s1, tb byte
	if !negative {
		s1 = 1
	}
	if t {
		tb = 1
	}
	return (s1 << 3) | tb
}

func decodeHeaderNibble(nibble byte) (negative, t bool, err error) {
	s1 := (nibble >> 3) & 1
	s2 := (nibble >> 2) & 1
	p := (nibble >> 1) & 1
	tb := nibble & 1
	if s2 != 0 || p != 0 {
		return false, false, decerr.New(decerr.InvalidHeader, "sign/pad field %04b is not a recognized pattern", nibble)
	}
	return s1 == 0, tb == 1, nil
}

func adjustedExponentNonNegative(negative, t bool) bool {
	return t != negative
}

func headerT(negative, adjNonNeg bool) bool {
	return negative != adjNonNeg
}
