package codec

import (
	"github.com/trippwill/decimalinfinite/decimal"
	"github.com/trippwill/decimalinfinite/internal/bitio"
	"github.com/trippwill/decimalinfinite/internal/decerr"
	"github.com/trippwill/decimalinfinite/internal/declet"
	"github.com/trippwill/decimalinfinite/internal/gammacode"
)

// Decode parses a decimalInfinite-encoded buffer back into a Value. It
// rejects any buffer that is not the unique canonical encoding of some
// value, rather than silently accepting a non-minimal one.
func Decode(data []byte, cfg Config) (*decimal.Value, error) {
	if len(data) == 0 {
		return nil, decerr.New(decerr.InvalidHeader, "empty buffer")
	}
	if len(data) == 1 {
		if v, ok := decodeSpecialByte(data[0], cfg.MaxDigits); ok {
			return v, nil
		}
		return nil, decerr.New(decerr.InvalidHeader, "byte 0x%02X is not a valid single-byte form", data[0])
	}

	r := bitio.NewReader(data)
	headerNibble, err := r.UnpackBits(4)
	if err != nil {
		return nil, decerr.New(decerr.InvalidHeader, "%v", err)
	}

	negative, t, err := decodeHeaderNibble(headerNibble)
	if err != nil {
		return nil, err
	}

	offset, err := gammacode.Decode(r, t, cfg.MaxExponentBits)
	if err != nil {
		return nil, err
	}

	// A zero adjusted exponent can only be canonically stored through the
	// T branch that corresponds to "non-negative"; the other branch would
	// encode the same value a second, non-canonical way. This single
	// check subsumes the two reserved bit patterns spec §4.5 calls out
	// by example (0x8C, 0x10).
	if offset == 0 && t != headerT(negative, true) {
		return nil, decerr.New(decerr.InvalidHeader, "adjusted exponent 0 encoded through the non-canonical T branch")
	}

	remaining := r.RemainingBits()
	k := remaining / 10
	if k < 1 {
		return nil, decerr.New(decerr.InvalidDeclet, "buffer has no complete mantissa declet")
	}
	if 3*k > cfg.MaxDigits {
		return nil, decerr.New(decerr.MantissaTooLong, "mantissa digit count %d exceeds configured MaxDigits %d", 3*k, cfg.MaxDigits)
	}
	if leftover := remaining - 10*k; leftover >= 8 {
		return nil, decerr.New(decerr.InvalidDeclet, "trailing unused byte(s) after the last declet")
	}

	declets, err := declet.Unpack(r, k)
	if err != nil {
		return nil, err
	}

	if negative {
		// The complement of a magnitude whose leading digit is non-zero
		// (the only valid leading digit) ranges over [0,900]; a stored
		// value of 901 or higher means the recovered magnitude's leading
		// digit would be zero.
		if declets[0] > 900 {
			return nil, decerr.New(decerr.NonCanonicalMantissa, "most-significant declet %d exceeds 900", declets[0])
		}
	} else if declets[0] == 0 {
		return nil, decerr.New(decerr.NonCanonicalMantissa, "most-significant declet is zero")
	}
	if declets[k-1] == 0 {
		return nil, decerr.New(decerr.NonCanonicalMantissa, "least-significant declet is zero")
	}

	var digits []byte
	if negative {
		digits = declet.Complement(declet.FromDeclets(declets))
	} else {
		digits = declet.FromDeclets(declets)
	}

	adjNonNeg := adjustedExponentNonNegative(negative, t)
	signedAdj := int(offset)
	if !adjNonNeg {
		signedAdj = -signedAdj
	}
	finalExponent := signedAdj - len(digits) + 1

	v := decimal.New(cfg.MaxDigits)
	if err := v.SetDigits(digits); err != nil {
		return nil, decerr.New(decerr.NonCanonicalMantissa, "%v", err)
	}
	v.SetSign(negative)
	v.SetExponent(finalExponent)
	return v, nil
}
