package codec

import (
	"github.com/trippwill/decimalinfinite/decimal"
	"github.com/trippwill/decimalinfinite/internal/bitio"
	"github.com/trippwill/decimalinfinite/internal/decerr"
	"github.com/trippwill/decimalinfinite/internal/declet"
	"github.com/trippwill/decimalinfinite/internal/gammacode"
)

// Encode serializes v into the decimalInfinite wire format. The returned
// bytes compare, byte by byte in unsigned order, exactly as v compares
// numerically against any other encodable value under the same Config.
func Encode(v *decimal.Value, cfg Config) ([]byte, error) {
	if special, ok := encodeSpecial(v); ok {
		return special, nil
	}
	if !v.IsFinite() {
		return nil, decerr.New(decerr.InvalidHeader, "value has unrecognized classification %v", v.Class())
	}

	digits := v.Digits()
	// Trailing zero digits carry no value; dropping them keeps the mantissa
	// free of a trailing zero declet, which Decode rejects as non-canonical.
	for len(digits) > 1 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	adj := v.AdjustedExponent()
	if adj < -gammacode.MaxOffset || adj > gammacode.MaxOffset {
		return nil, decerr.New(decerr.ExponentOutOfRange, "adjusted exponent %d out of range", adj)
	}

	aligned, _ := declet.Align(digits, v.Exponent())
	if len(aligned) > cfg.MaxDigits {
		return nil, decerr.New(decerr.MantissaTooLong, "aligned digit count %d exceeds configured MaxDigits %d", len(aligned), cfg.MaxDigits)
	}

	negative := v.IsNegative()
	adjNonNeg := adj >= 0
	t := headerT(negative, adjNonNeg)

	var mantissaDeclets []uint16
	if negative {
		mantissaDeclets = declet.ToDeclets(declet.Complement(aligned))
	} else {
		mantissaDeclets = declet.ToDeclets(aligned)
	}

	offset := adj
	if offset < 0 {
		offset = -offset
	}

	w := bitio.NewWriter(cfg.MaxEncodedLen())
	w.PackBits(encodeHeaderNibble(negative, t), 4)
	if err := gammacode.Encode(w, uint32(offset), t, cfg.MaxExponentBits); err != nil {
		return nil, err
	}
	declet.Pack(w, mantissaDeclets)
	return w.Bytes(), nil
}
