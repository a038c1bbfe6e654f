package codec

import "github.com/trippwill/decimalinfinite/decimal"

// The five single-byte special forms (spec §4.1). There is exactly one
// encoding for each; none of them carries a continuation byte.
const (
	byteNegInf  byte = 0x00
	byteNegZero byte = 0x40
	bytePosZero byte = 0x80
	bytePosInf  byte = 0xC0
	byteNaN     byte = 0xE0
)

// encodeSpecial returns the single-byte form for v, if v is ±0, ±Infinity,
// or NaN.
func encodeSpecial(v *decimal.Value) ([]byte, bool) {
	switch {
	case v.IsNaN():
		return []byte{byteNaN}, true
	case v.IsInf():
		if v.IsNegative() {
			return []byte{byteNegInf}, true
		}
		return []byte{bytePosInf}, true
	case v.IsFinite() && v.IsZero():
		if v.IsNegative() {
			return []byte{byteNegZero}, true
		}
		return []byte{bytePosZero}, true
	}
	return nil, false
}

// decodeSpecialByte decodes a one-byte buffer, if b is one of the five
// recognized single-byte forms.
func decodeSpecialByte(b byte, capacity int) (*decimal.Value, bool) {
	v := decimal.New(capacity)
	switch b {
	case byteNegInf:
		v.SetInf(true)
		return v, true
	case byteNegZero:
		v.SetSign(true)
		return v, true
	case bytePosZero:
		return v, true
	case bytePosInf:
		v.SetInf(false)
		return v, true
	case byteNaN:
		v.SetNaN()
		return v, true
	}
	return nil, false
}
