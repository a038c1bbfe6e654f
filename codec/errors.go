package codec

import "github.com/trippwill/decimalinfinite/internal/decerr"

// Kind classifies an encode/decode failure; see the five values below.
type Kind = decerr.Kind

const (
	InvalidHeader        = decerr.InvalidHeader
	ExponentOutOfRange   = decerr.ExponentOutOfRange
	MantissaTooLong      = decerr.MantissaTooLong
	InvalidDeclet        = decerr.InvalidDeclet
	NonCanonicalMantissa = decerr.NonCanonicalMantissa
)

// ErrorKind extracts the Kind from an error returned by Encode or Decode.
func ErrorKind(err error) (Kind, bool) {
	de, ok := err.(*decerr.Error)
	if !ok {
		return 0, false
	}
	return de.Kind, true
}
