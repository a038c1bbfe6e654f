package codec

import "github.com/trippwill/decimalinfinite/internal/decerr"

// Config bounds the two open-ended parameters the wire format leaves to
// the implementation: P (MaxDigits, the largest coefficient digit count)
// and E_MAX (MaxExponentBits, the largest gamma-code unary prefix).
//
// A Config is built once with NewConfig (or a preset) and passed by value,
// the way the teacher's newContext builds an immutable context value.
type Config struct {
	MaxDigits       int
	MaxExponentBits int
}

// NewConfig validates and builds a Config. maxDigits must be a multiple of
// 3 and at least 3 (spec §3); maxExponentBits must be in [5,30] (spec
// §4.3).
func NewConfig(maxDigits, maxExponentBits int) (Config, error) {
	if maxDigits < 3 || maxDigits%3 != 0 {
		return Config{}, decerr.New(decerr.InvalidHeader, "MaxDigits %d must be a multiple of 3 and at least 3", maxDigits)
	}
	if maxExponentBits < 5 || maxExponentBits > 30 {
		return Config{}, decerr.New(decerr.InvalidHeader, "MaxExponentBits %d must be in [5,30]", maxExponentBits)
	}
	return Config{MaxDigits: maxDigits, MaxExponentBits: maxExponentBits}, nil
}

// DefaultConfig is a moderate precision suitable for general use: 99
// digits (33 declets), a 12-bit exponent prefix.
func DefaultConfig() Config {
	cfg, err := NewConfig(99, 12)
	if err != nil {
		panic(err)
	}
	return cfg
}

// WideConfig is a wide configuration: 999 digits and a 30-bit exponent
// prefix, the largest MaxExponentBits NewConfig accepts.
func WideConfig() Config {
	cfg, err := NewConfig(999, 30)
	if err != nil {
		panic(err)
	}
	return cfg
}

// MaxEncodedLen returns MAXLEN, the largest byte length a finite value can
// encode to under this Config: ceil((2+1+(2*E_MAX-1)+(10*P/3))/8)+1.
func (c Config) MaxEncodedLen() int {
	bits := 2 + 1 + (2*c.MaxExponentBits - 1) + (10 * c.MaxDigits / 3)
	return (bits+7)/8 + 1
}
