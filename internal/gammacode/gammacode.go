// Package gammacode implements the modified Elias-gamma code used to store
// a decimalInfinite value's signed adjusted exponent.
//
// The field is split in two: a single bit, T, that records whether the
// field is stored complemented, and a variable-length tail that the caller
// reads starting immediately after T. T itself always equals the first bit
// of the (possibly complemented) gamma codeword, so it is folded into the
// four-bit header the codec package owns rather than written twice.
package gammacode

import (
	"math/bits"

	"github.com/trippwill/decimalinfinite/internal/bitio"
	"github.com/trippwill/decimalinfinite/internal/decerr"
)

// MaxOffset is the largest adjusted-exponent magnitude this code can carry
// (spec: adjusted exponent in [-999999999, 999999999]).
const MaxOffset = 999_999_999

// tableLimit bounds the precomputed small-value table; values of e at or
// above it fall back to the general computation.
const tableLimit = 126

type entry struct {
	n    int
	bits uint64 // low 2*n bits, ready to PackUint after the header's T bit
}

var smallTable [tableLimit]entry

func init() {
	for e := 0; e < tableLimit; e++ {
		n, raw := rawCodeword(uint32(e))
		smallTable[e] = entry{n: n, bits: raw & ((1 << uint(2*n)) - 1)}
	}
}

// rawCodeword computes N and the full (2N+1)-bit non-complemented gamma
// codeword for offset e (f = e+2, N = floor(log2(f))).
func rawCodeword(e uint32) (n int, raw uint64) {
	f := uint64(e) + 2
	n = bits.Len64(f) - 1
	ones := (uint64(1) << uint(n)) - 1
	raw = (ones << uint(n+1)) | (f & ((1 << uint(n)) - 1))
	return n, raw
}

// BitLength returns N, the number of 1-bits in the gamma code's unary run
// for offset e (equivalently, the number of continuation bits this package
// writes past the header's T bit is 2N, and the header's T bit is the first
// bit of the unary run).
func BitLength(e uint32) int {
	if e < tableLimit {
		return smallTable[e].n
	}
	n, _ := rawCodeword(e)
	return n
}

// Encode writes the 2N continuation bits for offset e with sign flag t
// (true = stored non-complemented) to w. maxExponentBits bounds N; e
// beyond MaxOffset or producing N > maxExponentBits is rejected.
func Encode(w *bitio.Writer, e uint32, t bool, maxExponentBits int) error {
	if e > MaxOffset {
		return decerr.New(decerr.ExponentOutOfRange, "adjusted exponent magnitude %d exceeds %d", e, MaxOffset)
	}

	var n int
	var raw uint64
	if e < tableLimit {
		n, raw = smallTable[e].n, smallTable[e].bits
	} else {
		n, raw = rawCodeword(e)
		raw &= (1 << uint(2*n)) - 1
	}
	if n > maxExponentBits {
		return decerr.New(decerr.ExponentOutOfRange, "unary prefix length %d exceeds configured maximum %d", n, maxExponentBits)
	}

	tail := raw
	if !t {
		tail = (^raw) & ((1 << uint(2*n)) - 1)
	}
	if n > 0 {
		w.PackUint(tail, 2*n)
	}
	return nil
}

// Decode reads the continuation bits following a header whose T bit was
// already consumed as t, and returns the offset e it encodes.
func Decode(r *bitio.Reader, t bool, maxExponentBits int) (e uint32, err error) {
	n := 1 // the header's T bit is the first bit of the unary run
	for {
		bit, rerr := r.UnpackBits(1)
		if rerr != nil {
			return 0, decerr.New(decerr.ExponentOutOfRange, "buffer ends before the exponent is fully read: %v", rerr)
		}
		matches := (bit == 1) == t
		if !matches {
			break
		}
		n++
		if n > maxExponentBits {
			return 0, decerr.New(decerr.ExponentOutOfRange, "unary prefix length exceeds configured maximum %d", maxExponentBits)
		}
	}

	trailing, rerr := r.UnpackUint(n)
	if rerr != nil {
		return 0, decerr.New(decerr.ExponentOutOfRange, "buffer ends before the exponent is fully read: %v", rerr)
	}
	if !t {
		trailing = (^trailing) & ((1 << uint(n)) - 1)
	}

	f := (uint64(1) << uint(n)) | trailing
	e64 := f - 2
	if e64 > MaxOffset {
		return 0, decerr.New(decerr.ExponentOutOfRange, "adjusted exponent magnitude %d exceeds %d", e64, MaxOffset)
	}
	return uint32(e64), nil
}
