// Package declet implements the mantissa half of the codec: aligning a
// decimal coefficient to a whole number of 3-digit units ("declets"),
// packing/unpacking each unit as 10 bits, and the ten's-complement
// transform negative coefficients are stored under.
//
// decimalInfinite hard-codes DECDPUN (digits per declet) at 3; nothing in
// this package, or the codec built on it, takes it as a parameter.
package declet

import (
	"math/big"

	"github.com/trippwill/decimalinfinite/internal/bitio"
	"github.com/trippwill/decimalinfinite/internal/decerr"
)

// DigitsPerDeclet is DECDPUN, fixed per spec §9.
const DigitsPerDeclet = 3

// Align pads digits with trailing zero digits, on the right, until its
// length is a multiple of DigitsPerDeclet, and returns the exponent
// adjusted so the represented value is unchanged: each appended zero digit
// lowers exponent by one.
func Align(digits []byte, exponent int) (aligned []byte, newExponent int) {
	pad := (DigitsPerDeclet - len(digits)%DigitsPerDeclet) % DigitsPerDeclet
	if pad == 0 {
		return digits, exponent
	}
	aligned = make([]byte, len(digits)+pad)
	copy(aligned, digits)
	for i := len(digits); i < len(aligned); i++ {
		aligned[i] = 0
	}
	return aligned, exponent - pad
}

// ToDeclets groups a digit buffer, whose length must be a multiple of
// DigitsPerDeclet, into declet values (0-999).
func ToDeclets(digits []byte) []uint16 {
	k := len(digits) / DigitsPerDeclet
	declets := make([]uint16, k)
	for i := 0; i < k; i++ {
		d := digits[i*DigitsPerDeclet : i*DigitsPerDeclet+DigitsPerDeclet]
		declets[i] = uint16(d[0])*100 + uint16(d[1])*10 + uint16(d[2])
	}
	return declets
}

// FromDeclets expands declet values back into a digit buffer.
func FromDeclets(declets []uint16) []byte {
	digits := make([]byte, len(declets)*DigitsPerDeclet)
	for i, v := range declets {
		digits[i*DigitsPerDeclet+0] = byte(v / 100)
		digits[i*DigitsPerDeclet+1] = byte((v / 10) % 10)
		digits[i*DigitsPerDeclet+2] = byte(v % 10)
	}
	return digits
}

// Complement computes the ten's complement of an aligned digit buffer
// (10^(3k) - coefficient), returned as a digit buffer of the same length.
func Complement(aligned []byte) []byte {
	k := len(aligned) / DigitsPerDeclet
	coef := digitsToBigInt(aligned)
	mod := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(3*k)), nil)
	complement := new(big.Int).Sub(mod, coef)
	return bigIntToDigits(complement, len(aligned))
}

func digitsToBigInt(digits []byte) *big.Int {
	n := new(big.Int)
	ten := big.NewInt(10)
	for _, d := range digits {
		n.Mul(n, ten)
		n.Add(n, big.NewInt(int64(d)))
	}
	return n
}

func bigIntToDigits(n *big.Int, width int) []byte {
	digits := make([]byte, width)
	rem := new(big.Int).Set(n)
	ten := big.NewInt(10)
	mod := new(big.Int)
	for i := width - 1; i >= 0; i-- {
		rem.DivMod(rem, ten, mod)
		digits[i] = byte(mod.Int64())
	}
	return digits
}

// Pack writes each declet value as 10 bits, most-significant declet first.
func Pack(w *bitio.Writer, declets []uint16) {
	for _, v := range declets {
		w.PackUint(uint64(v), 10)
	}
}

// Unpack reads k 10-bit declets from r, rejecting any value above 999.
func Unpack(r *bitio.Reader, k int) ([]uint16, error) {
	declets := make([]uint16, k)
	for i := 0; i < k; i++ {
		v, err := r.UnpackUint(10)
		if err != nil {
			return nil, decerr.New(decerr.InvalidDeclet, "declet %d: %v", i, err)
		}
		if v > 999 {
			return nil, decerr.New(decerr.InvalidDeclet, "declet %d value %d exceeds 999", i, v)
		}
		declets[i] = uint16(v)
	}
	return declets, nil
}
