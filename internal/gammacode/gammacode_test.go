package gammacode

import (
	"testing"

	"github.com/trippwill/decimalinfinite/internal/bitio"
)

func encodeHeaderAndBody(t *testing.T, e uint32, tbit bool, maxExp int) *bitio.Writer {
	t.Helper()
	w := bitio.NewWriter(4)
	w.PackBits(boolBit(tbit), 1) // stand-in for the header's T bit
	if err := Encode(w, e, tbit, maxExp); err != nil {
		t.Fatalf("Encode(%d, %v): unexpected error: %v", e, tbit, err)
	}
	return w
}

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func TestRoundTrip(t *testing.T) {
	offsets := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 15, 16, 17, 30, 31, 32, 62, 63, 64,
		100, 125, 126, 127, 1000, 999_999_999}

	for _, e := range offsets {
		for _, tbit := range []bool{true, false} {
			w := encodeHeaderAndBody(t, e, tbit, 32)
			r := bitio.NewReader(w.Bytes())
			if _, err := r.UnpackBits(1); err != nil {
				t.Fatalf("consuming stand-in header bit: %v", err)
			}
			got, err := Decode(r, tbit, 32)
			if err != nil {
				t.Fatalf("Decode after Encode(%d, %v): unexpected error: %v", e, tbit, err)
			}
			if got != e {
				t.Errorf("offset %d (t=%v): round trip got %d", e, tbit, got)
			}
		}
	}
}

func TestSmallTableAgreesWithGeneralComputation(t *testing.T) {
	for e := 0; e < tableLimit; e++ {
		n, raw := rawCodeword(uint32(e))
		want := entry{n: n, bits: raw & ((1 << uint(2*n)) - 1)}
		got := smallTable[e]
		if got != want {
			t.Fatalf("offset %d: table entry %+v, computed %+v", e, got, want)
		}
	}
}

func TestBitLengthGrowsWithOffset(t *testing.T) {
	prev := BitLength(0)
	for e := uint32(1); e < 2000; e++ {
		n := BitLength(e)
		if n < prev {
			t.Fatalf("BitLength not monotonic at offset %d: %d < %d", e, n, prev)
		}
		prev = n
	}
}

func TestEncodeRejectsExponentTooLong(t *testing.T) {
	w := bitio.NewWriter(4)
	w.PackBits(1, 1)
	if err := Encode(w, 1_000_000, true, 4); err == nil {
		t.Fatal("expected an error for a unary prefix longer than maxExponentBits")
	}
}

func TestEncodeRejectsOffsetOutOfRange(t *testing.T) {
	w := bitio.NewWriter(4)
	if err := Encode(w, MaxOffset+1, true, 30); err == nil {
		t.Fatal("expected an error for an offset beyond MaxOffset")
	}
}

func TestDecodeRejectsLongUnaryPrefix(t *testing.T) {
	w := bitio.NewWriter(4)
	w.PackBits(1, 1) // header T bit, stand-in
	for i := 0; i < 10; i++ {
		w.PackBits(1, 1)
	}
	r := bitio.NewReader(w.Bytes())
	if _, err := r.UnpackBits(1); err != nil {
		t.Fatalf("consuming stand-in header bit: %v", err)
	}
	if _, err := Decode(r, true, 4); err == nil {
		t.Fatal("expected an error for a unary prefix longer than maxExponentBits")
	}
}
