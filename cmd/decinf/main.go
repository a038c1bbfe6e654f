package main

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/trippwill/decimalinfinite/codec"
	"github.com/trippwill/decimalinfinite/decimal"
)

func main() {
	cfg := codec.DefaultConfig()
	format := "%-14s\t%-20s\t%-24s\t%s\n"
	sep := "-------------------------------------------------------------------------------------"

	fmt.Printf(format, "literal", "string", "hex", "bits")
	println(sep)

	literals := []string{
		"1.9", "-199.8", "0", "-0", "Infinity", "-Infinity", "NaN",
		"123456789.987654321", "-1.00", "3.2e10", "-7e-3",
	}

	for _, lit := range literals {
		v, err := decimal.Parse(lit, cfg.MaxDigits)
		if err != nil {
			fmt.Printf("%-14s\tparse error: %v\n", lit, err)
			continue
		}

		encoded, err := codec.Encode(v, cfg)
		if err != nil {
			fmt.Printf("%-14s\tencode error: %v\n", lit, err)
			continue
		}

		fmt.Printf(format, lit, v.String(), codec.ToHex(encoded), codec.ToBits(encoded))
	}
	println(sep)

	// Demonstrate a round trip through the decoder.
	v, _ := decimal.Parse("-199.8", cfg.MaxDigits)
	encoded, _ := codec.Encode(v, cfg)
	decoded, err := codec.Decode(encoded, cfg)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}
	fmt.Println("round trip:", decoded.String(), "==", v.String())
	fmt.Println(decoded.Debug())

	// Byte order mirrors numeric order: encode a short ascending run and
	// show the encodings sort the same way.
	ordered := []string{"-10", "-1", "0", "1", "10"}
	fmt.Println("ordering check:")
	for _, lit := range ordered {
		v, _ := decimal.Parse(lit, cfg.MaxDigits)
		encoded, _ := codec.Encode(v, cfg)
		fmt.Printf("  %-6s %s\n", lit, codec.ToHex(encoded))
	}

	// A locale-aware display rendering of a finite value.
	v, _ = decimal.Parse("1234567.891", cfg.MaxDigits)
	fmt.Println("en-US:", v.Format(language.AmericanEnglish))
	fmt.Println("de-DE:", v.Format(language.German))
}
