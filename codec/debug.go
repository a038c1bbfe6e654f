package codec

import (
	"fmt"
	"strings"
)

// ToHex renders an encoded buffer as space-separated uppercase hex bytes
// ("89 7C"), the form spec §6's worked examples use.
func ToHex(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// ToBits renders an encoded buffer as space-separated 8-bit binary groups.
func ToBits(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%08b", b)
	}
	return strings.Join(parts, " ")
}
