// Package ordercode produces the short codes customers quote when placing an
// order over WhatsApp or phone. Codes are deterministic per (product id,
// millisecond) pair and are not collision-free across rapid repeated calls.
package ordercode

import (
	"strconv"
	"strings"
	"time"
)

// Excludes glyphs easily confused when read aloud or copied by hand (I, O, 0, 1).
const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 5

// Generate builds a 5-character order code from the product id and the given
// time.
func Generate(productID string, at time.Time) string {
	timestamp := strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))

	productHash := 0
	for _, r := range productID {
		productHash += int(r)
	}

	var b strings.Builder
	b.Grow(codeLength)
	for i := 0; i < codeLength; i++ {
		digit, _ := strconv.ParseInt(
			strings.ToLower(string(timestamp[i%len(timestamp)])), 36, 0,
		)
		index := (productHash + int(digit) + i) % len(charset)
		b.WriteByte(charset[index])
	}
	return b.String()
}
