// Package ids generates and matches short todo identifiers.
package ids

import (
	"crypto/sha256"
	"encoding/base32"
	"strings"
	"time"
)

// DefaultLength is the standard length for generated IDs.
const DefaultLength = 8

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generate hashes input and returns the first length characters of its
// lowercase base32 form. Length is capped at the encoded digest size.
func Generate(input string, length int) string {
	if length <= 0 {
		return ""
	}
	sum := sha256.Sum256([]byte(input))
	encoded := strings.ToLower(encoding.EncodeToString(sum[:]))
	return encoded[:min(length, len(encoded))]
}

// GenerateWithTimestamp is Generate over input and the instant at nanosecond
// precision, so repeated text yields distinct IDs.
func GenerateWithTimestamp(input string, timestamp time.Time, length int) string {
	return Generate(input+"\x00"+timestamp.UTC().Format(time.RFC3339Nano), length)
}
