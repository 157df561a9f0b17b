package todo

import (
	"time"

	"github.com/amonks/checklist/internal/ids"
)

// GenerateID creates an 8-character base32 ID from a todo's text and creation time.
func GenerateID(text string, timestamp time.Time) string {
	return ids.GenerateWithTimestamp(text, timestamp, ids.DefaultLength)
}
