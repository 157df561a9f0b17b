// Package logging builds the diagnostic logger from configuration.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrInvalidFormat is returned for an unrecognized log format.
var ErrInvalidFormat = errors.New("invalid log format")

// Prefix labels every log line.
const Prefix = "cl"

// ParseFormatter maps a format name to a formatter. Empty means text.
func ParseFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("%w: %q (valid: text, json, logfmt)", ErrInvalidFormat, format)
	}
}

// New returns a logger writing to w at the given level and format.
func New(w io.Writer, level, format string) (*log.Logger, error) {
	parsedLevel := log.WarnLevel
	if strings.TrimSpace(level) != "" {
		var err error
		parsedLevel, err = log.ParseLevel(strings.TrimSpace(level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
	}
	formatter, err := ParseFormatter(format)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           parsedLevel,
		Formatter:       formatter,
		ReportTimestamp: formatter != log.TextFormatter,
		Prefix:          Prefix,
	}), nil
}
