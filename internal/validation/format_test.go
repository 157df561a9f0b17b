package validation

import (
	"errors"
	"testing"
)

type level string

const (
	levelHigh level = "high"
	levelLow  level = "low"
)

func TestFormatValidValues(t *testing.T) {
	cases := []struct {
		name   string
		values []level
		want   string
	}{
		{name: "empty", values: nil, want: ""},
		{name: "single", values: []level{levelHigh}, want: "high"},
		{name: "several", values: []level{levelHigh, levelLow}, want: "high, low"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValidValues(tc.values); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormatInvalidValueErrorWrapsBase(t *testing.T) {
	base := errors.New("invalid level")
	err := FormatInvalidValueError(base, level("urgent"), []level{levelHigh, levelLow})
	if !errors.Is(err, base) {
		t.Fatalf("expected error to wrap %v", base)
	}

	want := `invalid level: "urgent" (valid: high, low)`
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
