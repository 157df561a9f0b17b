package ids

import "testing"

func TestUniquePrefixLengths(t *testing.T) {
	lengths := UniquePrefixLengths([]string{"2u3iutfd", "2a9k1111", "abc12345"})

	if got := lengths["2u3iutfd"]; got != 2 {
		t.Fatalf("expected 2u3iutfd prefix length 2, got %d", got)
	}
	if got := lengths["2a9k1111"]; got != 2 {
		t.Fatalf("expected 2a9k1111 prefix length 2, got %d", got)
	}
	if got := lengths["abc12345"]; got != 1 {
		t.Fatalf("expected abc12345 prefix length 1, got %d", got)
	}
}

func TestUniquePrefixLengthsSkipsDuplicatesAndEmpty(t *testing.T) {
	lengths := UniquePrefixLengths([]string{"abc", "", "ABC"})

	if len(lengths) != 1 {
		t.Fatalf("expected 1 unique ID, got %d", len(lengths))
	}
	if got := lengths["abc"]; got != 1 {
		t.Fatalf("expected abc prefix length 1, got %d", got)
	}
}

func TestMatchPrefixNormalized(t *testing.T) {
	ids := NormalizeUniqueIDs([]string{"abc123", "abd456", "ab"})

	cases := []struct {
		name      string
		prefix    string
		match     string
		found     bool
		ambiguous bool
	}{
		{name: "unique prefix", prefix: "abc", match: "abc123", found: true},
		{name: "case insensitive", prefix: "ABD", match: "abd456", found: true},
		{name: "exact match beats prefix", prefix: "ab", match: "ab", found: true},
		{name: "ambiguous", prefix: "a", found: true, ambiguous: true},
		{name: "missing", prefix: "zz"},
		{name: "empty", prefix: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			match, found, ambiguous := MatchPrefixNormalized(ids, tc.prefix)
			if match != tc.match || found != tc.found || ambiguous != tc.ambiguous {
				t.Fatalf("expected (%q, %v, %v), got (%q, %v, %v)", tc.match, tc.found, tc.ambiguous, match, found, ambiguous)
			}
		})
	}
}
